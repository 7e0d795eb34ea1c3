package io

import (
	"fmt"
	"time"

	"github.com/matzehuels/scorecard/pkg/game"
)

// Document is the serialized form of a game.
type Document struct {
	ID      string      `json:"id,omitempty" bson:"_id,omitempty"`
	Date    string      `json:"date,omitempty" bson:"date,omitempty"`
	Away    TeamDoc     `json:"away" bson:"away"`
	Home    TeamDoc     `json:"home" bson:"home"`
	Innings []InningDoc `json:"innings" bson:"innings"`

	Start         string `json:"start,omitempty" bson:"start,omitempty"`
	ExpectedStart string `json:"expected_start,omitempty" bson:"expected_start,omitempty"`
	End           string `json:"end,omitempty" bson:"end,omitempty"`
	Timezone      string `json:"timezone,omitempty" bson:"timezone,omitempty"`

	Location    string `json:"location,omitempty" bson:"location,omitempty"`
	Weather     string `json:"weather,omitempty" bson:"weather,omitempty"`
	Temperature int    `json:"temperature,omitempty" bson:"temperature,omitempty"`
	Attendance  int    `json:"attendance,omitempty" bson:"attendance,omitempty"`

	Doubleheader bool `json:"doubleheader,omitempty" bson:"doubleheader,omitempty"`
	GameNumber   int  `json:"game_number,omitempty" bson:"game_number,omitempty"`
	Suspended    bool `json:"suspended,omitempty" bson:"suspended,omitempty"`
	Postponed    bool `json:"postponed,omitempty" bson:"postponed,omitempty"`
}

type TeamDoc struct {
	Name         string            `json:"name" bson:"name"`
	Abbreviation string            `json:"abbreviation" bson:"abbreviation"`
	Lineup       [][]AppearanceDoc `json:"lineup" bson:"lineup"`
	Pitchers     []AppearanceDoc   `json:"pitchers,omitempty" bson:"pitchers,omitempty"`
}

// AppearanceDoc flattens a player and one stint into a single object.
type AppearanceDoc struct {
	ID          string   `json:"id,omitempty" bson:"id,omitempty"`
	Name        string   `json:"name" bson:"name"`
	BatSide     string   `json:"bat_side,omitempty" bson:"bat_side,omitempty"`
	PitchHand   string   `json:"pitch_hand,omitempty" bson:"pitch_hand,omitempty"`
	OBP         *float64 `json:"obp,omitempty" bson:"obp,omitempty"`
	SLG         *float64 `json:"slg,omitempty" bson:"slg,omitempty"`
	ERA         *float64 `json:"era,omitempty" bson:"era,omitempty"`
	StartInning int      `json:"start_inning,omitempty" bson:"start_inning,omitempty"`
	Position    string   `json:"position,omitempty" bson:"position,omitempty"`
}

type InningDoc struct {
	Top    HalfDoc `json:"top" bson:"top"`
	Bottom HalfDoc `json:"bottom" bson:"bottom"`
}

type HalfDoc struct {
	Runs       int `json:"runs,omitempty" bson:"runs,omitempty"`
	Hits       int `json:"hits,omitempty" bson:"hits,omitempty"`
	LeftOnBase int `json:"lob,omitempty" bson:"lob,omitempty"`
	Strikeouts int `json:"so,omitempty" bson:"so,omitempty"`
	Walks      int `json:"bb,omitempty" bson:"bb,omitempty"`
	Errors     int `json:"errors,omitempty" bson:"errors,omitempty"`
}

// FromGame converts g into its document form.
func FromGame(g *game.Game) Document {
	d := Document{
		Away:          fromTeam(g.Away),
		Home:          fromTeam(g.Home),
		Innings:       make([]InningDoc, len(g.Innings)),
		Start:         formatTime(g.Start),
		ExpectedStart: formatTime(g.ExpectedStart),
		End:           formatTime(g.End),
		Timezone:      g.Timezone,
		Location:      g.Location,
		Weather:       g.Weather,
		Temperature:   g.Temperature,
		Attendance:    g.Attendance,
		Doubleheader:  g.Doubleheader,
		GameNumber:    g.GameNumber,
		Suspended:     g.Suspended,
		Postponed:     g.Postponed,
	}
	for i, in := range g.Innings {
		d.Innings[i] = InningDoc{Top: HalfDoc(in.Top), Bottom: HalfDoc(in.Bottom)}
	}
	return d
}

// Game converts the document back into a game.
// Only malformed timestamps are reported as errors.
func (d Document) Game() (*game.Game, error) {
	g := &game.Game{
		Away:         d.Away.team(),
		Home:         d.Home.team(),
		Innings:      make([]game.Inning, len(d.Innings)),
		Timezone:     d.Timezone,
		Location:     d.Location,
		Weather:      d.Weather,
		Temperature:  d.Temperature,
		Attendance:   d.Attendance,
		Doubleheader: d.Doubleheader,
		GameNumber:   d.GameNumber,
		Suspended:    d.Suspended,
		Postponed:    d.Postponed,
	}
	for i, in := range d.Innings {
		g.Innings[i] = game.Inning{Top: game.HalfStats(in.Top), Bottom: game.HalfStats(in.Bottom)}
	}

	var err error
	if g.Start, err = parseTime("start", d.Start); err != nil {
		return nil, err
	}
	if g.ExpectedStart, err = parseTime("expected_start", d.ExpectedStart); err != nil {
		return nil, err
	}
	if g.End, err = parseTime("end", d.End); err != nil {
		return nil, err
	}
	return g, nil
}

func fromTeam(t *game.Team) TeamDoc {
	if t == nil {
		return TeamDoc{}
	}
	out := TeamDoc{
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		Lineup:       make([][]AppearanceDoc, len(t.Lineup)),
	}
	for i, slot := range t.Lineup {
		out.Lineup[i] = make([]AppearanceDoc, len(slot))
		for j, a := range slot {
			out.Lineup[i][j] = fromAppearance(a)
		}
	}
	for _, a := range t.Pitchers {
		out.Pitchers = append(out.Pitchers, fromAppearance(a))
	}
	return out
}

func (t TeamDoc) team() *game.Team {
	out := &game.Team{
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		Lineup:       make([][]game.Appearance, len(t.Lineup)),
	}
	for i, slot := range t.Lineup {
		out.Lineup[i] = make([]game.Appearance, len(slot))
		for j, a := range slot {
			out.Lineup[i][j] = a.appearance()
		}
	}
	for _, a := range t.Pitchers {
		out.Pitchers = append(out.Pitchers, a.appearance())
	}
	return out
}

func fromAppearance(a game.Appearance) AppearanceDoc {
	return AppearanceDoc{
		ID:          a.Player.ID,
		Name:        a.Player.Name,
		BatSide:     a.Player.BatSide,
		PitchHand:   a.Player.PitchHand,
		OBP:         a.Player.OBP,
		SLG:         a.Player.SLG,
		ERA:         a.Player.ERA,
		StartInning: a.StartInning,
		Position:    a.Position,
	}
}

func (a AppearanceDoc) appearance() game.Appearance {
	return game.Appearance{
		Player: game.Player{
			ID:        a.ID,
			Name:      a.Name,
			BatSide:   a.BatSide,
			PitchHand: a.PitchHand,
			OBP:       a.OBP,
			SLG:       a.SLG,
			ERA:       a.ERA,
		},
		StartInning: a.StartInning,
		Position:    a.Position,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func parseTime(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t, nil
}
