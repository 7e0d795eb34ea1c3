// Package game defines the read-only model of a single baseball game that the
// scorecard renderer consumes.
//
// A [Game] is populated once by a repository (see package repository) and is
// never mutated afterwards. The renderer only reads it.
//
// # Lineups
//
// A team's batting order is a slice of lineup slots. Each slot is the ordered
// list of [Appearance] values for that batting position, so a substitution
// shows up as a second appearance in the same slot:
//
//	team.Lineup[3] = []game.Appearance{
//	    {Player: starter, StartInning: 1, Position: "LF"},
//	    {Player: pinchHitter, StartInning: 7, Position: "PH"},
//	}
package game

import (
	"fmt"
	"time"

	"github.com/matzehuels/scorecard/pkg/errors"
)

// RegulationInnings is the minimum number of innings a complete game carries.
const RegulationInnings = 9

// Game is one game between two teams.
type Game struct {
	Away    *Team
	Home    *Team
	Innings []Inning

	Start         time.Time // actual first pitch; zero when unknown
	ExpectedStart time.Time // scheduled first pitch; zero when unknown
	End           time.Time // final out; zero for suspended or unfinished games
	Timezone      string    // IANA zone of the venue, e.g. "America/Chicago"

	Location    string
	Weather     string
	Temperature int // degrees Fahrenheit; 0 when not recorded
	Attendance  int // 0 when not recorded

	Doubleheader bool
	GameNumber   int // 1 or 2 for doubleheaders
	Suspended    bool
	Postponed    bool
}

// Title returns the "Away @ Home" heading of the game.
func (g *Game) Title() string {
	return fmt.Sprintf("%s @ %s", teamName(g.Away), teamName(g.Home))
}

// FirstPitch returns the actual start time when known, else the scheduled one.
func (g *Game) FirstPitch() time.Time {
	if !g.Start.IsZero() {
		return g.Start
	}
	return g.ExpectedStart
}

func teamName(t *Team) string {
	if t == nil {
		return ""
	}
	return t.Name
}

// Team is one side of a game.
type Team struct {
	Name         string
	Abbreviation string         // 2-3 letter code, e.g. "CHC"
	Lineup       [][]Appearance // one entry per batting-order position
	Pitchers     []Appearance   // in order of appearance
}

// Batters returns every batting appearance of the team in lineup order.
func (t *Team) Batters() []Appearance {
	var out []Appearance
	for _, slot := range t.Lineup {
		out = append(out, slot...)
	}
	return out
}

// Inning holds the recorded summaries of both halves of one inning.
type Inning struct {
	Top    HalfStats
	Bottom HalfStats
}

// HalfStats is the flat stat line of one half inning.
type HalfStats struct {
	Runs       int
	Hits       int
	LeftOnBase int
	Strikeouts int
	Walks      int
	Errors     int
}

// Validate checks the structural assumptions the renderer relies on.
//
// It does not verify statistics. It reports the first problem found as an
// INVALID_GAME error:
//   - both teams present and distinct
//   - at least [RegulationInnings] innings
//   - every team has at least one lineup slot and no empty slot
func (g *Game) Validate() error {
	if g == nil {
		return errors.New(errors.ErrCodeInvalidGame, "game is nil")
	}
	if g.Away == nil || g.Home == nil {
		return errors.New(errors.ErrCodeInvalidGame, "game must have both an away and a home team")
	}
	if g.Away == g.Home || (g.Away.Abbreviation != "" && g.Away.Abbreviation == g.Home.Abbreviation) {
		return errors.New(errors.ErrCodeInvalidGame, "home and away teams must differ")
	}
	if len(g.Innings) < RegulationInnings {
		return errors.New(errors.ErrCodeInvalidGame, "game has %d innings, need at least %d", len(g.Innings), RegulationInnings)
	}
	for _, t := range []*Team{g.Away, g.Home} {
		if len(t.Lineup) == 0 {
			return errors.New(errors.ErrCodeInvalidGame, "team %s has an empty batting order", t.Name)
		}
		for i, slot := range t.Lineup {
			if len(slot) == 0 {
				return errors.New(errors.ErrCodeInvalidGame, "team %s: lineup slot %d has no batters", t.Name, i+1)
			}
		}
	}
	return nil
}
