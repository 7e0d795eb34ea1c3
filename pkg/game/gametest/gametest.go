// Package gametest builds game fixtures for tests.
package gametest

import (
	"fmt"
	"time"

	"github.com/matzehuels/scorecard/pkg/game"
)

var positions = []string{"CF", "SS", "1B", "3B", "RF", "LF", "C", "2B", "P"}

// Team returns a team with batters distinct batters (one appearance per slot)
// and pitchers distinct pitchers.
func Team(name, abbr string, batters, pitchers int) *game.Team {
	t := &game.Team{Name: name, Abbreviation: abbr}
	for i := 0; i < batters; i++ {
		p := game.Player{
			ID:      fmt.Sprintf("%s-b%d", abbr, i+1),
			Name:    fmt.Sprintf("%s Batter %d", abbr, i+1),
			BatSide: "R",
			OBP:     game.Rate(0.300 + float64(i)/100),
			SLG:     game.Rate(0.400 + float64(i)/100),
		}
		t.Lineup = append(t.Lineup, []game.Appearance{
			{Player: p, StartInning: 1, Position: positions[i%len(positions)]},
		})
	}
	for i := 0; i < pitchers; i++ {
		p := game.Player{
			ID:        fmt.Sprintf("%s-p%d", abbr, i+1),
			Name:      fmt.Sprintf("%s Pitcher %d", abbr, i+1),
			PitchHand: "L",
			ERA:       game.Rate(3.25),
		}
		t.Pitchers = append(t.Pitchers, game.Appearance{Player: p, StartInning: 1 + i})
	}
	return t
}

// Standard returns a completed nine-inning game: nine distinct batters and
// one pitcher per side, known start and end times, attendance and weather.
func Standard() *game.Game {
	g := &game.Game{
		Away:        Team("Chicago Cubs", "CHC", 9, 1),
		Home:        Team("St. Louis Cardinals", "STL", 9, 1),
		Innings:     Innings(9),
		Start:       time.Date(2021, time.July, 4, 18, 15, 0, 0, time.UTC),
		End:         time.Date(2021, time.July, 4, 21, 2, 0, 0, time.UTC),
		Timezone:    "America/Chicago",
		Location:    "Busch Stadium, St. Louis, MO",
		Weather:     "Partly Cloudy",
		Temperature: 88,
		Attendance:  41520,
		GameNumber:  1,
	}
	g.ExpectedStart = g.Start
	return g
}

// Innings returns n innings with a run in the top of the first.
func Innings(n int) []game.Inning {
	out := make([]game.Inning, n)
	if n > 0 {
		out[0].Top = game.HalfStats{Runs: 1, Hits: 2, LeftOnBase: 1, Strikeouts: 1}
	}
	return out
}
