package game

import (
	"fmt"
	"strconv"
)

// Player is a person on a roster.
type Player struct {
	ID        string // external identifier, used for the player page link
	Name      string // display name, e.g. "Kyle Hendricks"
	BatSide   string // "R", "L" or "S"; empty when unknown
	PitchHand string // "R" or "L"; empty when unknown

	// Career rates; nil when not available.
	OBP *float64
	SLG *float64
	ERA *float64
}

// DisplayName returns the name printed on the scorecard.
func (p Player) DisplayName() string {
	return p.Name
}

// Same reports whether p and o are the same person.
func (p Player) Same(o Player) bool {
	if p.ID != "" || o.ID != "" {
		return p.ID == o.ID
	}
	return p.Name == o.Name
}

// HasBattingStats reports whether both batting rates are known.
func (p Player) HasBattingStats() bool {
	return p.OBP != nil && p.SLG != nil
}

// BattingStats returns the rate-stats line for a batter, or "" when either
// rate is missing.
func (p Player) BattingStats() string {
	if !p.HasBattingStats() {
		return ""
	}
	return fmt.Sprintf("OBP: %.3f, SLG: %.3f", *p.OBP, *p.SLG)
}

// PitchingStats returns "ERA: 3.21", or "" when the ERA is unknown.
func (p Player) PitchingStats() string {
	if p.ERA == nil {
		return ""
	}
	return "ERA: " + strconv.FormatFloat(*p.ERA, 'f', 2, 64)
}

// Appearance is one stint of a player in the game: a lineup slot occupancy
// for batters or a trip to the mound for pitchers.
type Appearance struct {
	Player      Player
	StartInning int    // inning the stint began
	Position    string // fielding position for batters; empty for pitchers
}

// Rate is a convenience for building optional rate stats.
func Rate(v float64) *float64 {
	return &v
}
