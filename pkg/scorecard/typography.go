package scorecard

import (
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/scorecard/pkg/game"
)

// nbsp is the non-breaking space entity used to pad box-score fields.
const nbsp = "&#160;"

// boxScoreFields is the number of columns in the box-score header
// (AB R H RBI BB SO LOB).
const boxScoreFields = 7

// BatterTier is one row of the batter typography table.
type BatterTier struct {
	Name        string
	FontSize    int
	Pitch       int // vertical distance between appearance rows
	StatsOffset int // distance from a name baseline to its inline stats line
	Padding     int // non-breaking spaces between box-score fields
}

// StatsFontSize is the size of the appearance and stats text.
func (t BatterTier) StatsFontSize() int { return t.FontSize - 5 }

// BoxScoreLine fills the box-score line template with up to seven fields.
// Missing fields are blank; the padding is always emitted so a blank line
// keeps the column rhythm of the header.
func (t BatterTier) BoxScoreLine(fields ...string) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(nbsp, t.Padding/2))
	for i := 0; i < boxScoreFields; i++ {
		if i > 0 {
			b.WriteString(strings.Repeat(nbsp, t.Padding))
		}
		if i < len(fields) {
			b.WriteString(EscapeXML(fields[i]))
		}
	}
	return b.String()
}

// PitcherTier is one row of the pitcher typography table.
type PitcherTier struct {
	Name        string
	FontSize    int // pitcher name
	StatsSize   int // ERA and entry inning
	FirstLineY  int
	Pitch       int
	StatsOffset int
	ChunkSize   int // pitchers per panel column
}

// ResolveBatterTier selects the batter tier for a panel with rows appearance
// rows and a longest display name of longestName characters.
// Non-positive row counts are treated as a single row.
func (m Metrics) ResolveBatterTier(rows, longestName int) BatterTier {
	rows = max(rows, 1)
	switch {
	case rows <= 4:
		if longestName > m.LongNameLimit {
			return m.Batters.LargeReduced
		}
		return m.Batters.Large
	case rows < 8:
		return m.Batters.Medium
	default:
		return m.Batters.Small
	}
}

// ResolveBatters resolves one tier for a whole lineup: rows is the deepest
// slot and the name limit applies to the longest name anywhere in it.
func (m Metrics) ResolveBatters(lineup [][]game.Appearance) BatterTier {
	rows, longest := 0, 0
	for _, slot := range lineup {
		rows = max(rows, len(slot))
		for _, a := range slot {
			longest = max(longest, nameLength(a.Player))
		}
	}
	return m.ResolveBatterTier(rows, longest)
}

// ResolvePitcherTier selects the pitcher tier for count pitchers.
func (m Metrics) ResolvePitcherTier(count, longestName int) PitcherTier {
	if count > m.PitcherTierThreshold {
		return m.Pitchers.Small
	}
	if longestName > m.LongNameLimit {
		return m.Pitchers.Medium
	}
	return m.Pitchers.Large
}

// ResolvePitchers resolves the tier for a team's pitcher list.
func (m Metrics) ResolvePitchers(pitchers []game.Appearance) PitcherTier {
	longest := 0
	for _, a := range pitchers {
		longest = max(longest, nameLength(a.Player))
	}
	return m.ResolvePitcherTier(len(pitchers), longest)
}

func nameLength(p game.Player) int {
	return utf8.RuneCountInString(p.DisplayName())
}
