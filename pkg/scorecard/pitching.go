package scorecard

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/scorecard/pkg/game"
)

// pitcherColumns is the number of side-by-side pitcher panels per team.
const pitcherColumns = 2

type columnLabel struct {
	x    int
	text string
}

var pitcherHeader = []columnLabel{
	{150, "PITCHER"}, {545, "IP"}, {609, "WLS"}, {682, "BF"}, {745, "H"},
	{815, "R"}, {885, "ER"}, {955, "SO"}, {1025, "BB"}, {1097, "IBB"},
	{1167, "HBP"}, {1237, "BLK"}, {1305, "WP"}, {1375, "HR"}, {1450, "S"},
	{1520, "P"},
}

// PitchingComposer lays out a team's pitchers in two chunked panels below
// the lineup of the panel they face.
type PitchingComposer struct {
	m Metrics
}

func NewPitchingComposer(m Metrics) PitchingComposer {
	return PitchingComposer{m: m}
}

// Compose renders the pitchers of team into panel. Pitchers beyond two
// chunks are not printed.
func (c PitchingComposer) Compose(team *game.Team, panel Panel) Fragment {
	var pitchers []game.Appearance
	if team != nil {
		pitchers = team.Pitchers
	}
	tier := c.m.ResolvePitchers(pitchers)
	chunks := Chunk(pitchers, tier.ChunkSize)
	y := NewGrid(c.m).PanelY(panel) + c.m.RosterHeight() + c.m.BoxHeight*(c.m.LineupSlots-c.m.RegulationLineup)
	w := c.m.PageWidth / pitcherColumns

	return FragmentFunc(func(buf *bytes.Buffer) {
		for col := 0; col < pitcherColumns; col++ {
			var chunk []game.Appearance
			if col < len(chunks) {
				chunk = chunks[col]
			}
			c.panel(buf, col*w, y, w, chunk, tier)
		}
	})
}

func (c PitchingComposer) panel(buf *bytes.Buffer, x, y, w int, pitchers []game.Appearance, tier PitcherTier) {
	openSVG(buf, x, y, w, c.m.PitcherPanelHeight)
	box(buf, 0, 0, w, c.m.PitcherPanelHeight)
	for _, l := range pitcherHeader {
		text{X: l.x, Y: 35, Family: fontDisplay, Size: 20, Anchor: "middle", Body: l.text}.render(buf)
	}

	rowY := tier.FirstLineY
	for _, a := range pitchers {
		name := text{X: 10, Y: rowY, Family: fontBody, Size: tier.FontSize, Anchor: "start", Fill: "blue", Body: EscapeXML(PitcherLabel(a.Player))}
		link(buf, PlayerURL(a.Player), func() { name.render(buf) })
		if stats := a.Player.PitchingStats(); stats != "" {
			text{X: 350, Y: rowY, Family: fontBody, Size: tier.StatsSize, Anchor: "start", Body: stats}.render(buf)
		}
		text{X: 520, Y: rowY, Family: fontBody, Size: tier.StatsSize, Anchor: "end", Body: EscapeXML(EntryLabel(a))}.render(buf)
		rowY += tier.Pitch
	}
	buf.WriteString(closing)
}

// PitcherLabel is the printed name of a pitcher: "Name, R".
func PitcherLabel(p game.Player) string {
	if p.PitchHand == "" {
		return p.DisplayName()
	}
	return p.DisplayName() + ", " + p.PitchHand
}

// EntryLabel is the inning a pitcher entered, "IN: 7 ".
func EntryLabel(a game.Appearance) string {
	return fmt.Sprintf("IN: %-2s", strconv.Itoa(a.StartInning))
}

// Chunk splits s into consecutive groups of at most size elements.
func Chunk[T any](s []T, size int) [][]T {
	if size <= 0 {
		return nil
	}
	var out [][]T
	for i := 0; i < len(s); i += size {
		out = append(out, s[i:min(i+size, len(s))])
	}
	return out
}
