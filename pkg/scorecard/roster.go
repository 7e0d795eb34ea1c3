package scorecard

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/scorecard/pkg/game"
)

// PlayerURLPrefix prefixes a player ID to form the player page link.
const PlayerURLPrefix = "http://mlb.com/player/"

// PlayerURL returns the page link for p, or "" when p has no ID.
func PlayerURL(p game.Player) string {
	if p.ID == "" {
		return ""
	}
	return PlayerURLPrefix + p.ID
}

// RosterComposer lays out one team's batting order: the name panels on the
// left and the box-score panels on the right, padded to LineupSlots.
type RosterComposer struct {
	m           Metrics
	inlineStats bool
}

// NewRosterComposer returns a composer for m. With inlineStats the rate
// stats are printed under each name instead of only as a tooltip.
func NewRosterComposer(m Metrics, inlineStats bool) RosterComposer {
	return RosterComposer{m: m, inlineStats: inlineStats}
}

// Compose renders team into panel. A nil team renders only placeholder
// panels. Lineups longer than LineupSlots are truncated.
func (c RosterComposer) Compose(team *game.Team, panel Panel) Fragment {
	var lineup [][]game.Appearance
	if team != nil {
		lineup = team.Lineup
	}
	if len(lineup) > c.m.LineupSlots {
		lineup = lineup[:c.m.LineupSlots]
	}
	tier := c.m.ResolveBatters(lineup)
	top := NewGrid(c.m).PanelY(panel) + c.m.BoxHeight/2

	return Group{
		FragmentFunc(func(buf *bytes.Buffer) {
			for i := 0; i < c.m.LineupSlots; i++ {
				var slot []game.Appearance
				if i < len(lineup) {
					slot = lineup[i]
				}
				c.namePanel(buf, top+i*c.m.BoxHeight, slot, tier)
			}
		}),
		FragmentFunc(func(buf *bytes.Buffer) {
			for i := 0; i < c.m.LineupSlots; i++ {
				rows := 1
				if i < len(lineup) {
					rows = max(1, len(lineup[i]))
				}
				c.boxScorePanel(buf, top+i*c.m.BoxHeight, rows, tier)
			}
		}),
	}
}

func (c RosterComposer) namePanel(buf *bytes.Buffer, y int, slot []game.Appearance, tier BatterTier) {
	w := 2 * c.m.BoxWidth
	openSVG(buf, 0, y, w, c.m.BoxHeight)
	fmt.Fprintf(buf, `<rect x="0" y="0" width="%d" height="%d" stroke="black" fill="white" stroke-width="1"/>`, w, c.m.BoxHeight)

	rowY := c.m.BatterInitialY
	for i, a := range slot {
		repeat := i > 0 && slot[i-1].Player.Same(a.Player)
		if !repeat {
			c.nameRow(buf, rowY, a.Player, tier)
		}
		text{
			X: w - 12, Y: rowY, Family: fontBody, Size: tier.StatsFontSize(), Anchor: "end",
			Body: EscapeXML(AppearanceLabel(a)),
		}.render(buf)
		rowY += tier.Pitch
	}
	buf.WriteString(closing)
}

func (c RosterComposer) nameRow(buf *bytes.Buffer, y int, p game.Player, tier BatterTier) {
	stats := p.BattingStats()
	name := text{
		X: 10, Y: y, Family: fontBody, Size: tier.FontSize, Anchor: "start", Fill: "blue",
		Body: EscapeXML(BatterLabel(p)),
	}
	if !c.inlineStats {
		name.Title = stats
	}
	link(buf, PlayerURL(p), func() { name.render(buf) })

	if c.inlineStats && stats != "" {
		text{X: 10, Y: y + tier.StatsOffset, Family: fontBody, Size: tier.StatsFontSize(), Anchor: "start", Body: stats}.render(buf)
	}
}

func (c RosterComposer) boxScorePanel(buf *bytes.Buffer, y, rows int, tier BatterTier) {
	w := 2 * c.m.BoxWidth
	openSVG(buf, c.m.BoxScoreX(), y, w, c.m.BoxHeight)
	fmt.Fprintf(buf, `<rect x="0" y="0" width="%d" height="%d" stroke="black" fill="white" stroke-width="1"/>`, w, c.m.BoxHeight)
	rowY := c.m.BatterInitialY
	for i := 0; i < rows; i++ {
		text{X: 13, Y: rowY, Family: fontBody, Size: tier.FontSize, Anchor: "start", Body: tier.BoxScoreLine()}.render(buf)
		rowY += tier.Pitch
	}
	buf.WriteString(closing)
}

// BatterLabel is the printed name of a batter: "Name - L".
func BatterLabel(p game.Player) string {
	if p.BatSide == "" {
		return p.DisplayName()
	}
	return p.DisplayName() + " - " + p.BatSide
}

// AppearanceLabel is the entry inning and position of a batter, "1   /  CF".
func AppearanceLabel(a game.Appearance) string {
	return fmt.Sprintf("%-3s / %3s", strconv.Itoa(a.StartInning), a.Position)
}
