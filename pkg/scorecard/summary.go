package scorecard

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/scorecard/pkg/game"
)

var inningStatLabels = [6]string{"R:", "H:", "LOB:", "K:", "BB:", "E:"}

var proofLabels = [2][5]string{
	{"Runs", "LOB", "PO", "", "TOTAL"},
	{"AB", "BB", "SAC", "HBP/Int", "TOTAL"},
}

// SummaryComposer lays out the summary cells: inning-stat boxes, proof
// boxes, the R/H/E totals box and the team logos.
type SummaryComposer struct {
	m            Metrics
	logos        LogoTable
	inningTotals bool
}

// NewSummaryComposer returns a composer. With inningTotals the recorded
// half-inning stats are printed next to the inning-stat labels.
func NewSummaryComposer(m Metrics, logos LogoTable, inningTotals bool) SummaryComposer {
	return SummaryComposer{m: m, logos: logos, inningTotals: inningTotals}
}

// ComposeSummary renders every summary cell of g.
func (c SummaryComposer) ComposeSummary(g *game.Game) Fragment {
	return Group{c.InningStats(g), c.ProofBoxes(), c.Totals(), c.Logos(g)}
}

// InningStats renders one stat box per grid column in both panels. Columns
// past the regular innings keep a box but no labels.
func (c SummaryComposer) InningStats(g *game.Game) Fragment {
	return FragmentFunc(func(buf *bytes.Buffer) {
		grid := NewGrid(c.m)
		last := c.m.MinInnings + c.m.ExtraColumns
		for col := 2; col < last; col++ {
			x := col * c.m.BoxWidth
			labelled := col <= c.m.MinInnings+1
			for _, h := range []Half{Bottom, Top} {
				panel := PanelFor(h)
				y := grid.PanelY(panel) + c.m.RosterHeight() + c.m.BoxHeight/2
				var values *game.HalfStats
				if labelled && c.inningTotals {
					values = halfStats(g, col-1, h)
				}
				c.inningBox(buf, x, y, labelled, values)
			}
		}
	})
}

func halfStats(g *game.Game, inning int, h Half) *game.HalfStats {
	if g == nil || inning < 1 || inning > len(g.Innings) {
		return nil
	}
	in := g.Innings[inning-1]
	if h == Bottom {
		return &in.Bottom
	}
	return &in.Top
}

func (c SummaryComposer) inningBox(buf *bytes.Buffer, x, y int, labelled bool, values *game.HalfStats) {
	openSVG(buf, x, y, c.m.PageWidth/2, c.m.PitcherPanelHeight)
	box(buf, 0, 0, c.m.BoxWidth, c.m.PitcherPanelHeight)

	var nums [6]int
	if values != nil {
		nums = [6]int{values.Runs, values.Hits, values.LeftOnBase, values.Strikeouts, values.Walks, values.Errors}
	}
	for i, label := range inningStatLabels {
		body := ""
		if labelled {
			body = label
			if values != nil {
				body = fmt.Sprintf("%s%d", label, nums[i])
			}
		}
		text{X: 20 + 70*(i%3), Y: 30 + 50*(i/3), Family: fontBody, Size: 22, Anchor: "start", Body: body}.render(buf)
	}
	buf.WriteString(closing)
}

// ProofBoxes renders the two reconciliation boxes of each panel.
func (c SummaryComposer) ProofBoxes() Fragment {
	return FragmentFunc(func(buf *bytes.Buffer) {
		grid := NewGrid(c.m)
		x := c.m.CanvasWidth() - 2*c.m.BoxWidth
		for _, p := range []Panel{PanelA, PanelB} {
			y := grid.PanelY(p) + c.m.BoxHeight*(c.m.LineupSlots+1)
			for i, labels := range proofLabels {
				c.proofBox(buf, x+i*c.m.BoxWidth, y, labels)
			}
		}
	})
}

func (c SummaryComposer) proofBox(buf *bytes.Buffer, x, y int, labels [5]string) {
	openSVG(buf, x, y, c.m.PageWidth/2, c.m.PitcherPanelHeight)
	box(buf, 0, 0, c.m.BoxWidth, c.m.PitcherPanelHeight)
	for i, l := range labels[:4] {
		text{X: 20, Y: 30 + 50*i, Family: fontBody, Size: 24, Anchor: "start", Body: l}.render(buf)
	}
	fmt.Fprintf(buf, `<line x1="0" y1="200" x2="%d" y2="200" stroke="black" stroke-width="1" fill="transparent"/>`, c.m.BoxWidth)
	text{X: 20, Y: 230, Family: fontBody, Size: 24, Anchor: "start", Body: labels[4]}.render(buf)
	buf.WriteString(closing)
}

// Totals renders the R/H/E box of each panel.
func (c SummaryComposer) Totals() Fragment {
	return FragmentFunc(func(buf *bytes.Buffer) {
		grid := NewGrid(c.m)
		for _, p := range []Panel{PanelA, PanelB} {
			y := grid.PanelY(p) + 6*c.m.BoxHeight + c.m.BoxHeight/2
			openSVG(buf, c.m.SideX(), y, c.m.BoxWidth, c.m.TotalsBoxHeight)
			box(buf, 0, 0, c.m.BoxWidth, c.m.TotalsBoxHeight)
			for i, l := range []string{"R", "H", "E"} {
				text{X: 50, Y: 100 + 125*i, Family: fontDisplay, Size: 100, Anchor: "start", Bold: true, Body: l}.render(buf)
			}
			buf.WriteString(closing)
		}
	})
}

// Logos renders the away logo in panel A and the home logo in panel B.
func (c SummaryComposer) Logos(g *game.Game) Fragment {
	return FragmentFunc(func(buf *bytes.Buffer) {
		grid := NewGrid(c.m)
		var away, home *game.Team
		if g != nil {
			away, home = g.Away, g.Home
		}
		for _, side := range []struct {
			team  *game.Team
			panel Panel
		}{{away, PanelA}, {home, PanelB}} {
			y := grid.PanelY(side.panel) + 8*c.m.BoxHeight + c.m.BoxHeight/2
			openSVG(buf, c.m.SideX(), y, c.m.BoxWidth, c.m.BoxHeight)
			fmt.Fprintf(buf, `<rect x="0" y="0" width="%d" height="%d" stroke="black" fill="white" stroke-width="1"/>`, c.m.BoxWidth, c.m.BoxHeight)
			fmt.Fprintf(buf, `<image xlink:href="%s" x="50" y="0" height="%d" width="163"/>`, EscapeXML(c.LogoFor(side.team)), c.m.BoxHeight)
			buf.WriteString(closing)
		}
	})
}

// LogoFor returns the logo asset of t; nil teams get the default asset.
func (c SummaryComposer) LogoFor(t *game.Team) string {
	if t == nil {
		return c.logos.Default
	}
	return c.logos.Lookup(t.Abbreviation)
}
