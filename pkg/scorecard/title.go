package scorecard

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/matzehuels/scorecard/pkg/clock"
	"github.com/matzehuels/scorecard/pkg/game"
)

// titleBaseline is the rotation center of the title texts.
const titleBaseline = 700

// TitleComposer lays out the rotated title panel of each page half.
type TitleComposer struct {
	m       Metrics
	clock   clock.LocalizedClock
	printer *message.Printer
}

func NewTitleComposer(m Metrics, c clock.LocalizedClock) TitleComposer {
	return TitleComposer{m: m, clock: c, printer: message.NewPrinter(language.English)}
}

// Compose renders the title panel in both halves.
func (c TitleComposer) Compose(g *game.Game) Fragment {
	if g == nil {
		g = &game.Game{}
	}
	title := g.Title()
	size := c.m.BigTitleSize
	if utf8.RuneCountInString(title) >= c.m.TitleLengthLimit {
		size = c.m.SmallTitleSize
	}
	date := c.DateString(g)
	detail := c.DetailString(g)

	return FragmentFunc(func(buf *bytes.Buffer) {
		grid := NewGrid(c.m)
		for _, h := range []Half{Top, Bottom} {
			fmt.Fprintf(buf, `<svg width="%d" height="%d" x="%d" y="%d" %s>`,
				c.m.BoxWidth, c.m.TitlePanelHeight, c.m.SideX(), grid.PanelY(PanelFor(h)), svgNS)
			box(buf, 0, 0, c.m.BoxWidth, c.m.TitlePanelHeight)
			box(buf, 0, 0, c.m.BoxWidth, c.m.BoxHeight/2)
			text{X: c.m.BoxWidth / 2, Y: 67, Family: fontDisplay, Size: 50, Anchor: "middle", Body: h.String()}.render(buf)
			for _, t := range []text{
				{X: 80, Size: size, Body: EscapeXML(title)},
				{X: 145, Size: 45, Body: EscapeXML(g.Location)},
				{X: 200, Size: 30, Body: EscapeXML(date)},
				{X: 235, Size: 30, Body: EscapeXML(detail)},
			} {
				t.Y, t.Rotate, t.Fill, t.Family, t.Anchor = titleBaseline, true, "black", fontDisplay, "middle"
				t.render(buf)
			}
			buf.WriteString(closing)
		}
	})
}

// DateString formats the game date and time window in the venue zone,
// followed by doubleheader and status annotations.
func (c TitleComposer) DateString(g *game.Game) string {
	d := c.clock.Describe(clock.Stamps{
		Start:    g.Start,
		Expected: g.ExpectedStart,
		End:      g.End,
		Zone:     g.Timezone,
	})
	if !d.Known {
		return ""
	}

	var b strings.Builder
	b.WriteString(d.Date)
	switch {
	case d.TimeUnknown:
	case d.Range:
		fmt.Fprintf(&b, ", %s - %s %s", d.Start, d.End, d.Zone)
	default:
		fmt.Fprintf(&b, ", %s %s", d.Start, d.Zone)
	}

	if g.Doubleheader {
		fmt.Fprintf(&b, ", Game %d", max(g.GameNumber, 1))
	}
	if g.Suspended {
		b.WriteString(", Suspended")
	} else if g.Postponed {
		b.WriteString(", Postponed")
	}
	return b.String()
}

// DetailString joins attendance, weather and temperature with " - ",
// skipping parts that were not recorded.
func (c TitleComposer) DetailString(g *game.Game) string {
	var parts []string
	if g.Attendance > 0 {
		parts = append(parts, c.printer.Sprintf("Att. %d", g.Attendance))
	}
	if g.Weather != "" {
		parts = append(parts, g.Weather)
	}
	if g.Temperature != 0 {
		parts = append(parts, fmt.Sprintf("%d F", g.Temperature))
	}
	return strings.Join(parts, " - ")
}
