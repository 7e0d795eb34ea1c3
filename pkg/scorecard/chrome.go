package scorecard

import (
	"bytes"
	"fmt"
)

// Preamble is the fixed start of every document.
const Preamble = `<?xml version="1.0" standalone="no"?>`

// Terminator closes the root element.
const Terminator = closing

var webFonts = []string{
	"Bebas+Neue",
	"Roboto:wght@700",
	"Staatliches",
	"Jockey+One",
	"Oswald",
}

var boxScoreHeader = "AB" + nbsp + "R" + nbsp + "H" + nbsp + "RBI" + nbsp + "BB" + nbsp + "SO" + nbsp + "LOB"

const background = "#AAAAAA"

// chrome renders the preamble, the root element, font imports, the
// background and the fixed "Batter" and "Inning Stats" labels.
func chrome(m Metrics) Fragment {
	return FragmentFunc(func(buf *bytes.Buffer) {
		width := m.CanvasWidth()
		buf.WriteString(Preamble)
		fmt.Fprintf(buf, `<svg height="%d" viewBox="0 0 %d %d" %s>`, m.DisplayHeight, width, m.CanvasHeight, svgNS)

		buf.WriteString("<defs>")
		for _, f := range webFonts {
			fmt.Fprintf(buf, `<style type="text/css">@import url('https://fonts.googleapis.com/css2?family=%s&amp;display=swap');</style>`, f)
		}
		buf.WriteString("</defs>")

		fmt.Fprintf(buf, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`, width, m.CanvasHeight, background)

		nameWidth := 2 * m.BoxWidth
		headerHeight := m.BoxHeight / 2
		for _, panelY := range []int{0, m.HalfHeight()} {
			box(buf, 0, panelY, nameWidth, headerHeight)
			text{X: 250, Y: panelY + 75, Family: fontDisplay, Size: 60, Anchor: "middle", Body: "Batter"}.render(buf)
		}
		for _, panelY := range []int{0, m.HalfHeight()} {
			y := panelY + m.RosterHeight() + headerHeight
			box(buf, 0, y, nameWidth, headerHeight)
			text{X: 250, Y: y + 60, Family: fontDisplay, Size: 40, Anchor: "middle", Body: "Inning Stats"}.render(buf)
		}
		line(buf, 0, m.HalfHeight(), width, m.HalfHeight())
	})
}

// header renders the inning number columns and the box-score header in
// both panels.
func header(m Metrics, innings int) Fragment {
	return FragmentFunc(func(buf *bytes.Buffer) {
		g := NewGrid(m)
		headerHeight := m.BoxHeight / 2
		for inning := 1; inning <= g.InningColumns(innings); inning++ {
			x := g.Column(inning) * m.BoxWidth
			label := fmt.Sprint(inning)
			for _, panelY := range []int{0, m.HalfHeight()} {
				box(buf, x, panelY, m.BoxWidth, headerHeight)
				text{X: x + m.BoxWidth/2, Y: panelY + 70, Family: fontDisplay, Size: 60, Anchor: "middle", Body: label}.render(buf)
			}
		}

		x := m.BoxScoreX()
		for _, panelY := range []int{0, m.HalfHeight()} {
			box(buf, x, panelY, m.BoxWidth, headerHeight)
			text{X: x + 13, Y: panelY + 60, Family: fontBody, Size: 24, Anchor: "start", Body: boxScoreHeader}.render(buf)
		}
	})
}

// cells renders the empty plate-appearance cells of both panels.
func cells(m Metrics, innings int) Fragment {
	return FragmentFunc(func(buf *bytes.Buffer) {
		g := NewGrid(m)
		for inning := 1; inning <= g.InningColumns(innings); inning++ {
			for b := 0; b < m.LineupSlots; b++ {
				slot := g.Slot(inning, b)
				for _, p := range []Panel{PanelB, PanelA} {
					cell(buf, m, g.CellOrigin(inning, slot, p))
				}
			}
		}
	})
}

// cell draws one scorer-writable box: the diamond, the ball and strike
// squares and the outs circle.
func cell(buf *bytes.Buffer, m Metrics, at Point) {
	openSVG(buf, at.X, at.Y, m.BoxWidth, m.BoxHeight)
	fmt.Fprintf(buf, `<rect x="0" y="0" width="%d" height="%d" stroke="black" fill="white" stroke-width="1"/>`, m.BoxWidth, m.BoxHeight)
	buf.WriteString(`<path d="M71 101 A 45 45, 0, 0, 1, 261 101 L 166 196 Z" stroke="black" stroke-dasharray="5,5" fill="transparent"/>`)
	buf.WriteString(`<path d="M112 142 L 166 89 L 220 142" stroke="black" stroke-dasharray="5,5" fill="transparent"/>`)
	for _, sq := range [...]struct {
		x, y int
		fill string
	}{
		{2, 2, "white"}, {32, 2, "white"}, {62, 2, "transparent"},
		{2, 32, "white"}, {32, 32, "white"},
	} {
		fmt.Fprintf(buf, `<rect x="%d" y="%d" width="30" height="30" stroke="lightgrey" fill="%s" stroke-width="1"/>`, sq.x, sq.y, sq.fill)
	}
	buf.WriteString(`<circle cx="245" cy="19" r="18" stroke="darkgrey" stroke-width="2" stroke-dasharray="5,5" fill="white"/>`)
	buf.WriteString(closing)
}

// borders renders the heavy outline of both panels.
func borders(m Metrics) Fragment {
	return FragmentFunc(func(buf *bytes.Buffer) {
		w := m.CanvasWidth()
		for _, span := range [][2]int{{0, m.HalfHeight()}, {m.HalfHeight(), m.CanvasHeight}} {
			fmt.Fprintf(buf, `<path d="M0 %d L %d %d L %d %d L 0 %d" stroke="black" stroke-width="4" fill="none"/>`,
				span[0], w, span[0], w, span[1], span[1])
		}
	})
}

func terminator() Fragment {
	return FragmentFunc(func(buf *bytes.Buffer) { buf.WriteString(Terminator) })
}
