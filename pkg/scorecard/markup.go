package scorecard

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const (
	fontDisplay = "Bebas Neue"
	fontBody    = "Roboto"

	svgNS   = `version="1.1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"`
	closing = "</svg>"
)

// EscapeXML escapes s for use in text content and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func openSVG(buf *bytes.Buffer, x, y, w, h int) {
	fmt.Fprintf(buf, `<svg x="%d" y="%d" width="%d" height="%d" %s>`, x, y, w, h, svgNS)
}

func box(buf *bytes.Buffer, x, y, w, h int) {
	fmt.Fprintf(buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="white" stroke="black" stroke-width="1"/>`, x, y, w, h)
}

func line(buf *bytes.Buffer, x1, y1, x2, y2 int) {
	fmt.Fprintf(buf, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black" stroke-width="1"/>`, x1, y1, x2, y2)
}

// link wraps fn in a hyperlink to href. An empty href renders fn bare.
func link(buf *bytes.Buffer, href string, fn func()) {
	if href != "" {
		fmt.Fprintf(buf, `<a target="_parent" xlink:href="%s">`, EscapeXML(href))
	}
	fn()
	if href != "" {
		buf.WriteString("</a>")
	}
}

// text is a single SVG text element. Body is raw markup; callers escape
// user data with EscapeXML.
type text struct {
	X, Y   int
	Family string
	Size   int
	Anchor string
	Fill   string
	Bold   bool
	Rotate bool   // rotate -90 degrees around (X, Y)
	Title  string // tooltip, escaped when rendered
	Body   string
}

func (t text) render(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `<text x="%d" y="%d"`, t.X, t.Y)
	if t.Rotate {
		fmt.Fprintf(buf, ` transform="rotate(-90,%d,%d)"`, t.X, t.Y)
	}
	fmt.Fprintf(buf, ` font-family="%s" font-size="%d"`, t.Family, t.Size)
	if t.Anchor != "" {
		fmt.Fprintf(buf, ` text-anchor="%s"`, t.Anchor)
	}
	if t.Fill != "" {
		fmt.Fprintf(buf, ` fill="%s"`, t.Fill)
	}
	if t.Bold {
		buf.WriteString(` font-weight="bold"`)
	}
	buf.WriteString(">")
	buf.WriteString(t.Body)
	if t.Title != "" {
		fmt.Fprintf(buf, "<title>%s</title>", EscapeXML(t.Title))
	}
	buf.WriteString("</text>")
}
