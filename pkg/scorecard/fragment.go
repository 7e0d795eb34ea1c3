package scorecard

import "bytes"

// Fragment is a piece of SVG markup.
type Fragment interface {
	Render(buf *bytes.Buffer)
}

// FragmentFunc adapts a function to a Fragment.
type FragmentFunc func(buf *bytes.Buffer)

func (f FragmentFunc) Render(buf *bytes.Buffer) { f(buf) }

// Group renders its fragments in order. Nil entries are skipped.
type Group []Fragment

func (g Group) Render(buf *bytes.Buffer) {
	for _, f := range g {
		if f != nil {
			f.Render(buf)
		}
	}
}

// Layer is a named fragment in the document paint order.
type Layer struct {
	Name     string
	Fragment Fragment
}

// Markup renders f into a string.
func Markup(f Fragment) string {
	var buf bytes.Buffer
	f.Render(&buf)
	return buf.String()
}
