// Package render converts rendered scorecard SVG into other document formats.
//
// Conversion shells out to rsvg-convert from librsvg:
//
//	svg, err := renderer.Render(g)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 0.5) // half size
//
// Install it with "brew install librsvg" (macOS) or
// "apt install librsvg2-bin" (Linux). [Available] reports whether the tool
// is on PATH so callers can reject pdf/png requests up front.
package render
