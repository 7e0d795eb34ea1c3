// Package scorecard renders a printable scorecard for one baseball game as an
// SVG document.
//
// # Overview
//
// The renderer is a deterministic single pass over a read-only [game.Game].
// It performs no I/O. The same game and options always produce the same
// bytes.
//
//	r := scorecard.New()
//	svg, err := r.Render(g)
//
// # Canvas
//
// The canvas is two stacked panels of identical layout. Panel A (y = 0)
// holds the away lineup and is scored while the away team bats; panel B
// (y = CanvasHeight/2) holds the home lineup. Each panel is divided into
// fixed-width columns:
//
//	| batter names (2 cols) | inning 1 .. inning N | box score | title |
//
// All dimensions come from a [Metrics] value. [DefaultMetrics] returns the
// table the printed artifact is calibrated against; changing any value
// changes the printout.
//
// # Composition
//
// Every visual component is a [Fragment]. Composers build fragments from the
// game:
//
//   - [RosterComposer]: lineup name panels and box-score line panels
//   - [PitchingComposer]: chunked pitcher panels
//   - [SummaryComposer]: inning-stat boxes, proof boxes, R/H/E totals, logos
//   - [TitleComposer]: rotated title, location, date and detail strings
//
// [Renderer.Layers] returns the named fragments in paint order. Later layers
// overlay earlier ones, so the order is part of the output format.
//
// # Typography
//
// Text density adapts to the data. [Metrics.ResolveBatters] picks one
// [BatterTier] per team from the deepest lineup slot and the longest name.
// [Metrics.ResolvePitchers] picks a [PitcherTier] from the number of
// pitchers. Tiers are fixed table rows; there is no interpolation.
//
// # Malformed input
//
// [Renderer.Render] validates the game first and fails with an INVALID_GAME
// error. [Renderer.Assemble] skips validation and degrades: missing teams
// render as empty panels and missing optional fields render as blank text.
// It never panics.
package scorecard
