package scorecard

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/scorecard/pkg/clock"
	"github.com/matzehuels/scorecard/pkg/game"
)

// Layer names in paint order.
const (
	LayerChrome      = "chrome"
	LayerHeader      = "header"
	LayerRosters     = "rosters"
	LayerInningStats = "inning-stats"
	LayerCells       = "cells"
	LayerProofBoxes  = "proof-boxes"
	LayerPitchers    = "pitchers"
	LayerTitle       = "title"
	LayerLogos       = "logos"
	LayerTotals      = "totals"
	LayerBorders     = "borders"
	LayerTerminator  = "terminator"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithMetrics replaces the geometry table.
func WithMetrics(m Metrics) Option { return func(r *Renderer) { r.metrics = m } }

// WithLogos replaces the logo table.
func WithLogos(t LogoTable) Option { return func(r *Renderer) { r.logos = t } }

// WithClock replaces the clock used for the title date string.
func WithClock(c clock.LocalizedClock) Option { return func(r *Renderer) { r.clock = c } }

// WithInlineStats prints batter rate stats under each name.
func WithInlineStats() Option { return func(r *Renderer) { r.inlineStats = true } }

// WithInningTotals prints recorded half-inning stats in the inning boxes.
func WithInningTotals() Option { return func(r *Renderer) { r.inningTotals = true } }

// Renderer assembles scorecard documents. A Renderer is immutable after New
// and safe for concurrent use.
type Renderer struct {
	metrics      Metrics
	logos        LogoTable
	clock        clock.LocalizedClock
	inlineStats  bool
	inningTotals bool
}

// New returns a Renderer with the default metrics, logos and clock.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		metrics: DefaultMetrics(),
		logos:   DefaultLogos(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.clock == nil {
		r.clock = clock.New()
	}
	return r
}

// With returns a copy of r with opts applied.
func (r *Renderer) With(opts ...Option) *Renderer {
	c := *r
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Fingerprint describes every setting that shapes r's documents: metrics,
// logo table and options. Renderers with equal fingerprints produce equal
// documents for the same game. The clock is not part of it.
func (r *Renderer) Fingerprint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "metrics=%v;inline=%t;totals=%t;logo=%s",
		r.metrics, r.inlineStats, r.inningTotals, r.logos.Default)
	for _, code := range slices.Sorted(maps.Keys(r.logos.Assets)) {
		fmt.Fprintf(&b, ";%s=%s", code, r.logos.Assets[code])
	}
	return b.String()
}

// Metrics returns the geometry table in use.
func (r *Renderer) Metrics() Metrics { return r.metrics }

// Render validates g and assembles its document.
func (r *Renderer) Render(g *game.Game) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return r.Assemble(g), nil
}

// Assemble renders g without validation. Missing data renders as blank
// panels.
func (r *Renderer) Assemble(g *game.Game) []byte {
	var buf bytes.Buffer
	for _, l := range r.Layers(g) {
		l.Fragment.Render(&buf)
	}
	return buf.Bytes()
}

// Layers returns the document fragments in paint order. The away lineup is
// in panel A facing the home pitchers; the home lineup is in panel B.
func (r *Renderer) Layers(g *game.Game) []Layer {
	if g == nil {
		g = &game.Game{}
	}
	m := r.metrics
	innings := len(g.Innings)
	rosters := NewRosterComposer(m, r.inlineStats)
	pitching := NewPitchingComposer(m)
	summary := NewSummaryComposer(m, r.logos, r.inningTotals)
	title := NewTitleComposer(m, r.clock)

	return []Layer{
		{LayerChrome, chrome(m)},
		{LayerHeader, header(m, innings)},
		{LayerRosters, Group{rosters.Compose(g.Away, PanelA), rosters.Compose(g.Home, PanelB)}},
		{LayerInningStats, summary.InningStats(g)},
		{LayerCells, cells(m, innings)},
		{LayerProofBoxes, summary.ProofBoxes()},
		{LayerPitchers, Group{pitching.Compose(g.Home, PanelA), pitching.Compose(g.Away, PanelB)}},
		{LayerTitle, title.Compose(g)},
		{LayerLogos, summary.Logos(g)},
		{LayerTotals, summary.Totals()},
		{LayerBorders, borders(m)},
		{LayerTerminator, terminator()},
	}
}
