// Package pkg provides the core libraries for Scorecard.
//
// # Overview
//
// Scorecard turns a recorded baseball game into a printable two-page
// scorecard: a roster and lineup grid for each team, an inning grid per
// batter, and a summary panel with the box score and pitching lines. The pkg
// directory is organized into four main areas:
//
//  1. [game] - The read-only game model and its JSON document form ([io])
//  2. [scorecard] - Layout and SVG composition of the scorecard
//  3. [repository] and [cache] - Where games come from and where renders go
//  4. [pipeline] - Orchestration (fetch → validate → render → convert)
//
// # Architecture
//
// The typical data flow through Scorecard:
//
//	Game store (files or MongoDB)
//	         ↓
//	    [repository] package (look up a game by date and teams)
//	         ↓
//	    [scorecard] package (typography, grids, panels, document)
//	         ↓
//	    [render] package (SVG to PDF/PNG)
//	         ↓
//	    SVG/PDF/PNG output
//
// # Quick Start
//
// Render a stored game:
//
//	repo, _ := repository.NewFileRepository("games")
//	key, _ := repository.ParseKey("2021-07-04", "CHC", "STL", 1)
//
//	runner := pipeline.NewRunner(repo, nil, nil, nil, nil)
//	defer runner.Close()
//
//	res, _ := runner.Execute(ctx, pipeline.Request{Key: key, Formats: []string{"svg", "pdf"}})
//	os.WriteFile("card.pdf", res.Artifacts["pdf"], 0o644)
//
// Or compose a game you already hold:
//
//	svg, err := scorecard.New(scorecard.WithInlineStats()).Render(g)
//
// # Main Packages
//
// [scorecard] - The renderer. [scorecard.Metrics] holds every dimension of
// the page, typography tiers pick a font size per team from the longest
// name, and the grid, roster and summary composers emit positioned SVG
// fragments that the assembler stacks into one document.
//
// [game] - Teams, lineups, pitchers and half-inning stat lines. Games are
// built once and never mutated by the renderer.
//
// [repository] - Game lookup by [repository.Key]. File and MongoDB stores,
// plus a caching wrapper.
//
// [cache] - Cache interface with file, Redis and null backends, cache keys
// and retry helpers.
//
// [render] - Format conversion (SVG to PDF/PNG) via rsvg-convert.
//
// [pipeline] - Complete render pipeline used by the CLI and the HTTP server.
// Ensures consistent behavior across both entry points.
//
// [observability] - Hooks for render, repository, cache and server events.
//
// [clock] - Venue-local formatting of game times.
//
// [errors] - Coded errors and input validation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/scorecard/...          # Specific package
//	go test -short ./pkg/...             # Skip tests that need a database or rsvg-convert
//
// [game]: https://pkg.go.dev/github.com/matzehuels/scorecard/pkg/game
// [io]: https://pkg.go.dev/github.com/matzehuels/scorecard/pkg/io
// [scorecard]: https://pkg.go.dev/github.com/matzehuels/scorecard/pkg/scorecard
// [scorecard.Metrics]: https://pkg.go.dev/github.com/matzehuels/scorecard/pkg/scorecard#Metrics
// [repository]: https://pkg.go.dev/github.com/matzehuels/scorecard/pkg/repository
// [repository.Key]: https://pkg.go.dev/github.com/matzehuels/scorecard/pkg/repository#Key
// [cache]: https://pkg.go.dev/github.com/matzehuels/scorecard/pkg/cache
// [render]: https://pkg.go.dev/github.com/matzehuels/scorecard/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/scorecard/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/scorecard/pkg/observability
// [clock]: https://pkg.go.dev/github.com/matzehuels/scorecard/pkg/clock
// [errors]: https://pkg.go.dev/github.com/matzehuels/scorecard/pkg/errors
package pkg
