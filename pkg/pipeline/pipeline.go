// Package pipeline provides the fetch → render → convert pipeline shared by
// the CLI and the HTTP server.
//
// By centralizing this logic, every entry point applies the same
// validation, caching and logging.
//
// # Usage
//
//	runner := pipeline.NewRunner(repo, cache, nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Request{
//	    Key:     key,
//	    Formats: []string{"svg", "pdf"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// A Request may carry a game directly (for example one read from a JSON
// file), in which case no repository lookup happens.
package pipeline

import (
	"strings"
	"time"

	"github.com/matzehuels/scorecard/pkg/errors"
	"github.com/matzehuels/scorecard/pkg/game"
	"github.com/matzehuels/scorecard/pkg/render"
	"github.com/matzehuels/scorecard/pkg/repository"
)

// Format constants for output formats.
const (
	FormatSVG = render.FormatSVG
	FormatPDF = render.FormatPDF
	FormatPNG = render.FormatPNG
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPDF: true,
	FormatPNG: true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG: "image/svg+xml",
	FormatPDF: "application/pdf",
	FormatPNG: "image/png",
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, ValidFormats); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates, and validates the result.
func ParseFormats(s string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	if err := ValidateFormats(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Request describes one render.
type Request struct {
	// Key identifies the game to fetch. When Game is set the key only names
	// the result and may be zero.
	Key repository.Key

	// Game, when non-nil, is rendered as is instead of being fetched.
	Game *game.Game

	Formats      []string // defaults to svg
	Scale        float64  // PNG scale; 0 means render.DefaultPNGScale
	InlineStats  bool
	InningTotals bool

	// Refresh skips cached artifacts and overwrites them.
	Refresh bool
}

// setDefaults fills in defaults and validates the request.
func (r *Request) setDefaults() error {
	if len(r.Formats) == 0 {
		r.Formats = []string{FormatSVG}
	}
	if r.Scale <= 0 {
		r.Scale = render.DefaultPNGScale
	}
	if r.Game == nil && r.Key == (repository.Key{}) {
		return errors.New(errors.ErrCodeInvalidInput, "request needs a game or a game key")
	}
	return ValidateFormats(r.Formats)
}

// gameID names the request's game.
func (r *Request) gameID() string {
	if r.Key != (repository.Key{}) {
		return r.Key.ID()
	}
	return "adhoc"
}

// Result contains the outputs of a pipeline run.
type Result struct {
	GameID   string
	RenderID string // unique per Execute call, for log correlation

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// CacheHit is true when every artifact came from the cache.
	CacheHit bool

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FetchTime  time.Duration
	RenderTime time.Duration
	Bytes      int
}
