package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/scorecard/pkg/buildinfo"
	"github.com/matzehuels/scorecard/pkg/errors"
	"github.com/matzehuels/scorecard/pkg/pipeline"
	"github.com/matzehuels/scorecard/pkg/repository"
)

// Response headers.
const (
	headerRenderID = "X-Render-ID"
	headerCache    = "X-Cache"
)

// GameSummary is one entry of the game list.
type GameSummary struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Away       string `json:"away"`
	Home       string `json:"home"`
	GameNumber int    `json:"game_number"`
	URL        string `json:"url"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "scorecard",
		"build":     buildinfo.Get(),
	})
}

// handleListGames lists the games stored for a date.
// GET /api/v1/games/{date}
func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := errors.ValidateDate(date); err != nil {
		s.respondError(w, r, err)
		return
	}
	if s.runner.Repo == nil {
		s.respondError(w, r, errors.New(errors.ErrCodeUnsupported, "no game repository configured"))
		return
	}

	keys, err := s.runner.Repo.List(r.Context(), date)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	games := make([]GameSummary, 0, len(keys))
	for _, k := range keys {
		games = append(games, GameSummary{
			ID:         k.ID(),
			Date:       k.Date,
			Away:       k.Away,
			Home:       k.Home,
			GameNumber: k.GameNumber,
			URL:        scorecardPath(k),
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"date":  date,
		"games": games,
		"count": len(games),
	})
}

// handleScorecard renders one game.
// GET /api/v1/scorecards/{date}/{away}/{home}?game=N&format=svg|pdf|png
func (s *Server) handleScorecard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	gameNumber := 1
	if v := q.Get("game"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.respondError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "game must be a number"))
			return
		}
		gameNumber = n
	}
	key, err := repository.ParseKey(chi.URLParam(r, "date"), chi.URLParam(r, "away"), chi.URLParam(r, "home"), gameNumber)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	req := pipeline.Request{
		Key:          key,
		Formats:      []string{format},
		InlineStats:  boolParam(q.Get("inline_stats")),
		InningTotals: boolParam(q.Get("inning_totals")),
	}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 || scale > 4 {
			s.respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, 4]"))
			return
		}
		req.Scale = scale
	}

	res, err := s.runner.Execute(r.Context(), req)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set(headerRenderID, res.RenderID)
	if res.CacheHit {
		w.Header().Set(headerCache, "HIT")
	} else {
		w.Header().Set(headerCache, "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func scorecardPath(k repository.Key) string {
	p := "/api/v1/scorecards/" + k.Date + "/" + k.Away + "/" + k.Home
	if k.GameNumber > 1 {
		p += "?game=" + strconv.Itoa(k.GameNumber)
	}
	return p
}

func boolParam(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}
