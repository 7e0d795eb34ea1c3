package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scorecard/pkg/cache"
	"github.com/matzehuels/scorecard/pkg/errors"
	"github.com/matzehuels/scorecard/pkg/game/gametest"
	"github.com/matzehuels/scorecard/pkg/pipeline"
	"github.com/matzehuels/scorecard/pkg/repository"
)

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()
	repo, err := repository.NewFileRepository(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	keys := []repository.Key{
		{Date: "2021-07-04", Away: "CHC", Home: "STL", GameNumber: 1},
		{Date: "2021-07-04", Away: "CHC", Home: "STL", GameNumber: 2},
	}
	for _, k := range keys {
		if err := repo.Put(ctx, k, gametest.Standard()); err != nil {
			t.Fatal(err)
		}
	}
	broken := gametest.Standard()
	broken.Innings = nil
	if err := repo.Put(ctx, repository.Key{Date: "2021-07-05", Away: "NYY", Home: "BOS", GameNumber: 1}, broken); err != nil {
		t.Fatal(err)
	}

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{})
	runner := pipeline.NewRunner(repo, fc, nil, nil, logger)
	return New(runner, logger, Config{}), &logs
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s.Router(), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %v", body["status"])
	}
}

func TestListGames(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s.Router(), "/api/v1/games/2021-07-04")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var body struct {
		Count int           `json:"count"`
		Games []GameSummary `json:"games"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Count != 2 || len(body.Games) != 2 {
		t.Fatalf("count = %d, games = %v", body.Count, body.Games)
	}
	if body.Games[0].URL != "/api/v1/scorecards/2021-07-04/CHC/STL" {
		t.Errorf("url = %q", body.Games[0].URL)
	}
	if body.Games[1].URL != "/api/v1/scorecards/2021-07-04/CHC/STL?game=2" {
		t.Errorf("url = %q", body.Games[1].URL)
	}
}

func TestScorecard(t *testing.T) {
	s, logs := newTestServer(t)
	h := s.Router()

	rec := get(t, h, "/api/v1/scorecards/2021-07-04/chc/stl")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get(headerRenderID) == "" {
		t.Error("missing render id header")
	}
	if rec.Header().Get(headerCache) != "MISS" {
		t.Errorf("first request X-Cache = %q", rec.Header().Get(headerCache))
	}
	if !strings.Contains(rec.Body.String(), "Chicago Cubs @ St. Louis Cardinals") {
		t.Error("body missing title")
	}

	rec = get(t, h, "/api/v1/scorecards/2021-07-04/CHC/STL")
	if rec.Header().Get(headerCache) != "HIT" {
		t.Errorf("second request X-Cache = %q", rec.Header().Get(headerCache))
	}

	if !strings.Contains(logs.String(), "rendered scorecard") {
		t.Error("pipeline did not log the render")
	}
}

func TestScorecardErrors(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Router()

	tests := []struct {
		path   string
		status int
		code   errors.Code
	}{
		{"/api/v1/scorecards/2021-07-04/CHC/STL?game=3", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"/api/v1/scorecards/2021-07-04/CHC/STL?game=x", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"/api/v1/scorecards/07-04-2021/CHC/STL", http.StatusBadRequest, errors.ErrCodeInvalidDate},
		{"/api/v1/scorecards/2021-07-04/CHICAGO/STL", http.StatusBadRequest, errors.ErrCodeInvalidTeam},
		{"/api/v1/scorecards/2021-07-04/CHC/STL?format=gif", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"/api/v1/scorecards/2021-07-04/CHC/STL?scale=9", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"/api/v1/scorecards/2021-07-04/NYY/BOS", http.StatusNotFound, errors.ErrCodeGameNotFound},
		{"/api/v1/scorecards/2021-07-05/NYY/BOS", http.StatusUnprocessableEntity, errors.ErrCodeInvalidGame},
		{"/api/v1/games/today", http.StatusBadRequest, errors.ErrCodeInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, h, tt.path)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body)
			}
			var body ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Code != string(tt.code) {
				t.Errorf("code = %q, want %q", body.Code, tt.code)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodeNetwork, "down"), http.StatusServiceUnavailable},
		{errors.New(errors.ErrCodeUnsupported, "no rsvg"), http.StatusNotImplemented},
		{errors.New(errors.ErrCodeInvalidConfig, "no repo"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{fmt.Errorf("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestCORS(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("missing CORS header")
	}
}
