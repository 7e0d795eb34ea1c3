package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug log lines.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnRenderStart(_ context.Context, gameID string, formats []string) {
	h.logger.Debug("render started", "game", gameID, "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, gameID string, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "game", gameID, "formats", formats, "duration", d, "err", err)
		return
	}
	h.logger.Debug("render complete", "game", gameID, "formats", formats, "duration", d)
}

func (h *LogHooks) OnFetch(_ context.Context, backend, gameID string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("fetch failed", "backend", backend, "game", gameID, "duration", d, "err", err)
		return
	}
	h.logger.Debug("fetched game", "backend", backend, "game", gameID, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Debug("request", "method", method, "route", route, "status", status, "duration", d)
}

var (
	_ RenderHooks     = (*LogHooks)(nil)
	_ RepositoryHooks = (*LogHooks)(nil)
	_ CacheHooks      = (*LogHooks)(nil)
	_ ServerHooks     = (*LogHooks)(nil)
)
