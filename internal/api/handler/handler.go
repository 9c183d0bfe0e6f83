// Package handler provides the status API endpoints. Handlers evaluate the
// race pipeline on demand and serve the JSON through the shared cache.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/01speed1/skg-bot/internal/api/respond"
	"github.com/01speed1/skg-bot/internal/cache"
	"github.com/01speed1/skg-bot/internal/notifications"
	"github.com/01speed1/skg-bot/internal/race"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// RaceStatus evaluates the next race for a day without sending anything.
type RaceStatus interface {
	Evaluate(ctx context.Context, today race.Date) (notifications.Outcome, error)
	Preview(ctx context.Context, today race.Date) (notifications.Outcome, notifications.Announcement, error)
}

// WakeSchedule reports when the scheduler checks next.
type WakeSchedule interface {
	NextWakeAt(now time.Time) time.Time
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	status RaceStatus
	wake   WakeSchedule
	cache  *cache.Cache
	loc    *time.Location
	now    func() time.Time
}

// New creates a Handler. wake may be nil when no scheduler runs in-process.
func New(status RaceStatus, wake WakeSchedule, c *cache.Cache, loc *time.Location) *Handler {
	if c == nil {
		c = cache.New(false)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Handler{status: status, wake: wake, cache: c, loc: loc, now: time.Now}
}

func (h *Handler) today() race.Date {
	return race.Today(h.now(), h.loc)
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version and documentation path.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"name":    "SKG Bot status API",
		"version": Version,
		"status":  "running",
		"docs":    "/docs/index.html",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timezone":  h.loc.String(),
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}
