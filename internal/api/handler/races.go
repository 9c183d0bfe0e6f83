package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/01speed1/skg-bot/internal/api/respond"
	"github.com/01speed1/skg-bot/internal/cache"
	"github.com/01speed1/skg-bot/internal/notifications"
	"github.com/01speed1/skg-bot/internal/race"
)

// NextRaceResponse is the body of GET /api/v1/races/next.
type NextRaceResponse struct {
	Today         race.Date  `json:"today"`
	Race          race.Race  `json:"race"`
	RaceDate      race.Date  `json:"race_date"`
	DaysRemaining int        `json:"days_remaining"`
	NotifyToday   bool       `json:"notify_today"`
	Thresholds    []int      `json:"thresholds"`
	NextCheck     *time.Time `json:"next_check,omitempty"`
}

// GetNextRace returns the next race and today's countdown.
// @Summary Next race
// @Description Returns the next race strictly after today in the configured time zone, the days remaining and whether today is an announcement day.
// @Tags races
// @Produce json
// @Success 200 {object} handler.NextRaceResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/races/next [get]
func (h *Handler) GetNextRace(w http.ResponseWriter, r *http.Request) {
	today := h.today()
	cacheKey := "races:next:" + today.String()
	ttl := cache.TTLNextRace

	if h.serveCached(w, r, cacheKey, ttl) {
		return
	}

	out, err := h.status.Evaluate(r.Context(), today)
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusBadGateway, "FEED_UNAVAILABLE", "Race schedule feed unavailable", err.Error())
		return
	}
	if !out.Found() {
		respond.WriteError(w, http.StatusNotFound, "NO_UPCOMING_RACE", "No race scheduled after today")
		return
	}

	resp := NextRaceResponse{
		Today:         out.Today,
		Race:          *out.Race,
		RaceDate:      out.RaceDate,
		DaysRemaining: out.DaysRemaining,
		NotifyToday:   out.Notify,
		Thresholds:    notifications.Thresholds(),
	}
	if h.wake != nil {
		next := h.wake.NextWakeAt(h.now())
		resp.NextCheck = &next
	}

	h.writeCached(w, cacheKey, resp, ttl)
}

// GetAnnouncementPreview returns the announcement as it would be posted today.
// @Summary Announcement preview
// @Description Renders the next-race announcement for today's countdown, without the role mention. Nothing is sent.
// @Tags announcements
// @Produce json
// @Success 200 {object} notifications.Announcement
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/announcement/preview [get]
func (h *Handler) GetAnnouncementPreview(w http.ResponseWriter, r *http.Request) {
	today := h.today()
	cacheKey := "announcement:preview:" + today.String()
	ttl := cache.TTLPreview

	if h.serveCached(w, r, cacheKey, ttl) {
		return
	}

	_, a, err := h.status.Preview(r.Context(), today)
	switch {
	case errors.Is(err, notifications.ErrNoUpcomingRace):
		respond.WriteError(w, http.StatusNotFound, "NO_UPCOMING_RACE", "No race scheduled after today")
		return
	case err != nil:
		respond.WriteErrorDetail(w, http.StatusBadGateway, "FEED_UNAVAILABLE", "Race schedule feed unavailable", err.Error())
		return
	}

	h.writeCached(w, cacheKey, a, ttl)
}

func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration) bool {
	data, etag, ok := h.cache.Get(key)
	if !ok {
		return false
	}
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return true
	}
	respond.WriteJSON(w, data, etag, ttl, true)
	return true
}

func (h *Handler) writeCached(w http.ResponseWriter, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED", "Failed to encode response")
		return
	}
	etag := h.cache.Set(key, data, ttl)
	respond.WriteJSON(w, data, etag, ttl, false)
}
