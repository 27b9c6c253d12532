package api

import (
	"net/http"
	"time"

	"github.com/lumina/creatorhub/internal/auth"
	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/engine"
	"github.com/lumina/creatorhub/internal/service/calendar"
)

// dashboardSnapshot is everything the home screen needs in one call.
type dashboardSnapshot struct {
	Profile   *domain.Creator         `json:"profile,omitempty"`
	Estimate  *engine.RateEstimate    `json:"estimate,omitempty"`
	Pipeline  *domain.PipelineSummary `json:"pipeline"`
	Upcoming  []domain.Post           `json:"upcoming"`
	BestSlot  *engine.TimeSlotScore   `json:"best_slot,omitempty"`
	FetchedAt time.Time               `json:"fetched_at"`
}

// GetDashboard aggregates profile, rates, pipeline, and upcoming posts.
// Snapshots are cached briefly in Redis.
func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var cached dashboardSnapshot
	if h.cache.GetDashboard(r.Context(), userID, &cached) {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	snapshot := dashboardSnapshot{FetchedAt: time.Now()}

	if c, err := h.profileSvc.Get(r.Context(), userID); err == nil {
		snapshot.Profile = c
		if est, err := engine.EstimateRate(c.Platform, c.Followers, c.Niche, c.EngagementRatePercent); err == nil {
			snapshot.Estimate = &est
		}
		best := engine.RecommendBestTimes(c.Platform, c.Niche).Best
		snapshot.BestSlot = &best
	}

	pipeline, err := h.dealSvc.Summary(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "pipeline summary failed")
		return
	}
	snapshot.Pipeline = pipeline

	now := time.Now()
	weekOut := now.AddDate(0, 0, 7)
	posts, err := h.calendarSvc.List(r.Context(), userID, calendar.ListFilter{
		From:   &now,
		To:     &weekOut,
		Status: string(domain.PostScheduled),
		Limit:  5,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "calendar lookup failed")
		return
	}
	snapshot.Upcoming = posts

	h.cache.SetDashboard(r.Context(), userID, snapshot)
	respondJSON(w, http.StatusOK, snapshot)
}

// ResetDemo restores the seeded demo workspace.
func (h *Handlers) ResetDemo(w http.ResponseWriter, r *http.Request) {
	if h.demoState == nil {
		respondError(w, http.StatusNotFound, "demo mode is not active")
		return
	}
	h.demoState.Reset()
	h.cache.InvalidateDashboard(r.Context(), auth.UserID(r.Context()))
	respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
