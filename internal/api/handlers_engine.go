package api

import (
	"errors"
	"net/http"

	"github.com/lumina/creatorhub/internal/auth"
	"github.com/lumina/creatorhub/internal/engine"
)

type estimateRequest struct {
	Platform              string  `json:"platform"`
	Niche                 string  `json:"niche"`
	Followers             int64   `json:"followers"`
	EngagementRatePercent float64 `json:"engagement_rate_percent"`
}

// EstimateRate computes a sponsorship rate range.
func (h *Handlers) EstimateRate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	est, err := engine.EstimateRate(req.Platform, req.Followers, req.Niche, req.EngagementRatePercent)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidFollowerCount) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "estimate failed")
		return
	}

	respondJSON(w, http.StatusOK, est)
}

// RateBreakdown returns per-content-type rate ranges for a platform.
func (h *Handlers) RateBreakdown(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	platform := q.Get("platform")

	var req estimateRequest
	req.Platform = platform
	req.Niche = q.Get("niche")
	req.Followers = parseInt64(q.Get("followers"))
	req.EngagementRatePercent = parseFloat(q.Get("engagement_rate_percent"))

	est, err := engine.EstimateRate(req.Platform, req.Followers, req.Niche, req.EngagementRatePercent)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"platform": platform,
		"estimate": est,
		"rates":    engine.ContentTypeBreakdown(platform, est),
	})
}

// SaveRateEstimate computes an estimate and appends it to the user's history.
func (h *Handlers) SaveRateEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.profileSvc.SaveEstimate(r.Context(), auth.UserID(r.Context()),
		req.Platform, req.Niche, req.Followers, req.EngagementRatePercent)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidFollowerCount) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "save failed")
		return
	}

	respondJSON(w, http.StatusCreated, rec)
}

// RateHistory returns the user's saved estimates, newest first.
func (h *Handlers) RateHistory(w http.ResponseWriter, r *http.Request) {
	limit := int(parseInt64(r.URL.Query().Get("limit")))
	recs, err := h.profileSvc.History(r.Context(), auth.UserID(r.Context()), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "history lookup failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"records": recs})
}

type engagementRequest struct {
	Followers int64  `json:"followers"`
	Likes     int64  `json:"likes"`
	Comments  int64  `json:"comments"`
	Shares    int64  `json:"shares"`
	Views     *int64 `json:"views"`
}

// AnalyzeEngagement classifies a post's engagement numbers.
func (h *Handlers) AnalyzeEngagement(w http.ResponseWriter, r *http.Request) {
	var req engagementRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := engine.AnalyzeEngagement(req.Followers, req.Likes, req.Comments, req.Shares, req.Views)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// BestTimes returns the scored weekly posting schedule, cached per
// platform/niche pair.
func (h *Handlers) BestTimes(w http.ResponseWriter, r *http.Request) {
	platform := r.URL.Query().Get("platform")
	niche := r.URL.Query().Get("niche")

	if schedule, ok := h.cache.GetSchedule(r.Context(), platform, niche); ok {
		respondJSON(w, http.StatusOK, schedule)
		return
	}

	schedule := engine.RecommendBestTimes(platform, niche)
	h.cache.SetSchedule(r.Context(), schedule)
	respondJSON(w, http.StatusOK, schedule)
}

// ComposePitch renders the outreach email for the user's profile. Profile
// fields may be overridden in the request body.
func (h *Handlers) ComposePitch(w http.ResponseWriter, r *http.Request) {
	var req engine.PitchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Fill gaps from the stored profile so the frontend can send only a
	// brand name.
	if req.DisplayName == "" {
		if c, err := h.profileSvc.Get(r.Context(), auth.UserID(r.Context())); err == nil {
			req.DisplayName = c.DisplayName
			if req.Platform == "" {
				req.Platform = c.Platform
			}
			if req.Niche == "" {
				req.Niche = c.Niche
			}
			if req.Followers == 0 {
				req.Followers = c.Followers
			}
			if req.EngagementRatePercent == 0 {
				req.EngagementRatePercent = c.EngagementRatePercent
			}
			if req.RateCardURL == "" {
				req.RateCardURL = c.RateCardURL
			}
		}
	}

	if req.Rates.MinRate == 0 && req.Rates.MaxRate == 0 {
		est, err := engine.EstimateRate(req.Platform, req.Followers, req.Niche, req.EngagementRatePercent)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		req.Rates = est
	}

	email, err := h.composer.Compose(req)
	if err != nil {
		if errors.Is(err, engine.ErrMissingTemplateField) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "pitch composition failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"email": email})
}

// Niches lists the niches the engine knows about.
func (h *Handlers) Niches(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{"niches": engine.Niches()})
}
