package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumina/creatorhub/internal/auth"
	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/service/deal"
)

// ListDeals returns the user's deals, optionally filtered by stage.
func (h *Handlers) ListDeals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := deal.ListFilter{
		Stage:  q.Get("stage"),
		Limit:  int(parseInt64(q.Get("limit"))),
		Offset: int(parseInt64(q.Get("offset"))),
	}

	deals, total, err := h.dealSvc.List(r.Context(), auth.UserID(r.Context()), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"deals": deals,
		"total": total,
	})
}

// GetDeal returns one deal.
func (h *Handlers) GetDeal(w http.ResponseWriter, r *http.Request) {
	d, err := h.dealSvc.Get(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, deal.ErrNotFound) {
			respondError(w, http.StatusNotFound, "deal not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	respondJSON(w, http.StatusOK, d)
}

// CreateDeal adds a new lead to the pipeline.
func (h *Handlers) CreateDeal(w http.ResponseWriter, r *http.Request) {
	var input deal.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.dealSvc.Create(r.Context(), auth.UserID(r.Context()), input)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.cache.InvalidateDashboard(r.Context(), auth.UserID(r.Context()))
	respondJSON(w, http.StatusCreated, d)
}

type updateDealRequest struct {
	BrandName   *string `json:"brand_name"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email"`
	Value       *int64  `json:"value"`
	Notes       *string `json:"notes"`
}

// UpdateDeal modifies deal fields. Stage changes go through TransitionDeal.
func (h *Handlers) UpdateDeal(w http.ResponseWriter, r *http.Request) {
	var req updateDealRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.dealSvc.Update(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"), deal.UpdateFields{
		BrandName:   req.BrandName,
		ContactName: req.ContactName,
		Email:       req.Email,
		Value:       req.Value,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, deal.ErrNotFound) {
			respondError(w, http.StatusNotFound, "deal not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "update failed")
		return
	}

	h.cache.InvalidateDashboard(r.Context(), auth.UserID(r.Context()))
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

type transitionRequest struct {
	Stage string `json:"stage"`
}

// TransitionDeal moves a deal along the pipeline, enforcing the stage graph.
func (h *Handlers) TransitionDeal(w http.ResponseWriter, r *http.Request) {
	var req transitionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.dealSvc.Transition(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"), domain.DealStage(req.Stage))
	if err != nil {
		switch {
		case errors.Is(err, deal.ErrNotFound):
			respondError(w, http.StatusNotFound, "deal not found")
		case errors.Is(err, deal.ErrInvalidTransition), errors.Is(err, deal.ErrTerminal):
			respondError(w, http.StatusConflict, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "transition failed")
		}
		return
	}

	h.cache.InvalidateDashboard(r.Context(), auth.UserID(r.Context()))
	respondJSON(w, http.StatusOK, d)
}

// DeleteDeal removes a deal.
func (h *Handlers) DeleteDeal(w http.ResponseWriter, r *http.Request) {
	err := h.dealSvc.Delete(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, deal.ErrNotFound) {
			respondError(w, http.StatusNotFound, "deal not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "delete failed")
		return
	}

	h.cache.InvalidateDashboard(r.Context(), auth.UserID(r.Context()))
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// DealSummary aggregates the pipeline for the dashboard.
func (h *Handlers) DealSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.dealSvc.Summary(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "summary failed")
		return
	}
	respondJSON(w, http.StatusOK, sum)
}
