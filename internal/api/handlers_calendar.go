package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lumina/creatorhub/internal/auth"
	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/service/calendar"
)

// ListPosts returns calendar entries in the requested window.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := calendar.ListFilter{
		Status: q.Get("status"),
		Limit:  int(parseInt64(q.Get("limit"))),
	}
	if from, err := time.Parse(time.RFC3339, q.Get("from")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse(time.RFC3339, q.Get("to")); err == nil {
		filter.To = &to
	}

	posts, err := h.calendarSvc.List(r.Context(), auth.UserID(r.Context()), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}

// CreatePost adds a calendar entry.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var input calendar.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.calendarSvc.Create(r.Context(), auth.UserID(r.Context()), input)
	if err != nil {
		if errors.Is(err, calendar.ErrPastSlot) {
			respondError(w, http.StatusBadRequest, "scheduled time is in the past")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.cache.InvalidateDashboard(r.Context(), auth.UserID(r.Context()))
	respondJSON(w, http.StatusCreated, p)
}

type updatePostRequest struct {
	Title       *string            `json:"title"`
	Caption     *string            `json:"caption"`
	ContentType *string            `json:"content_type"`
	Status      *domain.PostStatus `json:"status"`
	ScheduledAt *time.Time         `json:"scheduled_at"`
}

// UpdatePost modifies a calendar entry.
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req updatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.calendarSvc.Update(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"), calendar.UpdateFields{
		Title:       req.Title,
		Caption:     req.Caption,
		ContentType: req.ContentType,
		Status:      req.Status,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrNotFound):
			respondError(w, http.StatusNotFound, "post not found")
		case errors.Is(err, calendar.ErrPastSlot):
			respondError(w, http.StatusBadRequest, "scheduled time is in the past")
		default:
			respondError(w, http.StatusInternalServerError, "update failed")
		}
		return
	}

	h.cache.InvalidateDashboard(r.Context(), auth.UserID(r.Context()))
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeletePost removes a calendar entry.
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	err := h.calendarSvc.Delete(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, calendar.ErrNotFound) {
			respondError(w, http.StatusNotFound, "post not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "delete failed")
		return
	}

	h.cache.InvalidateDashboard(r.Context(), auth.UserID(r.Context()))
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// SuggestSlot recommends the next concrete posting time.
func (h *Handlers) SuggestSlot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	suggestion := h.calendarSvc.SuggestSlot(q.Get("platform"), q.Get("niche"))
	respondJSON(w, http.StatusOK, suggestion)
}

// Inspiration returns content ideas pulled from niche feeds.
func (h *Handlers) Inspiration(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.calendarSvc.Inspiration(r.Context(), q.Get("niche"), int(parseInt64(q.Get("max"))))
	if err != nil {
		if errors.Is(err, calendar.ErrNoInspiration) {
			respondError(w, http.StatusServiceUnavailable, "inspiration feeds are not configured")
			return
		}
		respondError(w, http.StatusInternalServerError, "feed fetch failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}
