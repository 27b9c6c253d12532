package api

import (
	"errors"
	"net/http"

	"github.com/lumina/creatorhub/internal/ai"
)

type viralityRequest struct {
	Platform string `json:"platform"`
	Niche    string `json:"niche"`
	Idea     string `json:"idea"`
}

// ScoreVirality rates a content idea with the AI scorer.
func (h *Handlers) ScoreVirality(w http.ResponseWriter, r *http.Request) {
	if h.aiClient == nil {
		respondError(w, http.StatusServiceUnavailable, "ai features are not configured")
		return
	}

	var req viralityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Idea == "" {
		respondError(w, http.StatusBadRequest, "idea is required")
		return
	}

	result, err := h.aiClient.ScoreVirality(r.Context(), req.Platform, req.Niche, req.Idea)
	if err != nil {
		h.respondAIError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type captionsRequest struct {
	Platform string `json:"platform"`
	Niche    string `json:"niche"`
	Caption  string `json:"caption"`
}

// ImproveCaptions returns three AI-written caption variants.
func (h *Handlers) ImproveCaptions(w http.ResponseWriter, r *http.Request) {
	if h.aiClient == nil {
		respondError(w, http.StatusServiceUnavailable, "ai features are not configured")
		return
	}

	var req captionsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Caption == "" {
		respondError(w, http.StatusBadRequest, "caption is required")
		return
	}

	variants, err := h.aiClient.ImproveCaptions(r.Context(), req.Platform, req.Niche, req.Caption)
	if err != nil {
		h.respondAIError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"variants": variants})
}

func (h *Handlers) respondAIError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ai.ErrDisabled):
		respondError(w, http.StatusServiceUnavailable, "ai features are not configured")
	case errors.Is(err, ai.ErrBadModelOutput):
		respondError(w, http.StatusBadGateway, "model returned unusable output")
	default:
		respondError(w, http.StatusBadGateway, "ai request failed")
	}
}
