package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/lumina/creatorhub/internal/auth"
	"github.com/lumina/creatorhub/internal/service/profile"
)

// GetProfile returns the user's creator profile.
func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	c, err := h.profileSvc.Get(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			respondError(w, http.StatusNotFound, "profile not set up yet")
			return
		}
		respondError(w, http.StatusInternalServerError, "profile lookup failed")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// UpsertProfile creates or replaces the user's profile.
func (h *Handlers) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var input profile.UpsertInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.profileSvc.Upsert(r.Context(), auth.UserID(r.Context()), input)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.cache.InvalidateDashboard(r.Context(), auth.UserID(r.Context()))
	respondJSON(w, http.StatusOK, c)
}

// UploadMediaKit stores a media-kit file in S3 and records its key on the
// profile. Expects a multipart form with a "file" part.
func (h *Handlers) UploadMediaKit(w http.ResponseWriter, r *http.Request) {
	if h.mediaStore == nil {
		respondError(w, http.StatusServiceUnavailable, "media storage is not configured")
		return
	}

	if err := r.ParseMultipartForm(12 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file part")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "read upload failed")
		return
	}

	userID := auth.UserID(r.Context())
	kit, err := h.mediaStore.Upload(r.Context(), userID, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.profileSvc.SetMediaKit(r.Context(), userID, kit.Key); err != nil && !errors.Is(err, profile.ErrNotFound) {
		respondError(w, http.StatusInternalServerError, "record media kit failed")
		return
	}

	respondJSON(w, http.StatusCreated, kit)
}

// MediaKitURL returns a presigned URL for the user's stored media kit.
func (h *Handlers) MediaKitURL(w http.ResponseWriter, r *http.Request) {
	if h.mediaStore == nil {
		respondError(w, http.StatusServiceUnavailable, "media storage is not configured")
		return
	}

	c, err := h.profileSvc.Get(r.Context(), auth.UserID(r.Context()))
	if err != nil || c.MediaKitKey == "" {
		respondError(w, http.StatusNotFound, "no media kit uploaded")
		return
	}

	url, err := h.mediaStore.URL(r.Context(), c.MediaKitKey)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "presign failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}
