package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/lumina/creatorhub/internal/ai"
	"github.com/lumina/creatorhub/internal/billing"
	"github.com/lumina/creatorhub/internal/cache"
	"github.com/lumina/creatorhub/internal/config"
	"github.com/lumina/creatorhub/internal/demo"
	"github.com/lumina/creatorhub/internal/engine"
	"github.com/lumina/creatorhub/internal/service/calendar"
	"github.com/lumina/creatorhub/internal/service/deal"
	"github.com/lumina/creatorhub/internal/service/profile"
	"github.com/lumina/creatorhub/internal/storage"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	profileSvc  *profile.Service
	dealSvc     *deal.Service
	calendarSvc *calendar.Service
	composer    *engine.PitchComposer
	aiClient    *ai.Client
	cache       *cache.Cache
	billingRecv *billing.Receiver
	mediaStore  *storage.Store
	demoState   *demo.Workspace
	config      *config.Config
	startedAt   time.Time
}

// NewHandlers creates a Handlers instance with the core services.
func NewHandlers(profileSvc *profile.Service, dealSvc *deal.Service, calendarSvc *calendar.Service, composer *engine.PitchComposer) *Handlers {
	return &Handlers{
		profileSvc:  profileSvc,
		dealSvc:     dealSvc,
		calendarSvc: calendarSvc,
		composer:    composer,
		startedAt:   time.Now(),
	}
}

// SetConfig sets the application config.
func (h *Handlers) SetConfig(cfg *config.Config) {
	h.config = cfg
}

// SetAIClient sets the AI content client.
func (h *Handlers) SetAIClient(client *ai.Client) {
	h.aiClient = client
}

// SetCache sets the Redis cache.
func (h *Handlers) SetCache(c *cache.Cache) {
	h.cache = c
}

// SetBillingReceiver sets the billing webhook receiver.
func (h *Handlers) SetBillingReceiver(rc *billing.Receiver) {
	h.billingRecv = rc
}

// SetMediaStore sets the S3 media-kit store.
func (h *Handlers) SetMediaStore(store *storage.Store) {
	h.mediaStore = store
}

// SetDemoWorkspace sets the seeded demo workspace.
func (h *Handlers) SetDemoWorkspace(w *demo.Workspace) {
	h.demoState = w
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func parseInt64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// HealthCheck reports process health and which collaborators are wired.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	body := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"features": map[string]bool{
			"ai":      h.aiClient != nil && h.aiClient.Enabled(),
			"cache":   h.cache != nil,
			"billing": h.billingRecv != nil,
			"storage": h.mediaStore != nil,
			"demo":    h.demoState != nil,
		},
	}
	if h.billingRecv != nil {
		received, applied, errs := h.billingRecv.Stats()
		body["billing_events"] = map[string]int64{
			"received": received,
			"applied":  applied,
			"errors":   errs,
		}
	}
	respondJSON(w, http.StatusOK, body)
}
