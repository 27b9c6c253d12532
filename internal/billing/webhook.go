// Package billing receives subscription lifecycle events from the hosted
// billing provider and applies tier changes to creator profiles. Events are
// staged to Postgres before being applied so a crash mid-handler loses
// nothing.
package billing

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/pkg/logger"
)

// Event types sent by the provider.
const (
	EventSubscriptionCreated = "subscription.created"
	EventSubscriptionUpdated = "subscription.updated"
	EventSubscriptionDeleted = "subscription.deleted"
)

// planTiers maps provider plan codes to subscription tiers.
var planTiers = map[string]domain.SubscriptionTier{
	"pro":    domain.TierPro,
	"studio": domain.TierStudio,
}

// TierApplier applies a subscription tier change to a user. Implemented by
// the profile service.
type TierApplier interface {
	SetTier(ctx context.Context, userID string, tier domain.SubscriptionTier) error
}

// SubscriptionEvent is the webhook payload.
type SubscriptionEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	Plan      string    `json:"plan"`
	Timestamp time.Time `json:"timestamp"`
}

// Receiver handles billing webhook deliveries.
type Receiver struct {
	db      *sql.DB // optional; nil skips staging
	applier TierApplier

	eventsReceived int64
	eventsApplied  int64
	errors         int64
}

// NewReceiver creates a webhook receiver. db may be nil when Postgres is
// disabled.
func NewReceiver(db *sql.DB, applier TierApplier) *Receiver {
	return &Receiver{db: db, applier: applier}
}

// HandleWebhook ingests one subscription event.
func (rc *Receiver) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt64(&rc.eventsReceived, 1)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	var event SubscriptionEvent
	if err := json.Unmarshal(body, &event); err != nil {
		atomic.AddInt64(&rc.errors, 1)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if event.UserID == "" || event.Type == "" {
		atomic.AddInt64(&rc.errors, 1)
		http.Error(w, "Missing user_id or type", http.StatusBadRequest)
		return
	}

	rc.stage(r.Context(), &event, body)

	tier, ok := rc.resolveTier(&event)
	if !ok {
		// Unknown event types are acknowledged so the provider stops
		// redelivering them.
		logger.Warn("ignoring billing event", "type", event.Type)
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := rc.applier.SetTier(r.Context(), event.UserID, tier); err != nil {
		atomic.AddInt64(&rc.errors, 1)
		logger.Error("tier change failed", "user_id", event.UserID, "error", err.Error())
		http.Error(w, "Failed to apply event", http.StatusInternalServerError)
		return
	}

	atomic.AddInt64(&rc.eventsApplied, 1)
	w.WriteHeader(http.StatusOK)
}

// resolveTier maps an event to the tier it should leave the user on.
func (rc *Receiver) resolveTier(event *SubscriptionEvent) (domain.SubscriptionTier, bool) {
	switch event.Type {
	case EventSubscriptionCreated, EventSubscriptionUpdated:
		tier, ok := planTiers[event.Plan]
		if !ok {
			return domain.TierFree, false
		}
		return tier, true
	case EventSubscriptionDeleted:
		return domain.TierFree, true
	default:
		return domain.TierFree, false
	}
}

func (rc *Receiver) stage(ctx context.Context, event *SubscriptionEvent, payload []byte) {
	if rc.db == nil {
		return
	}
	ts := event.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := rc.db.ExecContext(ctx, `
		INSERT INTO billing_events (event_id, event_type, user_id, payload, event_timestamp, received_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (event_id) DO NOTHING
	`, event.ID, event.Type, event.UserID, payload, ts)
	if err != nil {
		logger.Warn("billing event staging failed", "error", err.Error())
	}
}

// Stats returns receiver counters for the health endpoint.
func (rc *Receiver) Stats() (received, applied, errors int64) {
	return atomic.LoadInt64(&rc.eventsReceived),
		atomic.LoadInt64(&rc.eventsApplied),
		atomic.LoadInt64(&rc.errors)
}
