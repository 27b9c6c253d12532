package billing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lumina/creatorhub/internal/domain"
)

type tierRecorder struct {
	calls map[string]domain.SubscriptionTier
	err   error
}

func (t *tierRecorder) SetTier(_ context.Context, userID string, tier domain.SubscriptionTier) error {
	if t.err != nil {
		return t.err
	}
	if t.calls == nil {
		t.calls = make(map[string]domain.SubscriptionTier)
	}
	t.calls[userID] = tier
	return nil
}

func deliver(t *testing.T, rc *Receiver, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/webhooks/billing", strings.NewReader(body))
	rec := httptest.NewRecorder()
	rc.HandleWebhook(rec, req)
	return rec
}

func TestHandleWebhook_CreatedUpgradesTier(t *testing.T) {
	applier := &tierRecorder{}
	rc := NewReceiver(nil, applier)

	rec := deliver(t, rc, `{"id":"evt-1","type":"subscription.created","user_id":"user-1","plan":"pro"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if applier.calls["user-1"] != domain.TierPro {
		t.Errorf("tier = %s, want pro", applier.calls["user-1"])
	}
}

func TestHandleWebhook_DeletedDowngradesToFree(t *testing.T) {
	applier := &tierRecorder{}
	rc := NewReceiver(nil, applier)

	deliver(t, rc, `{"id":"evt-2","type":"subscription.deleted","user_id":"user-1"}`)
	if applier.calls["user-1"] != domain.TierFree {
		t.Errorf("tier = %s, want free", applier.calls["user-1"])
	}
}

func TestHandleWebhook_UpdatedToStudio(t *testing.T) {
	applier := &tierRecorder{}
	rc := NewReceiver(nil, applier)

	deliver(t, rc, `{"id":"evt-3","type":"subscription.updated","user_id":"user-2","plan":"studio"}`)
	if applier.calls["user-2"] != domain.TierStudio {
		t.Errorf("tier = %s, want studio", applier.calls["user-2"])
	}
}

func TestHandleWebhook_UnknownEventAcknowledged(t *testing.T) {
	applier := &tierRecorder{}
	rc := NewReceiver(nil, applier)

	rec := deliver(t, rc, `{"id":"evt-4","type":"invoice.paid","user_id":"user-1"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for unknown event", rec.Code)
	}
	if len(applier.calls) != 0 {
		t.Error("unknown event should not change tiers")
	}
}

func TestHandleWebhook_BadPayloads(t *testing.T) {
	rc := NewReceiver(nil, &tierRecorder{})

	if rec := deliver(t, rc, `not json`); rec.Code != http.StatusBadRequest {
		t.Errorf("invalid JSON status = %d, want 400", rec.Code)
	}
	if rec := deliver(t, rc, `{"type":"subscription.created"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing user_id status = %d, want 400", rec.Code)
	}

	received, applied, errs := rc.Stats()
	if received != 2 || applied != 0 || errs != 2 {
		t.Errorf("stats = %d/%d/%d, want 2/0/2", received, applied, errs)
	}
}
