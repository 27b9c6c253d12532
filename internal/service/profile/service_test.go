package profile

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/engine"
)

type memRepo struct {
	mu     sync.Mutex
	byUser map[string]*domain.Creator
	nextID int
}

func newMemRepo() *memRepo {
	return &memRepo{byUser: make(map[string]*domain.Creator)}
}

func (m *memRepo) GetByUser(_ context.Context, userID string) (*domain.Creator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byUser[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memRepo) Upsert(_ context.Context, c *domain.Creator) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		m.nextID++
		c.ID = string(rune('a' + m.nextID))
	}
	cp := *c
	m.byUser[c.UserID] = &cp
	return c.ID, nil
}

func (m *memRepo) UpdateTier(_ context.Context, userID string, tier domain.SubscriptionTier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byUser[userID]
	if !ok {
		return ErrNotFound
	}
	c.Tier = tier
	return nil
}

func (m *memRepo) UpdateMediaKit(_ context.Context, userID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byUser[userID]
	if !ok {
		return ErrNotFound
	}
	c.MediaKitKey = key
	return nil
}

type memRates struct {
	mu   sync.Mutex
	recs []domain.RateRecord
}

func (m *memRates) Save(_ context.Context, r *domain.RateRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = "rec-1"
	m.recs = append([]domain.RateRecord{*r}, m.recs...)
	return r.ID, nil
}

func (m *memRates) ListByUser(_ context.Context, userID string, limit int) ([]domain.RateRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.RateRecord
	for _, r := range m.recs {
		if r.UserID == userID && len(out) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestService_UpsertNewProfile(t *testing.T) {
	svc := NewService(newMemRepo(), &memRates{})

	c, err := svc.Upsert(context.Background(), "user-1", UpsertInput{
		DisplayName: "Maya Chen",
		Platform:    "instagram",
		Niche:       "fitness",
		Followers:   50000,
	})
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if c.Tier != domain.TierFree {
		t.Errorf("tier = %s, want free", c.Tier)
	}
}

func TestService_UpsertPreservesTier(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, &memRates{})

	if _, err := svc.Upsert(context.Background(), "user-1", UpsertInput{DisplayName: "Maya"}); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if err := svc.SetTier(context.Background(), "user-1", domain.TierPro); err != nil {
		t.Fatalf("SetTier() error: %v", err)
	}

	c, err := svc.Upsert(context.Background(), "user-1", UpsertInput{DisplayName: "Maya C", Followers: 60000})
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if c.Tier != domain.TierPro {
		t.Errorf("tier after re-upsert = %s, want pro", c.Tier)
	}
}

func TestService_UpsertValidation(t *testing.T) {
	svc := NewService(newMemRepo(), &memRates{})

	if _, err := svc.Upsert(context.Background(), "user-1", UpsertInput{}); err == nil {
		t.Error("Upsert() with empty display name should fail")
	}
	_, err := svc.Upsert(context.Background(), "user-1", UpsertInput{DisplayName: "x", Followers: -5})
	if !errors.Is(err, engine.ErrInvalidFollowerCount) {
		t.Errorf("Upsert() error = %v, want ErrInvalidFollowerCount", err)
	}
}

func TestService_SaveEstimate(t *testing.T) {
	rates := &memRates{}
	svc := NewService(newMemRepo(), rates)

	rec, err := svc.SaveEstimate(context.Background(), "user-1", "instagram", "lifestyle", 50000, 3.5)
	if err != nil {
		t.Fatalf("SaveEstimate() error: %v", err)
	}
	if rec.EstimatedMin != 460 || rec.EstimatedMax != 748 {
		t.Errorf("estimate = %d-%d, want 460-748", rec.EstimatedMin, rec.EstimatedMax)
	}

	got, err := svc.History(context.Background(), "user-1", 10)
	if err != nil {
		t.Fatalf("History() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("history length = %d, want 1", len(got))
	}
}

func TestService_SaveEstimateRejectsBadInput(t *testing.T) {
	svc := NewService(newMemRepo(), &memRates{})
	_, err := svc.SaveEstimate(context.Background(), "user-1", "instagram", "tech", -1, 2.0)
	if !errors.Is(err, engine.ErrInvalidFollowerCount) {
		t.Errorf("SaveEstimate() error = %v, want ErrInvalidFollowerCount", err)
	}
}
