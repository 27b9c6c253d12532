package deal_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/service/deal"
)

// memRepo is an in-memory deal repository for unit testing.
type memRepo struct {
	mu    sync.Mutex
	deals map[string]*domain.Deal // keyed by id
}

func newMemRepo() *memRepo {
	return &memRepo{deals: make(map[string]*domain.Deal)}
}

func (m *memRepo) Get(_ context.Context, userID, id string) (*domain.Deal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.deals[id]
	if !ok || d.UserID != userID {
		return nil, deal.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memRepo) List(_ context.Context, userID string, f deal.ListFilter) ([]domain.Deal, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Deal
	for _, d := range m.deals {
		if d.UserID != userID {
			continue
		}
		if f.Stage != "" && string(d.Stage) != f.Stage {
			continue
		}
		out = append(out, *d)
	}
	return out, len(out), nil
}

func (m *memRepo) Create(_ context.Context, d *domain.Deal) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *d
	m.deals[d.ID] = &cp
	return d.ID, nil
}

func (m *memRepo) Update(_ context.Context, userID, id string, u deal.UpdateFields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.deals[id]
	if !ok || d.UserID != userID {
		return deal.ErrNotFound
	}
	if u.BrandName != nil {
		d.BrandName = *u.BrandName
	}
	if u.Value != nil {
		d.Value = *u.Value
	}
	if u.Notes != nil {
		d.Notes = *u.Notes
	}
	return nil
}

func (m *memRepo) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.deals[id]
	if !ok || d.UserID != userID {
		return deal.ErrNotFound
	}
	delete(m.deals, id)
	return nil
}

func (m *memRepo) UpdateStage(_ context.Context, userID, id string, stage domain.DealStage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.deals[id]
	if !ok || d.UserID != userID {
		return deal.ErrNotFound
	}
	d.Stage = stage
	return nil
}

func (m *memRepo) Summary(_ context.Context, userID string) (*domain.PipelineSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sum := &domain.PipelineSummary{StageCounts: make(map[string]int)}
	for _, d := range m.deals {
		if d.UserID != userID {
			continue
		}
		sum.TotalDeals++
		sum.StageCounts[string(d.Stage)]++
		switch d.Stage {
		case domain.DealWon:
			sum.WonDeals++
			sum.WonValue += d.Value
		case domain.DealLost:
		default:
			sum.OpenDeals++
			sum.OpenValue += d.Value
		}
	}
	return sum, nil
}

func TestService_CreateStartsAsLead(t *testing.T) {
	svc := deal.NewService(newMemRepo())

	d, err := svc.Create(context.Background(), "user-1", deal.CreateInput{
		BrandName: "Acme Outdoor",
		Value:     2500,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if d.Stage != domain.DealLead {
		t.Errorf("new deal stage = %s, want lead", d.Stage)
	}
	if d.ID == "" {
		t.Error("new deal has no ID")
	}
}

func TestService_CreateRequiresBrand(t *testing.T) {
	svc := deal.NewService(newMemRepo())
	if _, err := svc.Create(context.Background(), "user-1", deal.CreateInput{}); err == nil {
		t.Error("Create() without brand_name should fail")
	}
}

func TestService_TransitionHappyPath(t *testing.T) {
	svc := deal.NewService(newMemRepo())
	ctx := context.Background()

	d, err := svc.Create(ctx, "user-1", deal.CreateInput{BrandName: "Acme", Value: 1000})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	for _, next := range []domain.DealStage{domain.DealPitched, domain.DealNegotiating, domain.DealWon} {
		d, err = svc.Transition(ctx, "user-1", d.ID, next)
		if err != nil {
			t.Fatalf("Transition to %s error: %v", next, err)
		}
		if d.Stage != next {
			t.Errorf("stage = %s, want %s", d.Stage, next)
		}
	}
}

func TestService_TransitionRejectsSkips(t *testing.T) {
	svc := deal.NewService(newMemRepo())
	ctx := context.Background()

	d, _ := svc.Create(ctx, "user-1", deal.CreateInput{BrandName: "Acme"})

	// lead -> negotiating skips the pitch stage
	if _, err := svc.Transition(ctx, "user-1", d.ID, domain.DealNegotiating); !errors.Is(err, deal.ErrInvalidTransition) {
		t.Errorf("Transition error = %v, want ErrInvalidTransition", err)
	}
}

func TestService_TransitionRejectsClosedDeals(t *testing.T) {
	svc := deal.NewService(newMemRepo())
	ctx := context.Background()

	d, _ := svc.Create(ctx, "user-1", deal.CreateInput{BrandName: "Acme"})
	if _, err := svc.Transition(ctx, "user-1", d.ID, domain.DealLost); err != nil {
		t.Fatalf("Transition to lost error: %v", err)
	}

	if _, err := svc.Transition(ctx, "user-1", d.ID, domain.DealPitched); !errors.Is(err, deal.ErrTerminal) {
		t.Errorf("Transition error = %v, want ErrTerminal", err)
	}
}

func TestService_OwnershipEnforced(t *testing.T) {
	svc := deal.NewService(newMemRepo())
	ctx := context.Background()

	d, _ := svc.Create(ctx, "user-1", deal.CreateInput{BrandName: "Acme"})

	if _, err := svc.Get(ctx, "user-2", d.ID); !errors.Is(err, deal.ErrNotFound) {
		t.Errorf("Get() by other user error = %v, want ErrNotFound", err)
	}
}

func TestService_Summary(t *testing.T) {
	svc := deal.NewService(newMemRepo())
	ctx := context.Background()

	d1, _ := svc.Create(ctx, "user-1", deal.CreateInput{BrandName: "Acme", Value: 1000})
	svc.Create(ctx, "user-1", deal.CreateInput{BrandName: "Globex", Value: 700})
	svc.Create(ctx, "user-2", deal.CreateInput{BrandName: "Initech", Value: 9999})

	svc.Transition(ctx, "user-1", d1.ID, domain.DealPitched)
	svc.Transition(ctx, "user-1", d1.ID, domain.DealWon)

	sum, err := svc.Summary(ctx, "user-1")
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	if sum.TotalDeals != 2 {
		t.Errorf("TotalDeals = %d, want 2", sum.TotalDeals)
	}
	if sum.WonDeals != 1 || sum.WonValue != 1000 {
		t.Errorf("won = %d/%d, want 1/1000", sum.WonDeals, sum.WonValue)
	}
	if sum.OpenDeals != 1 || sum.OpenValue != 700 {
		t.Errorf("open = %d/%d, want 1/700", sum.OpenDeals, sum.OpenValue)
	}
}
