package calendar

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lumina/creatorhub/internal/domain"
)

type memRepo struct {
	mu    sync.Mutex
	posts map[string]*domain.Post
}

func newMemRepo() *memRepo { return &memRepo{posts: make(map[string]*domain.Post)} }

func (m *memRepo) Get(_ context.Context, userID, id string) (*domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok || p.UserID != userID {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memRepo) List(_ context.Context, userID string, _ ListFilter) ([]domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Post
	for _, p := range m.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memRepo) Create(_ context.Context, p *domain.Post) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.posts[p.ID] = &cp
	return p.ID, nil
}

func (m *memRepo) Update(_ context.Context, userID, id string, u UpdateFields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok || p.UserID != userID {
		return ErrNotFound
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.ScheduledAt != nil {
		p.ScheduledAt = u.ScheduledAt
	}
	return nil
}

func (m *memRepo) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok || p.UserID != userID {
		return ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

type stubInspiration struct {
	items []domain.InspirationItem
	err   error
}

func (s *stubInspiration) FetchForNiche(_ context.Context, _ string, max int) ([]domain.InspirationItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	if max < len(s.items) {
		return s.items[:max], nil
	}
	return s.items, nil
}

// fixedNow pins time so slot arithmetic is deterministic.
// 2026-09-07 is a Monday.
var fixedNow = time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

func newTestService(repo Repository, insp InspirationSource) *Service {
	svc := NewService(repo, insp)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestService_CreateIdeaWithoutSchedule(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)

	p, err := svc.Create(context.Background(), "user-1", CreateInput{Title: "Gym tour"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if p.Status != domain.PostIdea {
		t.Errorf("status = %s, want idea", p.Status)
	}
}

func TestService_CreateScheduled(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)

	at := fixedNow.Add(48 * time.Hour)
	p, err := svc.Create(context.Background(), "user-1", CreateInput{Title: "Q&A", ScheduledAt: &at})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if p.Status != domain.PostScheduled {
		t.Errorf("status = %s, want scheduled", p.Status)
	}
}

func TestService_CreateRejectsPastSlot(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)

	at := fixedNow.Add(-time.Hour)
	_, err := svc.Create(context.Background(), "user-1", CreateInput{Title: "Too late", ScheduledAt: &at})
	if !errors.Is(err, ErrPastSlot) {
		t.Errorf("Create() error = %v, want ErrPastSlot", err)
	}
}

func TestService_SuggestSlot(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)

	got := svc.SuggestSlot("youtube", "business")
	if got.Weekday != "Thursday" || got.Hour != 15 {
		t.Fatalf("suggestion = %s %dh, want Thursday 15h", got.Weekday, got.Hour)
	}
	// Monday 08:00 -> next Thursday 15:00 same week
	want := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	if !got.NextAt.Equal(want) {
		t.Errorf("NextAt = %v, want %v", got.NextAt, want)
	}
	if got.NextAt.Weekday() != time.Thursday {
		t.Errorf("NextAt weekday = %v, want Thursday", got.NextAt.Weekday())
	}
}

func TestService_SuggestSlotSameDayRollsForward(t *testing.T) {
	svc := NewService(newMemRepo(), nil)
	// Thursday 16:00, after the recommended hour 15
	svc.now = func() time.Time { return time.Date(2026, 9, 10, 16, 0, 0, 0, time.UTC) }

	got := svc.SuggestSlot("youtube", "business")
	want := time.Date(2026, 9, 17, 15, 0, 0, 0, time.UTC)
	if !got.NextAt.Equal(want) {
		t.Errorf("NextAt = %v, want next Thursday %v", got.NextAt, want)
	}
}

func TestService_Inspiration(t *testing.T) {
	items := []domain.InspirationItem{
		{Title: "5 morning habits", Source: "Fitness Daily"},
		{Title: "Protein myths", Source: "Fitness Daily"},
	}
	svc := newTestService(newMemRepo(), &stubInspiration{items: items})

	got, err := svc.Inspiration(context.Background(), "fitness", 1)
	if err != nil {
		t.Fatalf("Inspiration() error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "5 morning habits" {
		t.Errorf("Inspiration() = %+v", got)
	}
}

func TestService_InspirationDisabled(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	if _, err := svc.Inspiration(context.Background(), "fitness", 3); !errors.Is(err, ErrNoInspiration) {
		t.Errorf("Inspiration() error = %v, want ErrNoInspiration", err)
	}
}
