// Package demo provides a seeded in-memory workspace so the product is fully
// usable without Postgres. The workspace implements the same repository
// contracts as the Postgres layer and is passed to services by reference;
// Reset restores the seed data at any time.
package demo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/service/calendar"
	"github.com/lumina/creatorhub/internal/service/deal"
	"github.com/lumina/creatorhub/internal/service/profile"
)

// Workspace is an in-memory data store seeded with a demo creator.
type Workspace struct {
	mu       sync.RWMutex
	userID   string
	creators map[string]*domain.Creator
	deals    map[string]*domain.Deal
	posts    map[string]*domain.Post
	rates    []domain.RateRecord
}

// New creates a seeded workspace for the given demo user.
func New(userID string) *Workspace {
	w := &Workspace{userID: userID}
	w.Reset()
	return w
}

// Reset discards all changes and restores the seed data.
func (w *Workspace) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	w.creators = map[string]*domain.Creator{
		w.userID: {
			ID:                    uuid.New().String(),
			UserID:                w.userID,
			DisplayName:           "Maya Chen",
			Email:                 "maya@example.com",
			Platform:              "instagram",
			Niche:                 "fitness",
			Followers:             50000,
			EngagementRatePercent: 3.5,
			Tier:                  domain.TierFree,
			CreatedAt:             now,
			UpdatedAt:             now,
		},
	}

	w.deals = make(map[string]*domain.Deal)
	for _, d := range []domain.Deal{
		{BrandName: "GlowSkin", ContactName: "Sam Ortiz", Email: "sam@glowskin.com", Stage: domain.DealNegotiating, Value: 800, Notes: "Wants a reel + story set"},
		{BrandName: "PeakFuel", ContactName: "Jordan Lee", Email: "partnerships@peakfuel.co", Stage: domain.DealPitched, Value: 550},
		{BrandName: "FlexWear", Stage: domain.DealLead},
		{BrandName: "HydraBottle", Email: "brand@hydrabottle.com", Stage: domain.DealWon, Value: 600, Notes: "Paid, content shipped"},
	} {
		d.ID = uuid.New().String()
		d.UserID = w.userID
		d.CreatedAt = now
		d.UpdatedAt = now
		cp := d
		w.deals[d.ID] = &cp
	}

	w.posts = make(map[string]*domain.Post)
	in := func(days int, hour int) *time.Time {
		t := now.AddDate(0, 0, days)
		t = time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, time.UTC)
		return &t
	}
	for _, p := range []domain.Post{
		{Title: "Gym bag essentials", Platform: "instagram", ContentType: "Reel", Status: domain.PostScheduled, ScheduledAt: in(2, 17)},
		{Title: "Form check: deadlifts", Platform: "instagram", ContentType: "Carousel", Status: domain.PostDrafted},
		{Title: "What I eat in a day", Platform: "instagram", Status: domain.PostIdea},
	} {
		p.ID = uuid.New().String()
		p.UserID = w.userID
		p.CreatedAt = now
		p.UpdatedAt = now
		cp := p
		w.posts[p.ID] = &cp
	}

	w.rates = []domain.RateRecord{
		{
			ID:                    uuid.New().String(),
			UserID:                w.userID,
			Platform:              "instagram",
			Niche:                 "fitness",
			Followers:             42000,
			EngagementRatePercent: 3.1,
			EstimatedMin:          403,
			EstimatedMax:          656,
			CreatedAt:             now.AddDate(0, -2, 0),
		},
	}
}

// Deals returns the workspace's deal repository.
func (w *Workspace) Deals() deal.Repository { return &dealStore{w} }

// Posts returns the workspace's calendar repository.
func (w *Workspace) Posts() calendar.Repository { return &postStore{w} }

// Profiles returns the workspace's profile repository.
func (w *Workspace) Profiles() profile.Repository { return &profileStore{w} }

// Rates returns the workspace's rate history repository.
func (w *Workspace) Rates() profile.RateHistoryRepository { return &rateStore{w} }

type dealStore struct{ w *Workspace }

func (s *dealStore) Get(_ context.Context, userID, id string) (*domain.Deal, error) {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()
	d, ok := s.w.deals[id]
	if !ok || d.UserID != userID {
		return nil, deal.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *dealStore) List(_ context.Context, userID string, f deal.ListFilter) ([]domain.Deal, int, error) {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()

	var out []domain.Deal
	for _, d := range s.w.deals {
		if d.UserID != userID {
			continue
		}
		if f.Stage != "" && string(d.Stage) != f.Stage {
			continue
		}
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	total := len(out)
	out = paginate(out, f.Offset, f.Limit)
	return out, total, nil
}

func (s *dealStore) Create(_ context.Context, d *domain.Deal) (string, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	cp := *d
	s.w.deals[d.ID] = &cp
	return d.ID, nil
}

func (s *dealStore) Update(_ context.Context, userID, id string, u deal.UpdateFields) error {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	d, ok := s.w.deals[id]
	if !ok || d.UserID != userID {
		return deal.ErrNotFound
	}
	if u.BrandName != nil {
		d.BrandName = *u.BrandName
	}
	if u.ContactName != nil {
		d.ContactName = *u.ContactName
	}
	if u.Email != nil {
		d.Email = *u.Email
	}
	if u.Value != nil {
		d.Value = *u.Value
	}
	if u.Notes != nil {
		d.Notes = *u.Notes
	}
	d.UpdatedAt = time.Now()
	return nil
}

func (s *dealStore) Delete(_ context.Context, userID, id string) error {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	d, ok := s.w.deals[id]
	if !ok || d.UserID != userID {
		return deal.ErrNotFound
	}
	delete(s.w.deals, id)
	return nil
}

func (s *dealStore) UpdateStage(_ context.Context, userID, id string, stage domain.DealStage) error {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	d, ok := s.w.deals[id]
	if !ok || d.UserID != userID {
		return deal.ErrNotFound
	}
	d.Stage = stage
	d.UpdatedAt = time.Now()
	return nil
}

func (s *dealStore) Summary(_ context.Context, userID string) (*domain.PipelineSummary, error) {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()

	sum := &domain.PipelineSummary{StageCounts: make(map[string]int)}
	for _, d := range s.w.deals {
		if d.UserID != userID {
			continue
		}
		sum.StageCounts[string(d.Stage)]++
		sum.TotalDeals++
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

type postStore struct{ w *Workspace }

func (s *postStore) Get(_ context.Context, userID, id string) (*domain.Post, error) {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()
	p, ok := s.w.posts[id]
	if !ok || p.UserID != userID {
		return nil, calendar.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *postStore) List(_ context.Context, userID string, f calendar.ListFilter) ([]domain.Post, error) {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()

	var out []domain.Post
	for _, p := range s.w.posts {
		if p.UserID != userID {
			continue
		}
		if f.Status != "" && string(p.Status) != f.Status {
			continue
		}
		if f.From != nil && (p.ScheduledAt == nil || p.ScheduledAt.Before(*f.From)) {
			continue
		}
		if f.To != nil && (p.ScheduledAt == nil || !p.ScheduledAt.Before(*f.To)) {
			continue
		}
		out = append(out, *p)
	}
	// Scheduled first in time order, ideas last
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].ScheduledAt, out[j].ScheduledAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *postStore) Create(_ context.Context, p *domain.Post) (string, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	s.w.posts[p.ID] = &cp
	return p.ID, nil
}

func (s *postStore) Update(_ context.Context, userID, id string, u calendar.UpdateFields) error {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	p, ok := s.w.posts[id]
	if !ok || p.UserID != userID {
		return calendar.ErrNotFound
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Caption != nil {
		p.Caption = *u.Caption
	}
	if u.ContentType != nil {
		p.ContentType = *u.ContentType
	}
	if u.Status != nil {
		p.Status = *u.Status
		if *u.Status == domain.PostPublished {
			now := time.Now()
			p.PublishedAt = &now
		}
	}
	if u.ScheduledAt != nil {
		p.ScheduledAt = u.ScheduledAt
	}
	p.UpdatedAt = time.Now()
	return nil
}

func (s *postStore) Delete(_ context.Context, userID, id string) error {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	p, ok := s.w.posts[id]
	if !ok || p.UserID != userID {
		return calendar.ErrNotFound
	}
	delete(s.w.posts, id)
	return nil
}

type profileStore struct{ w *Workspace }

func (s *profileStore) GetByUser(_ context.Context, userID string) (*domain.Creator, error) {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()
	c, ok := s.w.creators[userID]
	if !ok {
		return nil, profile.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *profileStore) Upsert(_ context.Context, c *domain.Creator) (string, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.UpdatedAt = time.Now()
	if existing, ok := s.w.creators[c.UserID]; ok {
		c.CreatedAt = existing.CreatedAt
	} else {
		c.CreatedAt = c.UpdatedAt
	}
	cp := *c
	s.w.creators[c.UserID] = &cp
	return c.ID, nil
}

func (s *profileStore) UpdateTier(_ context.Context, userID string, tier domain.SubscriptionTier) error {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	c, ok := s.w.creators[userID]
	if !ok {
		return profile.ErrNotFound
	}
	c.Tier = tier
	c.UpdatedAt = time.Now()
	return nil
}

func (s *profileStore) UpdateMediaKit(_ context.Context, userID, key string) error {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	c, ok := s.w.creators[userID]
	if !ok {
		return profile.ErrNotFound
	}
	c.MediaKitKey = key
	c.UpdatedAt = time.Now()
	return nil
}

type rateStore struct{ w *Workspace }

func (s *rateStore) Save(_ context.Context, r *domain.RateRecord) (string, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = time.Now()
	s.w.rates = append(s.w.rates, *r)
	return r.ID, nil
}

func (s *rateStore) ListByUser(_ context.Context, userID string, limit int) ([]domain.RateRecord, error) {
	s.w.mu.RLock()
	defer s.w.mu.RUnlock()

	var out []domain.RateRecord
	for _, r := range s.w.rates {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func paginate(deals []domain.Deal, offset, limit int) []domain.Deal {
	if limit <= 0 {
		limit = 50
	}
	if offset >= len(deals) {
		return nil
	}
	deals = deals[offset:]
	if len(deals) > limit {
		deals = deals[:limit]
	}
	return deals
}

// Describe returns a short human summary for the health endpoint.
func (w *Workspace) Describe() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return fmt.Sprintf("demo workspace: %d deals, %d posts", len(w.deals), len(w.posts))
}
