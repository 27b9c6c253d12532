package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/engine"
)

// Service implements content calendar business logic.
type Service struct {
	repo        Repository
	inspiration InspirationSource
	now         func() time.Time
}

// NewService creates a calendar service backed by the given repository.
// inspiration may be nil when feeds are disabled.
func NewService(repo Repository, inspiration InspirationSource) *Service {
	return &Service{repo: repo, inspiration: inspiration, now: time.Now}
}

// Get returns a single post.
func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Post, error) {
	return s.repo.Get(ctx, userID, id)
}

// List returns posts in the requested calendar window.
func (s *Service) List(ctx context.Context, userID string, f ListFilter) ([]domain.Post, error) {
	return s.repo.List(ctx, userID, f)
}

// Create validates and persists a new calendar entry. Posts without a
// scheduled time start as ideas.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (*domain.Post, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	status := domain.PostIdea
	if input.ScheduledAt != nil {
		if input.ScheduledAt.Before(s.now()) {
			return nil, ErrPastSlot
		}
		status = domain.PostScheduled
	}

	p := &domain.Post{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       input.Title,
		Caption:     input.Caption,
		Platform:    input.Platform,
		ContentType: input.ContentType,
		Status:      status,
		ScheduledAt: input.ScheduledAt,
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

// Update modifies mutable post fields.
func (s *Service) Update(ctx context.Context, userID, id string, u UpdateFields) error {
	if u.ScheduledAt != nil && u.ScheduledAt.Before(s.now()) {
		return ErrPastSlot
	}
	return s.repo.Update(ctx, userID, id, u)
}

// Delete removes a post.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// SlotSuggestion is a concrete datetime recommendation derived from the
// scored weekly schedule.
type SlotSuggestion struct {
	Weekday string    `json:"weekday"`
	Hour    int       `json:"hour"`
	Score   int       `json:"score"`
	NextAt  time.Time `json:"next_at"`
}

// SuggestSlot returns the best posting slot for a platform/niche pair as an
// absolute time: the next future occurrence of the recommended weekday and
// hour, in UTC.
func (s *Service) SuggestSlot(platform, niche string) SlotSuggestion {
	schedule := engine.RecommendBestTimes(platform, niche)
	best := schedule.Best
	return SlotSuggestion{
		Weekday: best.Weekday,
		Hour:    best.Hour,
		Score:   best.Score,
		NextAt:  nextOccurrence(s.now().UTC(), best.Weekday, best.Hour),
	}
}

// Inspiration returns content ideas for the creator's niche.
func (s *Service) Inspiration(ctx context.Context, niche string, max int) ([]domain.InspirationItem, error) {
	if s.inspiration == nil {
		return nil, ErrNoInspiration
	}
	return s.inspiration.FetchForNiche(ctx, niche, max)
}

var weekdayIndex = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
	"Sunday":    time.Sunday,
}

// nextOccurrence finds the next future time matching weekday and hour.
func nextOccurrence(now time.Time, weekday string, hour int) time.Time {
	target := weekdayIndex[weekday]
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
	daysUntil := (int(target) - int(now.Weekday()) + 7) % 7
	next = next.AddDate(0, 0, daysUntil)
	if !next.After(now) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}

// CreateInput holds the fields for creating a new calendar entry.
type CreateInput struct {
	Title       string     `json:"title"`
	Caption     string     `json:"caption"`
	Platform    string     `json:"platform"`
	ContentType string     `json:"content_type"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}
