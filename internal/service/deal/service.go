package deal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/pkg/logger"
)

// Service implements deal pipeline business logic. All public methods are
// safe for concurrent use if the underlying repository is concurrency-safe.
type Service struct {
	repo Repository
}

// NewService creates a deal service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns a single deal.
func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Deal, error) {
	return s.repo.Get(ctx, userID, id)
}

// List returns deals matching the filter.
func (s *Service) List(ctx context.Context, userID string, f ListFilter) ([]domain.Deal, int, error) {
	return s.repo.List(ctx, userID, f)
}

// Create validates and persists a new deal in the lead stage.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (*domain.Deal, error) {
	if input.BrandName == "" {
		return nil, fmt.Errorf("brand_name is required")
	}
	if input.Value < 0 {
		return nil, fmt.Errorf("value must be non-negative")
	}

	d := &domain.Deal{
		ID:          uuid.New().String(),
		UserID:      userID,
		BrandName:   input.BrandName,
		ContactName: input.ContactName,
		Email:       input.Email,
		Value:       input.Value,
		Notes:       input.Notes,
		Stage:       domain.DealLead,
	}

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	d.ID = id
	return d, nil
}

// Update modifies mutable deal fields.
func (s *Service) Update(ctx context.Context, userID, id string, u UpdateFields) error {
	return s.repo.Update(ctx, userID, id, u)
}

// Delete removes a deal.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// Transition moves a deal to the next pipeline stage, enforcing the stage
// graph: lead -> pitched -> negotiating -> won/lost, with lost reachable
// from any open stage.
func (s *Service) Transition(ctx context.Context, userID, id string, next domain.DealStage) (*domain.Deal, error) {
	d, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if d.IsTerminal() {
		return nil, fmt.Errorf("%w: %s", ErrTerminal, d.Stage)
	}
	if !d.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, d.Stage, next)
	}

	if err := s.repo.UpdateStage(ctx, userID, id, next); err != nil {
		return nil, fmt.Errorf("update stage: %w", err)
	}

	logger.Info("deal stage changed", "deal_id", id, "from", string(d.Stage), "to", string(next))
	d.Stage = next
	return d, nil
}

// Summary aggregates the pipeline for the dashboard.
func (s *Service) Summary(ctx context.Context, userID string) (*domain.PipelineSummary, error) {
	return s.repo.Summary(ctx, userID)
}

// CreateInput holds the fields for creating a new deal.
type CreateInput struct {
	BrandName   string `json:"brand_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Value       int64  `json:"value"`
	Notes       string `json:"notes"`
}
