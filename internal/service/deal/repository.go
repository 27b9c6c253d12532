package deal

import (
	"context"

	"github.com/lumina/creatorhub/internal/domain"
)

// Repository defines the data access contract for deals.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Get returns a single deal. Returns ErrNotFound if it doesn't exist or
	// belongs to another user.
	Get(ctx context.Context, userID, id string) (*domain.Deal, error)

	// List returns deals matching the filter, ordered by created_at DESC.
	List(ctx context.Context, userID string, filter ListFilter) ([]domain.Deal, int, error)

	// Create inserts a new deal and returns its ID.
	Create(ctx context.Context, d *domain.Deal) (string, error)

	// Update modifies a deal. Only non-nil fields in the update are applied.
	Update(ctx context.Context, userID, id string, u UpdateFields) error

	// Delete removes a deal.
	Delete(ctx context.Context, userID, id string) error

	// UpdateStage transitions a deal's pipeline stage.
	UpdateStage(ctx context.Context, userID, id string, stage domain.DealStage) error

	// Summary aggregates pipeline counts and values for a user.
	Summary(ctx context.Context, userID string) (*domain.PipelineSummary, error)
}

// ListFilter controls pagination and filtering for deal lists.
type ListFilter struct {
	Stage  string
	Limit  int
	Offset int
}

// UpdateFields holds the mutable fields for a deal update.
// Nil fields are not applied.
type UpdateFields struct {
	BrandName   *string
	ContactName *string
	Email       *string
	Value       *int64
	Notes       *string
}
