package profile

import (
	"context"

	"github.com/lumina/creatorhub/internal/domain"
)

// Repository defines the data access contract for creator profiles.
// Implementations must be safe for concurrent use.
type Repository interface {
	// GetByUser returns the profile for a user. Returns ErrNotFound if none
	// exists yet.
	GetByUser(ctx context.Context, userID string) (*domain.Creator, error)

	// Upsert creates or replaces the profile for c.UserID and returns its ID.
	Upsert(ctx context.Context, c *domain.Creator) (string, error)

	// UpdateTier changes the subscription tier for a user.
	UpdateTier(ctx context.Context, userID string, tier domain.SubscriptionTier) error

	// UpdateMediaKit sets the stored media-kit object key for a user.
	UpdateMediaKit(ctx context.Context, userID, key string) error
}

// RateHistoryRepository stores saved rate estimates.
type RateHistoryRepository interface {
	// Save appends a rate record and returns its ID.
	Save(ctx context.Context, r *domain.RateRecord) (string, error)

	// ListByUser returns a user's records, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.RateRecord, error)
}
