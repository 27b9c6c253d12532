package calendar

import (
	"context"
	"time"

	"github.com/lumina/creatorhub/internal/domain"
)

// Repository defines the data access contract for calendar posts.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Get returns a single post. Returns ErrNotFound if it doesn't exist or
	// belongs to another user.
	Get(ctx context.Context, userID, id string) (*domain.Post, error)

	// List returns posts in the window, ordered by scheduled_at ASC with
	// unscheduled ideas last.
	List(ctx context.Context, userID string, filter ListFilter) ([]domain.Post, error)

	// Create inserts a new post and returns its ID.
	Create(ctx context.Context, p *domain.Post) (string, error)

	// Update modifies a post. Only non-nil fields are applied.
	Update(ctx context.Context, userID, id string, u UpdateFields) error

	// Delete removes a post.
	Delete(ctx context.Context, userID, id string) error
}

// ListFilter controls the calendar window and status filtering.
type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Status string
	Limit  int
}

// UpdateFields holds the mutable fields for a post update.
// Nil fields are not applied.
type UpdateFields struct {
	Title       *string
	Caption     *string
	ContentType *string
	Status      *domain.PostStatus
	ScheduledAt *time.Time
}

// InspirationSource supplies content ideas for a niche. Implemented by the
// feeds package; kept as an interface so tests can stub it.
type InspirationSource interface {
	FetchForNiche(ctx context.Context, niche string, max int) ([]domain.InspirationItem, error)
}
