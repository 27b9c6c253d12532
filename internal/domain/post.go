package domain

import "time"

// PostStatus enumerates the lifecycle states of a calendar entry.
type PostStatus string

const (
	PostIdea      PostStatus = "idea"
	PostDrafted   PostStatus = "drafted"
	PostScheduled PostStatus = "scheduled"
	PostPublished PostStatus = "published"
)

// Post is one entry on a creator's content calendar.
type Post struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"user_id" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Caption     string     `json:"caption" db:"caption"`
	Platform    string     `json:"platform" db:"platform"`
	ContentType string     `json:"content_type" db:"content_type"`
	Status      PostStatus `json:"status" db:"status"`
	ScheduledAt *time.Time `json:"scheduled_at" db:"scheduled_at"`
	PublishedAt *time.Time `json:"published_at" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// InspirationItem is a content idea pulled from a niche feed.
type InspirationItem struct {
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Source      string     `json:"source"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}
