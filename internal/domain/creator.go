package domain

import "time"

// SubscriptionTier enumerates the billing tiers a creator can hold.
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPro     SubscriptionTier = "pro"
	TierStudio  SubscriptionTier = "studio"
)

// Creator is a user profile with the audience numbers the estimation engine
// consumes.
type Creator struct {
	ID                    string           `json:"id" db:"id"`
	UserID                string           `json:"user_id" db:"user_id"`
	DisplayName           string           `json:"display_name" db:"display_name"`
	Email                 string           `json:"email" db:"email"`
	Platform              string           `json:"platform" db:"platform"`
	Niche                 string           `json:"niche" db:"niche"`
	Followers             int64            `json:"followers" db:"followers"`
	EngagementRatePercent float64          `json:"engagement_rate_percent" db:"engagement_rate_percent"`
	RateCardURL           string           `json:"rate_card_url" db:"rate_card_url"`
	MediaKitKey           string           `json:"media_kit_key" db:"media_kit_key"`
	Tier                  SubscriptionTier `json:"tier" db:"tier"`
	CreatedAt             time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at" db:"updated_at"`
}

// RateRecord is a persisted rate estimate, kept so creators can track how
// their sponsorship range moves as their audience grows.
type RateRecord struct {
	ID                    string    `json:"id" db:"id"`
	UserID                string    `json:"user_id" db:"user_id"`
	Platform              string    `json:"platform" db:"platform"`
	Niche                 string    `json:"niche" db:"niche"`
	Followers             int64     `json:"followers" db:"followers"`
	EngagementRatePercent float64   `json:"engagement_rate_percent" db:"engagement_rate_percent"`
	EstimatedMin          int64     `json:"estimated_min" db:"estimated_min"`
	EstimatedMax          int64     `json:"estimated_max" db:"estimated_max"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
}
