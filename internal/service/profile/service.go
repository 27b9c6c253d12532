package profile

import (
	"context"
	"fmt"

	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/engine"
	"github.com/lumina/creatorhub/internal/pkg/logger"
)

// Service implements profile business logic.
type Service struct {
	repo  Repository
	rates RateHistoryRepository
}

// NewService creates a profile service.
func NewService(repo Repository, rates RateHistoryRepository) *Service {
	return &Service{repo: repo, rates: rates}
}

// Get returns the profile for a user.
func (s *Service) Get(ctx context.Context, userID string) (*domain.Creator, error) {
	return s.repo.GetByUser(ctx, userID)
}

// UpsertInput holds the editable profile fields.
type UpsertInput struct {
	DisplayName           string  `json:"display_name"`
	Email                 string  `json:"email"`
	Platform              string  `json:"platform"`
	Niche                 string  `json:"niche"`
	Followers             int64   `json:"followers"`
	EngagementRatePercent float64 `json:"engagement_rate_percent"`
	RateCardURL           string  `json:"rate_card_url"`
}

// Upsert creates or replaces a user's profile.
func (s *Service) Upsert(ctx context.Context, userID string, input UpsertInput) (*domain.Creator, error) {
	if input.DisplayName == "" {
		return nil, fmt.Errorf("display_name is required")
	}
	if input.Followers < 0 {
		return nil, engine.ErrInvalidFollowerCount
	}

	c := &domain.Creator{
		UserID:                userID,
		DisplayName:           input.DisplayName,
		Email:                 input.Email,
		Platform:              input.Platform,
		Niche:                 input.Niche,
		Followers:             input.Followers,
		EngagementRatePercent: input.EngagementRatePercent,
		RateCardURL:           input.RateCardURL,
		Tier:                  domain.TierFree,
	}
	if existing, err := s.repo.GetByUser(ctx, userID); err == nil {
		c.ID = existing.ID
		c.Tier = existing.Tier
		c.MediaKitKey = existing.MediaKitKey
	}

	id, err := s.repo.Upsert(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	c.ID = id
	return c, nil
}

// SetTier applies a subscription tier change, typically from a billing event.
func (s *Service) SetTier(ctx context.Context, userID string, tier domain.SubscriptionTier) error {
	if err := s.repo.UpdateTier(ctx, userID, tier); err != nil {
		return err
	}
	logger.Info("subscription tier updated", "user_id", userID, "tier", string(tier))
	return nil
}

// SetMediaKit records the stored media-kit object key for a user.
func (s *Service) SetMediaKit(ctx context.Context, userID, key string) error {
	return s.repo.UpdateMediaKit(ctx, userID, key)
}

// SaveEstimate computes a rate estimate for the given inputs and appends it
// to the user's history.
func (s *Service) SaveEstimate(ctx context.Context, userID, platform, niche string, followers int64, engagementRatePercent float64) (*domain.RateRecord, error) {
	est, err := engine.EstimateRate(platform, followers, niche, engagementRatePercent)
	if err != nil {
		return nil, err
	}

	rec := &domain.RateRecord{
		UserID:                userID,
		Platform:              platform,
		Niche:                 niche,
		Followers:             followers,
		EngagementRatePercent: engagementRatePercent,
		EstimatedMin:          est.MinRate,
		EstimatedMax:          est.MaxRate,
	}
	id, err := s.rates.Save(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("save rate record: %w", err)
	}
	rec.ID = id
	return rec, nil
}

// History returns a user's saved estimates, newest first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]domain.RateRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.rates.ListByUser(ctx, userID, limit)
}
