package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/service/profile"
)

// CreatorRepo implements profile.Repository against PostgreSQL.
type CreatorRepo struct{ db *sql.DB }

// NewCreatorRepo creates a Postgres-backed creator repository.
func NewCreatorRepo(db *sql.DB) *CreatorRepo { return &CreatorRepo{db: db} }

func (r *CreatorRepo) GetByUser(ctx context.Context, userID string) (*domain.Creator, error) {
	c := &domain.Creator{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, display_name, COALESCE(email,''), platform, niche,
		       followers, engagement_rate_percent, COALESCE(rate_card_url,''),
		       COALESCE(media_kit_key,''), tier, created_at, updated_at
		FROM creators
		WHERE user_id = $1
	`, userID).Scan(
		&c.ID, &c.UserID, &c.DisplayName, &c.Email, &c.Platform, &c.Niche,
		&c.Followers, &c.EngagementRatePercent, &c.RateCardURL,
		&c.MediaKitKey, &c.Tier, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, profile.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get creator: %w", err)
	}
	return c, nil
}

func (r *CreatorRepo) Upsert(ctx context.Context, c *domain.Creator) (string, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO creators
			(id, user_id, display_name, email, platform, niche, followers,
			 engagement_rate_percent, rate_card_url, tier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			email = EXCLUDED.email,
			platform = EXCLUDED.platform,
			niche = EXCLUDED.niche,
			followers = EXCLUDED.followers,
			engagement_rate_percent = EXCLUDED.engagement_rate_percent,
			rate_card_url = EXCLUDED.rate_card_url,
			updated_at = NOW()
	`, c.ID, c.UserID, c.DisplayName, c.Email, c.Platform, c.Niche,
		c.Followers, c.EngagementRatePercent, c.RateCardURL, c.Tier)
	if err != nil {
		return "", fmt.Errorf("upsert creator: %w", err)
	}
	return c.ID, nil
}

func (r *CreatorRepo) UpdateTier(ctx context.Context, userID string, tier domain.SubscriptionTier) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE creators SET tier = $1, updated_at = NOW() WHERE user_id = $2
	`, tier, userID)
	if err != nil {
		return fmt.Errorf("update tier: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func (r *CreatorRepo) UpdateMediaKit(ctx context.Context, userID, key string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE creators SET media_kit_key = $1, updated_at = NOW() WHERE user_id = $2
	`, key, userID)
	if err != nil {
		return fmt.Errorf("update media kit: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return profile.ErrNotFound
	}
	return nil
}
