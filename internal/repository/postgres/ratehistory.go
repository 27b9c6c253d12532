package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lumina/creatorhub/internal/domain"
)

// RateHistoryRepo implements profile.RateHistoryRepository against PostgreSQL.
type RateHistoryRepo struct{ db *sql.DB }

// NewRateHistoryRepo creates a Postgres-backed rate history repository.
func NewRateHistoryRepo(db *sql.DB) *RateHistoryRepo { return &RateHistoryRepo{db: db} }

func (r *RateHistoryRepo) Save(ctx context.Context, rec *domain.RateRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rate_history
			(id, user_id, platform, niche, followers, engagement_rate_percent,
			 estimated_min, estimated_max, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`, rec.ID, rec.UserID, rec.Platform, rec.Niche, rec.Followers,
		rec.EngagementRatePercent, rec.EstimatedMin, rec.EstimatedMax)
	if err != nil {
		return "", fmt.Errorf("save rate record: %w", err)
	}
	return rec.ID, nil
}

func (r *RateHistoryRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.RateRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, platform, niche, followers, engagement_rate_percent,
		       estimated_min, estimated_max, created_at
		FROM rate_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list rate history: %w", err)
	}
	defer rows.Close()

	var out []domain.RateRecord
	for rows.Next() {
		var rec domain.RateRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Platform, &rec.Niche, &rec.Followers,
			&rec.EngagementRatePercent, &rec.EstimatedMin, &rec.EstimatedMax, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rate record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
