package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/service/calendar"
)

// PostRepo implements calendar.Repository against PostgreSQL.
type PostRepo struct{ db *sql.DB }

// NewPostRepo creates a Postgres-backed calendar repository.
func NewPostRepo(db *sql.DB) *PostRepo { return &PostRepo{db: db} }

func (r *PostRepo) Get(ctx context.Context, userID, id string) (*domain.Post, error) {
	p := &domain.Post{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, COALESCE(caption,''), COALESCE(platform,''),
		       COALESCE(content_type,''), status, scheduled_at, published_at,
		       created_at, updated_at
		FROM posts
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&p.ID, &p.UserID, &p.Title, &p.Caption, &p.Platform,
		&p.ContentType, &p.Status, &p.ScheduledAt, &p.PublishedAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, calendar.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

func (r *PostRepo) List(ctx context.Context, userID string, f calendar.ListFilter) ([]domain.Post, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}

	q := `
		SELECT id, user_id, title, COALESCE(caption,''), COALESCE(platform,''),
		       COALESCE(content_type,''), status, scheduled_at, published_at,
		       created_at, updated_at
		FROM posts
		WHERE user_id = $1`

	args := []interface{}{userID}
	idx := 2
	if f.From != nil {
		q += fmt.Sprintf(" AND scheduled_at >= $%d", idx)
		args = append(args, *f.From)
		idx++
	}
	if f.To != nil {
		q += fmt.Sprintf(" AND scheduled_at < $%d", idx)
		args = append(args, *f.To)
		idx++
	}
	if f.Status != "" {
		q += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, f.Status)
		idx++
	}
	q += fmt.Sprintf(" ORDER BY scheduled_at ASC NULLS LAST, created_at DESC LIMIT $%d", idx)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Title, &p.Caption, &p.Platform,
			&p.ContentType, &p.Status, &p.ScheduledAt, &p.PublishedAt,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostRepo) Create(ctx context.Context, p *domain.Post) (string, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO posts
			(id, user_id, title, caption, platform, content_type, status,
			 scheduled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`, p.ID, p.UserID, p.Title, p.Caption, p.Platform, p.ContentType,
		p.Status, p.ScheduledAt)
	if err != nil {
		return "", fmt.Errorf("create post: %w", err)
	}
	return p.ID, nil
}

func (r *PostRepo) Update(ctx context.Context, userID, id string, u calendar.UpdateFields) error {
	sets := []string{}
	args := []interface{}{}
	idx := 1
	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}

	if u.Title != nil {
		add("title", *u.Title)
	}
	if u.Caption != nil {
		add("caption", *u.Caption)
	}
	if u.ContentType != nil {
		add("content_type", *u.ContentType)
	}
	if u.Status != nil {
		add("status", *u.Status)
		if *u.Status == domain.PostPublished {
			sets = append(sets, "published_at = NOW()")
		}
	}
	if u.ScheduledAt != nil {
		add("scheduled_at", *u.ScheduledAt)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	q := fmt.Sprintf("UPDATE posts SET %s WHERE id = $%d AND user_id = $%d",
		joinComma(sets), idx, idx+1)
	args = append(args, id, userID)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return calendar.ErrNotFound
	}
	return nil
}

func (r *PostRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM posts WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return calendar.ErrNotFound
	}
	return nil
}
