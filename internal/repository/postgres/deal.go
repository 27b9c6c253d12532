package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/service/deal"
)

// DealRepo implements deal.Repository against PostgreSQL.
type DealRepo struct{ db *sql.DB }

// NewDealRepo creates a Postgres-backed deal repository.
func NewDealRepo(db *sql.DB) *DealRepo { return &DealRepo{db: db} }

func (r *DealRepo) Get(ctx context.Context, userID, id string) (*domain.Deal, error) {
	d := &domain.Deal{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, brand_name, COALESCE(contact_name,''), COALESCE(email,''),
		       stage, value, COALESCE(notes,''), created_at, updated_at
		FROM deals
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&d.ID, &d.UserID, &d.BrandName, &d.ContactName, &d.Email,
		&d.Stage, &d.Value, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, deal.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get deal: %w", err)
	}
	return d, nil
}

func (r *DealRepo) List(ctx context.Context, userID string, f deal.ListFilter) ([]domain.Deal, int, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	countQ := `SELECT COUNT(*) FROM deals WHERE user_id = $1`
	args := []interface{}{userID}
	idx := 2

	if f.Stage != "" {
		countQ += fmt.Sprintf(" AND stage = $%d", idx)
		args = append(args, f.Stage)
		idx++
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count deals: %w", err)
	}

	q := `
		SELECT id, user_id, brand_name, COALESCE(contact_name,''), COALESCE(email,''),
		       stage, value, COALESCE(notes,''), created_at, updated_at
		FROM deals
		WHERE user_id = $1`

	qArgs := []interface{}{userID}
	qIdx := 2
	if f.Stage != "" {
		q += fmt.Sprintf(" AND stage = $%d", qIdx)
		qArgs = append(qArgs, f.Stage)
		qIdx++
	}
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", qIdx, qIdx+1)
	qArgs = append(qArgs, limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, q, qArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()

	var out []domain.Deal
	for rows.Next() {
		var d domain.Deal
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.BrandName, &d.ContactName, &d.Email,
			&d.Stage, &d.Value, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan deal: %w", err)
		}
		out = append(out, d)
	}
	return out, total, rows.Err()
}

func (r *DealRepo) Create(ctx context.Context, d *domain.Deal) (string, error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO deals
			(id, user_id, brand_name, contact_name, email, stage, value, notes,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`, d.ID, d.UserID, d.BrandName, d.ContactName, d.Email, d.Stage, d.Value, d.Notes)
	if err != nil {
		return "", fmt.Errorf("create deal: %w", err)
	}
	return d.ID, nil
}

func (r *DealRepo) Update(ctx context.Context, userID, id string, u deal.UpdateFields) error {
	sets := []string{}
	args := []interface{}{}
	idx := 1
	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}

	if u.BrandName != nil {
		add("brand_name", *u.BrandName)
	}
	if u.ContactName != nil {
		add("contact_name", *u.ContactName)
	}
	if u.Email != nil {
		add("email", *u.Email)
	}
	if u.Value != nil {
		add("value", *u.Value)
	}
	if u.Notes != nil {
		add("notes", *u.Notes)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	q := fmt.Sprintf("UPDATE deals SET %s WHERE id = $%d AND user_id = $%d",
		joinComma(sets), idx, idx+1)
	args = append(args, id, userID)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update deal: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return deal.ErrNotFound
	}
	return nil
}

func (r *DealRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM deals WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return deal.ErrNotFound
	}
	return nil
}

func (r *DealRepo) UpdateStage(ctx context.Context, userID, id string, stage domain.DealStage) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE deals SET stage = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`, stage, id, userID)
	if err != nil {
		return fmt.Errorf("update stage: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return deal.ErrNotFound
	}
	return nil
}

func (r *DealRepo) Summary(ctx context.Context, userID string) (*domain.PipelineSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT stage, COUNT(*), COALESCE(SUM(value), 0)
		FROM deals
		WHERE user_id = $1
		GROUP BY stage
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("summarize deals: %w", err)
	}
	defer rows.Close()

	sum := &domain.PipelineSummary{StageCounts: make(map[string]int)}
	for rows.Next() {
		var stage string
		var count int
		var value int64
		if err := rows.Scan(&stage, &count, &value); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		sum.StageCounts[stage] = count
		sum.TotalDeals += count
		switch domain.DealStage(stage) {
		case domain.DealWon:
			sum.WonDeals += count
			sum.WonValue += value
		case domain.DealLost:
		default:
			sum.OpenDeals += count
			sum.OpenValue += value
		}
	}
	return sum, rows.Err()
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
