package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals the requested feedback does not exist.
var ErrNotFound = errors.New("feedback: not found")

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository wires a pgxpool-backed repository implementation.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const feedbackColumns = `id, name, occupation, email, rating, message, approved, created_at`

// Create inserts a new unapproved submission.
func (r *PGRepository) Create(ctx context.Context, params CreateParams) (Record, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO feedbacks (name, occupation, email, rating, message, approved)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING %s
	`, feedbackColumns)

	rec, err := scanFeedback(r.pool.QueryRow(ctx, insertSQL,
		params.Name,
		nullable(params.Occupation),
		nullable(params.Email),
		params.Rating,
		params.Message,
	))
	if err != nil {
		return Record{}, fmt.Errorf("feedback: insert: %w", err)
	}

	return rec, nil
}

// ListApproved returns approved submissions ordered newest first.
func (r *PGRepository) ListApproved(ctx context.Context) ([]Record, error) {
	return r.listByApproved(ctx, true)
}

// ListPending returns unapproved submissions ordered newest first.
func (r *PGRepository) ListPending(ctx context.Context) ([]Record, error) {
	return r.listByApproved(ctx, false)
}

func (r *PGRepository) listByApproved(ctx context.Context, approved bool) ([]Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM feedbacks WHERE approved = $1 ORDER BY created_at DESC`, feedbackColumns)

	rows, err := r.pool.Query(ctx, query, approved)
	if err != nil {
		return nil, fmt.Errorf("feedback: list: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("feedback: scan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("feedback: iterate: %w", err)
	}

	return records, nil
}

// Approve sets the approved flag. The UPDATE matches approved rows too,
// which makes a second approval a no-op success rather than an error.
func (r *PGRepository) Approve(ctx context.Context, id string) error {
	const updateSQL = `UPDATE feedbacks SET approved = TRUE WHERE id = $1 RETURNING id`

	var approvedID string
	err := r.pool.QueryRow(ctx, updateSQL, id).Scan(&approvedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("feedback: approve: %w", err)
	}

	return nil
}

// Delete removes a submission by id.
func (r *PGRepository) Delete(ctx context.Context, id string) error {
	const deleteSQL = `DELETE FROM feedbacks WHERE id = $1 RETURNING id`

	var deletedID string
	err := r.pool.QueryRow(ctx, deleteSQL, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("feedback: delete: %w", err)
	}

	return nil
}

func scanFeedback(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.Occupation,
		&rec.Email,
		&rec.Rating,
		&rec.Message,
		&rec.Approved,
		&rec.CreatedAt,
	)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
