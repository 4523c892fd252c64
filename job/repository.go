package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals the requested submission does not exist.
var ErrNotFound = errors.New("job: requirement not found")

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository wires a pgxpool-backed repository implementation.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const requirementColumns = `id, name, email, phone, country, job_title, file_url, created_at`

// Create inserts a new requirement with its already-uploaded file URL
// (or NULL when no file was attached).
func (r *PGRepository) Create(ctx context.Context, params CreateParams, fileURL *string) (Requirement, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO job_requirements (name, email, phone, country, job_title, file_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, requirementColumns)

	req, err := scanRequirement(r.pool.QueryRow(ctx, insertSQL,
		params.Name,
		params.Email,
		nullable(params.Phone),
		nullable(params.Country),
		nullable(params.JobTitle),
		fileURL,
	))
	if err != nil {
		return Requirement{}, fmt.Errorf("job: insert: %w", err)
	}

	return req, nil
}

// List returns all submissions ordered newest first.
func (r *PGRepository) List(ctx context.Context) ([]Requirement, error) {
	query := fmt.Sprintf(`SELECT %s FROM job_requirements ORDER BY created_at DESC`, requirementColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("job: list: %w", err)
	}
	defer rows.Close()

	reqs := []Requirement{}
	for rows.Next() {
		req, err := scanRequirement(rows)
		if err != nil {
			return nil, fmt.Errorf("job: scan: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("job: iterate: %w", err)
	}

	return reqs, nil
}

// GetByID fetches one submission by its primary key.
func (r *PGRepository) GetByID(ctx context.Context, id string) (Requirement, error) {
	query := fmt.Sprintf(`SELECT %s FROM job_requirements WHERE id = $1`, requirementColumns)

	req, err := scanRequirement(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Requirement{}, ErrNotFound
		}
		return Requirement{}, fmt.Errorf("job: get by id: %w", err)
	}

	return req, nil
}

func scanRequirement(row pgx.Row) (Requirement, error) {
	var req Requirement
	err := row.Scan(
		&req.ID,
		&req.Name,
		&req.Email,
		&req.Phone,
		&req.Country,
		&req.JobTitle,
		&req.FileURL,
		&req.CreatedAt,
	)
	if err != nil {
		return Requirement{}, err
	}
	return req, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
