package solution

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals the requested solution does not exist.
var ErrNotFound = errors.New("solution: not found")

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository wires a pgxpool-backed repository implementation.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const solutionColumns = `id, name, summary, project_story, icon_url, image_url, type, category, features, created_at, updated_at`

// Create inserts a new solution and returns the stored record.
func (r *PGRepository) Create(ctx context.Context, params CreateParams) (Record, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO solutions (name, summary, project_story, icon_url, image_url, type, category, features)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, solutionColumns)

	features := params.Features
	if features == nil {
		features = []string{}
	}

	rec, err := scanSolution(r.pool.QueryRow(ctx, insertSQL,
		params.Name,
		nullable(params.Summary),
		nullable(params.ProjectStory),
		nullable(params.IconURL),
		nullable(params.ImageURL),
		string(params.Type),
		nullable(params.Category),
		features,
	))
	if err != nil {
		return Record{}, fmt.Errorf("solution: insert: %w", err)
	}

	return rec, nil
}

// ListByType returns one catalog section ordered newest first.
func (r *PGRepository) ListByType(ctx context.Context, t Type) ([]Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM solutions WHERE type = $1 ORDER BY created_at DESC`, solutionColumns)

	rows, err := r.pool.Query(ctx, query, string(t))
	if err != nil {
		return nil, fmt.Errorf("solution: list: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanSolution(rows)
		if err != nil {
			return nil, fmt.Errorf("solution: scan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("solution: iterate: %w", err)
	}

	return records, nil
}

// GetByID fetches one solution by its primary key.
func (r *PGRepository) GetByID(ctx context.Context, id string) (Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM solutions WHERE id = $1`, solutionColumns)

	rec, err := scanSolution(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("solution: get by id: %w", err)
	}

	return rec, nil
}

// Update writes set fields and keeps the rest via COALESCE.
func (r *PGRepository) Update(ctx context.Context, id string, params UpdateParams) error {
	const updateSQL = `
		UPDATE solutions
		SET
			name = COALESCE($1, name),
			summary = COALESCE($2, summary),
			project_story = COALESCE($3, project_story),
			icon_url = COALESCE($4, icon_url),
			image_url = COALESCE($5, image_url),
			category = COALESCE($6, category),
			features = COALESCE($7, features),
			updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := r.pool.QueryRow(ctx, updateSQL,
		trimmed(params.Name),
		trimmed(params.Summary),
		params.ProjectStory,
		trimmed(params.IconURL),
		trimmed(params.ImageURL),
		trimmed(params.Category),
		params.Features,
		id,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("solution: update: %w", err)
	}

	return nil
}

// Delete removes a solution by id.
func (r *PGRepository) Delete(ctx context.Context, id string) error {
	const deleteSQL = `DELETE FROM solutions WHERE id = $1 RETURNING id`

	var deletedID string
	err := r.pool.QueryRow(ctx, deleteSQL, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("solution: delete: %w", err)
	}

	return nil
}

func scanSolution(row pgx.Row) (Record, error) {
	var (
		rec      Record
		recType  string
		features []string
	)
	err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.Summary,
		&rec.ProjectStory,
		&rec.IconURL,
		&rec.ImageURL,
		&recType,
		&rec.Category,
		&features,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return Record{}, err
	}

	rec.Type = Type(recType)
	rec.Features = features
	return rec, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	return nullable(strings.TrimSpace(*s))
}
