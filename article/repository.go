package article

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals the requested article does not exist.
var ErrNotFound = errors.New("article: not found")

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository wires a pgxpool-backed repository implementation.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const articleColumns = `id, title, excerpt, content, image_url, category, author, read_time, created_at, updated_at`

// Create inserts a new article and returns the stored record.
func (r *PGRepository) Create(ctx context.Context, params CreateParams) (Record, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO articles (title, excerpt, content, image_url, category, author, read_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, articleColumns)

	rec, err := scanArticle(r.pool.QueryRow(ctx, insertSQL,
		params.Title,
		nullable(params.Excerpt),
		params.Content,
		nullable(params.ImageURL),
		nullable(params.Category),
		nullable(params.Author),
		nullable(params.ReadTime),
	))
	if err != nil {
		return Record{}, fmt.Errorf("article: insert: %w", err)
	}

	return rec, nil
}

// List returns all articles ordered newest first.
func (r *PGRepository) List(ctx context.Context) ([]Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM articles ORDER BY created_at DESC`, articleColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("article: list: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("article: scan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("article: iterate: %w", err)
	}

	return records, nil
}

// GetByID fetches one article by its primary key.
func (r *PGRepository) GetByID(ctx context.Context, id string) (Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE id = $1`, articleColumns)

	rec, err := scanArticle(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("article: get by id: %w", err)
	}

	return rec, nil
}

// Update writes set fields and keeps the rest via COALESCE.
func (r *PGRepository) Update(ctx context.Context, id string, params UpdateParams) error {
	const updateSQL = `
		UPDATE articles
		SET
			title = COALESCE($1, title),
			excerpt = COALESCE($2, excerpt),
			content = COALESCE($3, content),
			image_url = COALESCE($4, image_url),
			category = COALESCE($5, category),
			author = COALESCE($6, author),
			read_time = COALESCE($7, read_time),
			updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := r.pool.QueryRow(ctx, updateSQL,
		trimmed(params.Title),
		trimmed(params.Excerpt),
		params.Content,
		trimmed(params.ImageURL),
		trimmed(params.Category),
		trimmed(params.Author),
		trimmed(params.ReadTime),
		id,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("article: update: %w", err)
	}

	return nil
}

// Delete removes an article by id.
func (r *PGRepository) Delete(ctx context.Context, id string) error {
	const deleteSQL = `DELETE FROM articles WHERE id = $1 RETURNING id`

	var deletedID string
	err := r.pool.QueryRow(ctx, deleteSQL, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("article: delete: %w", err)
	}

	return nil
}

func scanArticle(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID,
		&rec.Title,
		&rec.Excerpt,
		&rec.Content,
		&rec.ImageURL,
		&rec.Category,
		&rec.Author,
		&rec.ReadTime,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// nullable maps empty optional strings to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// trimmed trims a set patch field, mapping blank values to NULL so
// COALESCE keeps the stored value.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	return nullable(strings.TrimSpace(*s))
}
