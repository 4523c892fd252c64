package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals the requested message does not exist.
var ErrNotFound = errors.New("contact: not found")

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository wires a pgxpool-backed repository implementation.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const contactColumns = `id, name, email, phone, company_name, country, job, job_details, message, created_at`

// Create inserts a new contact message.
func (r *PGRepository) Create(ctx context.Context, params CreateParams, packedMessage string) (Record, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO contact_messages (name, email, phone, company_name, country, job, job_details, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, contactColumns)

	rec, err := scanContact(r.pool.QueryRow(ctx, insertSQL,
		params.Name,
		params.Email,
		nullable(params.Phone),
		nullable(params.CompanyName),
		nullable(params.Country),
		nullable(params.Job),
		nullable(params.JobDetails),
		packedMessage,
	))
	if err != nil {
		return Record{}, fmt.Errorf("contact: insert: %w", err)
	}

	return rec, nil
}

// List returns all messages ordered newest first.
func (r *PGRepository) List(ctx context.Context) ([]Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM contact_messages ORDER BY created_at DESC`, contactColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("contact: list: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("contact: scan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("contact: iterate: %w", err)
	}

	return records, nil
}

// GetByID fetches one message by its primary key.
func (r *PGRepository) GetByID(ctx context.Context, id string) (Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM contact_messages WHERE id = $1`, contactColumns)

	rec, err := scanContact(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("contact: get by id: %w", err)
	}

	return rec, nil
}

// Delete removes a message by id.
func (r *PGRepository) Delete(ctx context.Context, id string) error {
	const deleteSQL = `DELETE FROM contact_messages WHERE id = $1 RETURNING id`

	var deletedID string
	err := r.pool.QueryRow(ctx, deleteSQL, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("contact: delete: %w", err)
	}

	return nil
}

func scanContact(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.Email,
		&rec.Phone,
		&rec.CompanyName,
		&rec.Country,
		&rec.Job,
		&rec.JobDetails,
		&rec.Message,
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
