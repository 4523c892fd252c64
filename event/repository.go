package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals the requested registration does not exist.
var ErrNotFound = errors.New("event: registration not found")

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository wires a pgxpool-backed repository implementation.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const registrationColumns = `id, event_title, event_date, full_name, email, phone, created_at`

// Create inserts a new registration.
func (r *PGRepository) Create(ctx context.Context, params CreateParams) (Registration, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO event_registrations (event_title, event_date, full_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, registrationColumns)

	reg, err := scanRegistration(r.pool.QueryRow(ctx, insertSQL,
		params.EventTitle,
		nullable(params.EventDate),
		params.FullName,
		params.Email,
		nullable(params.Phone),
	))
	if err != nil {
		return Registration{}, fmt.Errorf("event: insert: %w", err)
	}

	return reg, nil
}

// List returns all registrations ordered newest first.
func (r *PGRepository) List(ctx context.Context) ([]Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM event_registrations ORDER BY created_at DESC`, registrationColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("event: list: %w", err)
	}
	defer rows.Close()

	regs := []Registration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("event: scan: %w", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("event: iterate: %w", err)
	}

	return regs, nil
}

// GetByID fetches one registration by its primary key.
func (r *PGRepository) GetByID(ctx context.Context, id string) (Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM event_registrations WHERE id = $1`, registrationColumns)

	reg, err := scanRegistration(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Registration{}, ErrNotFound
		}
		return Registration{}, fmt.Errorf("event: get by id: %w", err)
	}

	return reg, nil
}

// Delete removes a registration by id.
func (r *PGRepository) Delete(ctx context.Context, id string) error {
	const deleteSQL = `DELETE FROM event_registrations WHERE id = $1 RETURNING id`

	var deletedID string
	err := r.pool.QueryRow(ctx, deleteSQL, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("event: delete: %w", err)
	}

	return nil
}

func scanRegistration(row pgx.Row) (Registration, error) {
	var reg Registration
	err := row.Scan(
		&reg.ID,
		&reg.EventTitle,
		&reg.EventDate,
		&reg.FullName,
		&reg.Email,
		&reg.Phone,
		&reg.CreatedAt,
	)
	if err != nil {
		return Registration{}, err
	}
	return reg, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
