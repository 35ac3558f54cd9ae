package certificates

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository defines the interface for certificate data access
type Repository interface {
	Insert(ctx context.Context, cert *Certificate) (int64, error)
	Fetch(ctx context.Context, id int64) (*StoredCertificate, error)
}

// PostgresRepository implements Repository using PostgreSQL
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert writes a certificate row in its own transaction and returns the
// store-assigned identifier. Any failure rolls the transaction back, so a
// failed create leaves no orphan row behind.
func (r *PostgresRepository) Insert(ctx context.Context, cert *Certificate) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO certificates (token, name, training_name, training_duration, training_date, pdf_data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err = tx.QueryRowContext(ctx, query,
		cert.Token, cert.Name, cert.TrainingName,
		cert.TrainingDuration, cert.TrainingDate, cert.PDFData,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert certificate: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit certificate: %w", err)
	}

	return id, nil
}

// Fetch looks up a certificate by identifier, returning the holder name and
// the rendered PDF bytes, or ErrNotFound when no row matches.
func (r *PostgresRepository) Fetch(ctx context.Context, id int64) (*StoredCertificate, error) {
	query := `SELECT name, pdf_data FROM certificates WHERE id = $1`

	var stored StoredCertificate
	err := r.db.QueryRowContext(ctx, query, id).Scan(&stored.Name, &stored.PDFData)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch certificate: %w", err)
	}

	return &stored, nil
}
