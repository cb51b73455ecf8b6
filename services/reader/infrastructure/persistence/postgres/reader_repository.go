package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/lendhub/pkg/database"
	readerdomain "github.com/ghuser/lendhub/services/reader/domain"
	"github.com/ghuser/lendhub/services/reader/domain/models"
)

// ReaderRepository implements repositories.ReaderRepository against PostgreSQL.
type ReaderRepository struct {
	db *database.Database
}

// NewReaderRepository returns a ReaderRepository backed by the given connection pool.
func NewReaderRepository(db *database.Database) *ReaderRepository {
	return &ReaderRepository{db: db}
}

// Save inserts a new Reader and fills in the generated identifier.
func (r *ReaderRepository) Save(ctx context.Context, reader *models.Reader) error {
	const query = `INSERT INTO readers (first_name, last_name) VALUES ($1, $2) RETURNING id`
	if err := r.db.DB().QueryRowContext(ctx, query, reader.Name.First, reader.Name.Last).Scan(&reader.ID); err != nil {
		return fmt.Errorf("insert reader: %w", err)
	}
	return nil
}

// GetByID retrieves a Reader by ID. Returns ErrReaderNotFound if not found.
func (r *ReaderRepository) GetByID(ctx context.Context, id int64) (*models.Reader, error) {
	const query = `SELECT id, first_name, last_name FROM readers WHERE id = $1`

	var reader models.Reader
	if err := r.db.DB().QueryRowContext(ctx, query, id).
		Scan(&reader.ID, &reader.Name.First, &reader.Name.Last); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, readerdomain.ErrReaderNotFound
		}
		return nil, fmt.Errorf("query reader: %w", err)
	}
	return &reader, nil
}

// ListAll retrieves every reader ordered by ascending identifier.
func (r *ReaderRepository) ListAll(ctx context.Context) ([]*models.Reader, error) {
	const query = `SELECT id, first_name, last_name FROM readers ORDER BY id`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query readers: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var readers []*models.Reader
	for rows.Next() {
		var reader models.Reader
		if err := rows.Scan(&reader.ID, &reader.Name.First, &reader.Name.Last); err != nil {
			return nil, fmt.Errorf("scan reader: %w", err)
		}
		readers = append(readers, &reader)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate readers: %w", err)
	}
	return readers, nil
}

// Delete removes a reader by ID. Returns ErrReaderNotFound if no row was removed.
func (r *ReaderRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM readers WHERE id = $1`

	res, err := r.db.DB().ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete reader: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete reader rows affected: %w", err)
	}
	if affected == 0 {
		return readerdomain.ErrReaderNotFound
	}
	return nil
}
