package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/webnova/backend/internal/model"
)

// SQLiteContactRepository is the SQLite implementation of ContactRepository.
type SQLiteContactRepository struct {
	db *sql.DB
}

// NewSQLiteContactRepository creates a SQLiteContactRepository on db.
func NewSQLiteContactRepository(db *sql.DB) *SQLiteContactRepository {
	return &SQLiteContactRepository{db: db}
}

var _ ContactRepository = (*SQLiteContactRepository)(nil)

const sqliteContactColumns = `id, name, email, phone, service, message, status, notes, created_at, updated_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteContact(row rowScanner) (*model.Contact, error) {
	var (
		c         model.Contact
		createdAt int64
		updatedAt sql.NullInt64
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Service, &c.Message,
		&c.Status, &c.Notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = time.UnixMilli(createdAt).UTC()
	if updatedAt.Valid {
		t := time.UnixMilli(updatedAt.Int64).UTC()
		c.UpdatedAt = &t
	}
	return &c, nil
}

// Create inserts c. The id is the current millisecond or one past the
// highest stored id, whichever is larger.
func (r *SQLiteContactRepository) Create(ctx context.Context, c *model.Contact) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO contacts (id, name, email, phone, service, message, status, notes, created_at)
		 VALUES (MAX(?, COALESCE((SELECT MAX(id) FROM contacts), 0) + 1), ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		time.Now().UnixMilli(), c.Name, c.Email, c.Phone, c.Service, c.Message,
		c.Status, c.Notes, c.CreatedAt.UnixMilli(),
	).Scan(&c.ID)
}

func (r *SQLiteContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sqliteContactColumns+` FROM contacts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []*model.Contact{}
	for rows.Next() {
		c, err := scanSQLiteContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *SQLiteContactRepository) FindByID(ctx context.Context, id int64) (*model.Contact, error) {
	c, err := scanSQLiteContact(r.db.QueryRowContext(ctx,
		`SELECT `+sqliteContactColumns+` FROM contacts WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

// Update applies patch and returns the stored row, both inside one transaction.
func (r *SQLiteContactRepository) Update(ctx context.Context, id int64, patch model.ContactPatch, at time.Time) (*model.Contact, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE contacts SET
			status = CASE WHEN ? <> '' THEN ? ELSE status END,
			notes = CASE WHEN ? <> '' THEN ? ELSE notes END,
			updated_at = ?
		 WHERE id = ?`,
		patch.Status, patch.Status, patch.Notes, patch.Notes, at.UnixMilli(), id,
	)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	c, err := scanSQLiteContact(tx.QueryRowContext(ctx,
		`SELECT `+sqliteContactColumns+` FROM contacts WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}
	return c, tx.Commit()
}

func (r *SQLiteContactRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
