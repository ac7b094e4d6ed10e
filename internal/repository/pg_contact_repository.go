package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/webnova/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const pgContactColumns = `id, name, email, phone, service, message, status, notes, created_at, updated_at`

func scanPgContact(row pgx.Row) (*model.Contact, error) {
	var c model.Contact
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Service, &c.Message,
		&c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	if c.UpdatedAt != nil {
		t := c.UpdatedAt.UTC()
		c.UpdatedAt = &t
	}
	return &c, nil
}

// Create inserts a new contacts row and populates c.ID from the RETURNING clause.
func (r *PgContactRepository) Create(ctx context.Context, c *model.Contact) error {
	return insertLocked(ctx, r.pool, pgContactsIDLock, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`INSERT INTO contacts (id, name, email, phone, service, message, status, notes, created_at)
			 VALUES (GREATEST($1, COALESCE((SELECT MAX(id) FROM contacts), 0) + 1), $2, $3, $4, $5, $6, $7, $8, $9)
			 RETURNING id`,
			time.Now().UnixMilli(), c.Name, c.Email, c.Phone, c.Service, c.Message, c.Status, c.Notes, c.CreatedAt,
		).Scan(&c.ID)
	})
}

// List returns every contact ordered by id, which is insertion order.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+pgContactColumns+` FROM contacts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []*model.Contact{}
	for rows.Next() {
		c, err := scanPgContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *PgContactRepository) FindByID(ctx context.Context, id int64) (*model.Contact, error) {
	c, err := scanPgContact(r.pool.QueryRow(ctx,
		`SELECT `+pgContactColumns+` FROM contacts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

// Update merges non-empty patch fields and stamps updated_at in one statement.
func (r *PgContactRepository) Update(ctx context.Context, id int64, patch model.ContactPatch, at time.Time) (*model.Contact, error) {
	c, err := scanPgContact(r.pool.QueryRow(ctx,
		`UPDATE contacts SET
			status = COALESCE(NULLIF($1, ''), status),
			notes = COALESCE(NULLIF($2, ''), notes),
			updated_at = $3
		 WHERE id = $4
		 RETURNING `+pgContactColumns,
		patch.Status, patch.Notes, at, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

func (r *PgContactRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
