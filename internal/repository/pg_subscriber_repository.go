package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/webnova/backend/internal/model"
)

const (
	// pgUniqueViolation is the SQLSTATE for unique_violation.
	pgUniqueViolation = "23505"
	// pgSubscriberEmailIndex enforces one subscription per address.
	pgSubscriberEmailIndex = "idx_newsletter_subscribers_email"
)

// PgSubscriberRepository is the PostgreSQL implementation of SubscriberRepository.
type PgSubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubscriberRepository creates a PgSubscriberRepository backed by the given pool.
func NewPgSubscriberRepository(pool *pgxpool.Pool) *PgSubscriberRepository {
	return &PgSubscriberRepository{pool: pool}
}

var _ SubscriberRepository = (*PgSubscriberRepository)(nil)

// Create inserts s. Only a clash on the email index is ErrDuplicate; any
// other constraint failure is returned as is.
func (r *PgSubscriberRepository) Create(ctx context.Context, s *model.Subscriber) error {
	err := insertLocked(ctx, r.pool, pgSubscribersIDLock, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`INSERT INTO newsletter_subscribers (id, email, subscribed_at)
			 VALUES (GREATEST($1, COALESCE((SELECT MAX(id) FROM newsletter_subscribers), 0) + 1), $2, $3)
			 RETURNING id`,
			time.Now().UnixMilli(), s.Email, s.SubscribedAt,
		).Scan(&s.ID)
	})
	if isEmailConflict(err) {
		return ErrDuplicate
	}
	return err
}

func isEmailConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgUniqueViolation &&
		pgErr.ConstraintName == pgSubscriberEmailIndex
}

func (r *PgSubscriberRepository) List(ctx context.Context) ([]*model.Subscriber, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, subscribed_at FROM newsletter_subscribers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []*model.Subscriber{}
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.SubscribedAt); err != nil {
			return nil, err
		}
		s.SubscribedAt = s.SubscribedAt.UTC()
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
