package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/webnova/backend/internal/model"
)

// SQLiteSubscriberRepository is the SQLite implementation of SubscriberRepository.
type SQLiteSubscriberRepository struct {
	db *sql.DB
}

// NewSQLiteSubscriberRepository creates a SQLiteSubscriberRepository on db.
func NewSQLiteSubscriberRepository(db *sql.DB) *SQLiteSubscriberRepository {
	return &SQLiteSubscriberRepository{db: db}
}

var _ SubscriberRepository = (*SQLiteSubscriberRepository)(nil)

// Create inserts s. The NOCASE unique index on email rejects duplicates.
func (r *SQLiteSubscriberRepository) Create(ctx context.Context, s *model.Subscriber) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO newsletter_subscribers (id, email, subscribed_at)
		 VALUES (MAX(?, COALESCE((SELECT MAX(id) FROM newsletter_subscribers), 0) + 1), ?, ?)
		 RETURNING id`,
		time.Now().UnixMilli(), s.Email, s.SubscribedAt.UnixMilli(),
	).Scan(&s.ID)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *SQLiteSubscriberRepository) List(ctx context.Context) ([]*model.Subscriber, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, subscribed_at FROM newsletter_subscribers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []*model.Subscriber{}
	for rows.Next() {
		var (
			s  model.Subscriber
			at int64
		)
		if err := rows.Scan(&s.ID, &s.Email, &at); err != nil {
			return nil, err
		}
		s.SubscribedAt = time.UnixMilli(at).UTC()
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
