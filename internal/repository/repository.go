package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage drivers accepted by Open.
const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options selects and locates the storage backend.
type Options struct {
	Driver      string
	DataDir     string // json
	SQLitePath  string // sqlite
	DatabaseURL string // postgres
}

// Stores bundles the repositories of one backend.
type Stores struct {
	Driver      string
	Contacts    ContactRepository
	Subscribers SubscriberRepository
	DB          DB
	close       func() error
}

// Close releases the backend's resources.
func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open builds the repositories for opts.Driver.
func Open(ctx context.Context, opts Options) (*Stores, error) {
	switch opts.Driver {
	case DriverJSON, "":
		js, err := OpenJSONStore(opts.DataDir)
		if err != nil {
			return nil, err
		}
		return &Stores{Driver: DriverJSON, Contacts: js.Contacts, Subscribers: js.Subscribers, DB: js}, nil

	case DriverSQLite:
		ss, err := OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Stores{Driver: DriverSQLite, Contacts: ss.Contacts, Subscribers: ss.Subscribers, DB: ss, close: ss.Close}, nil

	case DriverPostgres:
		pool, err := NewPool(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return &Stores{
			Driver:      DriverPostgres,
			Contacts:    NewPgContactRepository(pool),
			Subscribers: NewPgSubscriberRepository(pool),
			DB:          pool,
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
}

// NewPool creates a PostgreSQL connection pool and verifies it with a ping.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
