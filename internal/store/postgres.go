package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrei/vacancy-tracker/internal/listing"
)

// PostgresStore keeps the collection in a vacancies table, keyed by the
// listing's natural key so replace-all saves stay idempotent.
type PostgresStore struct {
	pool *pgxpool.Pool
}

const vacanciesDDL = `
CREATE TABLE IF NOT EXISTS vacancies (
    natural_key  TEXT PRIMARY KEY,
    upstream_id  BIGINT,
    link         TEXT NOT NULL,
    title        TEXT NOT NULL DEFAULT '',
    company      TEXT NOT NULL DEFAULT '',
    city         TEXT NOT NULL DEFAULT '',
    schedule     TEXT NOT NULL DEFAULT '',
    salary       TEXT NOT NULL DEFAULT '',
    snippet      TEXT NOT NULL DEFAULT '',
    published_at TEXT NOT NULL DEFAULT '',
    loaded_at    TEXT NOT NULL DEFAULT '',
    status       TEXT NOT NULL CHECK (status IN ('NEW', 'OLD'))
)`

// OpenPostgres establishes a connection pool and ensures the schema
// exists.
func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, vacanciesDDL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure vacancies table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Load returns every stored listing. Rows with an unknown status are a
// *CorruptError since the table constraint should make them impossible.
func (s *PostgresStore) Load(ctx context.Context) ([]listing.Listing, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT upstream_id, link, title, company, city, schedule, salary,
		        snippet, published_at, loaded_at, status
		 FROM vacancies`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query vacancies: %w", err)
	}
	defer rows.Close()

	var listings []listing.Listing
	for rows.Next() {
		var l listing.Listing
		var upstreamID *int64
		var status string
		if err := rows.Scan(&upstreamID, &l.Link, &l.Title, &l.Company, &l.City,
			&l.Schedule, &l.Salary, &l.Snippet, &l.PublishedAt, &l.LoadedAt, &status); err != nil {
			return nil, fmt.Errorf("failed to scan vacancy: %w", err)
		}
		if upstreamID != nil {
			l.ID = *upstreamID
		}
		l.Status, err = listing.ParseStatus(status)
		if err != nil {
			return nil, &CorruptError{Medium: "postgres", Cause: err}
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Save replaces the stored collection inside one transaction.
func (s *PostgresStore) Save(ctx context.Context, listings []listing.Listing) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM vacancies"); err != nil {
		return fmt.Errorf("failed to clear vacancies: %w", err)
	}

	batch := &pgx.Batch{}
	for _, l := range listings {
		var upstreamID *int64
		if l.ID > 0 {
			id := l.ID
			upstreamID = &id
		}
		batch.Queue(
			`INSERT INTO vacancies (natural_key, upstream_id, link, title, company,
			                        city, schedule, salary, snippet, published_at,
			                        loaded_at, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			l.Key(), upstreamID, l.Link, l.Title, l.Company, l.City,
			l.Schedule, l.Salary, l.Snippet, l.PublishedAt, l.LoadedAt, string(l.Status),
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert vacancies: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
