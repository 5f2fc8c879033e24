package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeSquared-Agency/reflectline/internal/journal"
)

const createReflectionsTable = `
	CREATE TABLE IF NOT EXISTS reflections (
		id          uuid PRIMARY KEY,
		recorded_at timestamptz NOT NULL,
		raw_text    text NOT NULL,
		summary     text NOT NULL,
		energy      text NOT NULL,
		gratitude   text[] NOT NULL DEFAULT '{}'
	)`

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, createReflectionsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create reflections table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}

// Save inserts a reflection.
func (s *PostgresStore) Save(ctx context.Context, r *journal.Reflection) error {
	gratitude := r.Gratitude
	if gratitude == nil {
		gratitude = []string{}
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO reflections (id, recorded_at, raw_text, summary, energy, gratitude)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.Timestamp, r.RawText, r.Summary, string(r.Energy), gratitude,
	)
	if err != nil {
		return fmt.Errorf("insert reflection: %w", err)
	}
	return nil
}

// List returns all reflections, most recent first.
func (s *PostgresStore) List(ctx context.Context) ([]journal.Reflection, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, recorded_at, raw_text, summary, energy, gratitude
		FROM reflections
		ORDER BY recorded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query reflections: %w", err)
	}
	defer rows.Close()

	out := []journal.Reflection{}
	for rows.Next() {
		var (
			r      journal.Reflection
			energy string
		)
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.RawText, &r.Summary, &energy, &r.Gratitude); err != nil {
			return nil, fmt.Errorf("scan reflection: %w", err)
		}
		r.Energy = journal.Energy(energy)
		r.Timestamp = r.Timestamp.UTC()
		if r.Gratitude == nil {
			r.Gratitude = []string{}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reflections: %w", err)
	}
	return out, nil
}
