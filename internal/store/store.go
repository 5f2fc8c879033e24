package store

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MikeSquared-Agency/reflectline/internal/journal"
)

// Backend is a journal store that holds a connection to release on shutdown.
type Backend interface {
	journal.Store
	Close(ctx context.Context) error
}

// Open connects to the document store named by databaseURL. The scheme picks
// the backend: postgres:// or postgresql:// for PostgreSQL, mongodb:// or
// mongodb+srv:// for MongoDB.
func Open(ctx context.Context, databaseURL string) (Backend, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	switch u.Scheme {
	case "postgres", "postgresql":
		return NewPostgres(ctx, databaseURL)
	case "mongodb", "mongodb+srv":
		return NewMongo(ctx, databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}
