// Package store is the persistence boundary: validated records go in, an opaque id comes out.
package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned for every write when no database is configured.
	ErrNotInitialized = errors.New("database not initialized")
)

// Store accepts validated records for a named collection.
type Store interface {
	CreateDocument(ctx context.Context, collection string, record any) (string, error)
}

// Handle exposes the database identity and layout for diagnostics.
type Handle interface {
	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// PersistenceError wraps a failed write with the collection it targeted.
type PersistenceError struct {
	Collection string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("insert into %s: %v", e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Unavailable is the Store used when no database could be reached and the
// in-memory fallback is disabled. It has no Handle.
type Unavailable struct{}

func (Unavailable) CreateDocument(_ context.Context, collection string, _ any) (string, error) {
	return "", &PersistenceError{Collection: collection, Err: ErrNotInitialized}
}
