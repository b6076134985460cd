// Package store provides access to the glossary key-value store.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a term has no entry in the store.
// It is an expected outcome, distinct from connectivity or data faults.
var ErrNotFound = errors.New("term not found")

// Store is the single operation the handler needs from the glossary
// persistence layer. Implementations must return ErrNotFound (possibly
// wrapped) when the term has no entry, and any other error for faults.
type Store interface {
	GetDefinition(ctx context.Context, term string) (string, error)
}
