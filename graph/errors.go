package graph

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrPageRequired    = errors.New("graph: page record is required")
	ErrSectionRequired = errors.New("graph: section record is required")
	ErrKeyNotFound     = errors.New("graph: entity key not found")
	ErrDuplicateKey    = errors.New("graph: entity key already registered")
)

// KeyNotFoundError reports a dereference of a key the Library does not hold.
// The upstream content pipeline guarantees referential integrity, so hitting
// this error means the graph was assembled incorrectly; callers abort the
// projection rather than recover.
type KeyNotFoundError struct {
	Resource string
	Key      uuid.UUID
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("graph: %s %s not found", e.Resource, e.Key)
}

func (e *KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}

// DuplicateKeyError reports an insert with a key the Library already holds.
type DuplicateKeyError struct {
	Resource string
	Key      uuid.UUID
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("graph: %s %s already registered", e.Resource, e.Key)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}
