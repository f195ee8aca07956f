package deepdict

import "errors"

var (
	// ErrLocked is returned when a mutation is attempted on a node whose
	// effective lock state is locked.
	ErrLocked = errors.New("deepdict: dict is locked")

	// ErrKeyNotFound is returned when a lookup misses on an effectively
	// locked node, where no new child may be created, or when an
	// intermediate address segment resolves to a plain value.
	ErrKeyNotFound = errors.New("deepdict: key not found")

	// ErrEmptyPath is returned when a zero-length address is passed to an
	// operation that requires at least one segment.
	ErrEmptyPath = errors.New("deepdict: empty address")

	// ErrInvalidKey is returned when a document key cannot be represented
	// as a dict key during JSON or YAML ingestion.
	ErrInvalidKey = errors.New("deepdict: invalid key")
)
