package progress

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageUnavailable wraps any failure reaching the key/value store.
	ErrStorageUnavailable = errors.New("progress storage unavailable")
	// ErrDeserialization is reported when a stored snapshot cannot be decoded.
	ErrDeserialization = errors.New("progress snapshot decode failed")
	// ErrSerialization is reported when the in-memory snapshot cannot be encoded.
	ErrSerialization = errors.New("progress snapshot encode failed")
	// ErrInvalidPoints is the only error returned to callers: point awards must be positive.
	ErrInvalidPoints = errors.New("points must be greater than zero")
)

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}

// PointsError describes a rejected point award.
type PointsError struct {
	Points int
}

func (e PointsError) Error() string {
	return fmt.Sprintf("invalid point award %d: %s", e.Points, ErrInvalidPoints)
}

func (e PointsError) Unwrap() error { return ErrInvalidPoints }
