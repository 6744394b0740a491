package models

import (
	"errors"
	"fmt"
)

// Error kinds returned by the booking core. Callers match them with errors.Is
// and decide presentation themselves.
var (
	ErrInvalidDateRange  = errors.New("invalid_date_range")
	ErrOccupancyExceeded = errors.New("occupancy_exceeded")
	ErrRoomUnavailable   = errors.New("room_unavailable")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid_transition")
	ErrNotFound          = errors.New("not_found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidInput      = errors.New("invalid_input")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrStorageFailure    = errors.New("storage_failure")
)

// StorageError wraps an infrastructure failure from the backing store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage_failure: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool {
	return target == ErrStorageFailure
}

func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

var errorKinds = []error{
	ErrInvalidDateRange,
	ErrOccupancyExceeded,
	ErrRoomUnavailable,
	ErrForbidden,
	ErrInvalidTransition,
	ErrNotFound,
	ErrConflict,
	ErrInvalidInput,
	ErrUnauthenticated,
	ErrStorageFailure,
}

// Kind names the error kind of err, or "unknown".
func Kind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k) {
			return k.Error()
		}
	}
	return "unknown"
}
