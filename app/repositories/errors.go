// Package repositories persists the domain models through gorm. Every
// method takes the request context and reports one of three outcomes:
// success, ErrNotFound, or a *StoreError for any storage fault.
package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the store answered and the row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable matches every *StoreError through errors.Is.
	ErrUnavailable = errors.New("storage unavailable")
)

// StoreError is a storage fault raised while running Op.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrUnavailable }

func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return &StoreError{Op: op, Err: err}
	}
}
