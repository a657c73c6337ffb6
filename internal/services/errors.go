package services

import (
	"errors"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
)

var (
	// ErrRestaurantNotFound is returned when a restaurant id has no row
	ErrRestaurantNotFound = errors.New(models.MsgRestaurantNotFound)
	// ErrPizzaNotFound is returned when a pizza id has no row
	ErrPizzaNotFound = errors.New(models.MsgPizzaNotFound)
	// ErrValidation is returned for missing fields or an invalid price
	ErrValidation = errors.New(models.MsgValidationErrors)
)

// StorageError wraps a failure reported by the database while writing
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func newStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
