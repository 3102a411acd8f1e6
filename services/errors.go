package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Failure taxonomy surfaced to the HTTP layer. Controllers match with
// errors.Is and translate to the corresponding status code.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

func badRequestf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrBadRequest)
}

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// notFoundOr maps gorm's record-not-found onto the taxonomy; any other
// database error passes through untouched.
func notFoundOr(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf(format, args...)
	}
	return err
}
