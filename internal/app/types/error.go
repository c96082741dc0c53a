package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequestField = errors.New("invalid request field")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many parallel requests")
)

func NewErrInvalidRequestField(err string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequestField, err)
}

func NewErrNotFound(obj string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, obj)
}
