package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNoRowsAffected is returned by update and delete in strict mode when
	// no record matched.
	ErrNoRowsAffected = errors.New("no rows affected")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
