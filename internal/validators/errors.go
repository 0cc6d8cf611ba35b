package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName     = errors.New("name is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyTitle    = errors.New("title required")
	ErrInvalidUserID = errors.New("invalid user ID")
	ErrValueTooLong  = errors.New("value is too long")
)
