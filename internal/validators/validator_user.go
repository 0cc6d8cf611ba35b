package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Infogain-GenAI/sample-app1/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
	FieldTitle = "title"
)

// MaxFieldLength bounds every text field accepted from clients.
const MaxFieldLength = 255

// UserValidator implements [Validator] for models.User,
// models.UserEmailUpdate and models.Todo.
//
// Only presence and length are checked. Names and emails are stored as
// given, so no trimming or format rule is applied beyond rejecting blank
// values.
type UserValidator struct{}

// NewUserValidator constructs a [UserValidator].
func NewUserValidator() *UserValidator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.UserEmailUpdate:
		return v.validateText(FieldEmail, value.Email)
	case *models.UserEmailUpdate:
		return v.validateText(FieldEmail, value.Email)

	case models.Todo:
		return v.validateText(FieldTitle, value.Title)
	case *models.Todo:
		return v.validateText(FieldTitle, value.Title)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if user.ID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if err := v.validateText(FieldName, user.Name); err != nil {
				return err
			}
		case FieldEmail:
			if err := v.validateText(FieldEmail, user.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		switch field {
		case FieldName:
			return ErrEmptyName
		case FieldEmail:
			return ErrEmptyEmail
		default:
			return ErrEmptyTitle
		}
	}

	if utf8.RuneCountInString(value) > MaxFieldLength {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrValueTooLong, field, MaxFieldLength)
	}

	return nil
}
