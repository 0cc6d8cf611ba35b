package service

import (
	"context"
	"fmt"

	"github.com/Infogain-GenAI/sample-app1/internal/validators"
	"github.com/Infogain-GenAI/sample-app1/models"
)

// UserValidationService checks client input before handing it to the
// wrapped UserService. Lookups and listings pass through untouched.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) GetUser(ctx context.Context, name string) (models.User, error) {
	return v.inner.GetUser(ctx, name)
}

func (v *UserValidationService) FindUsersByName(ctx context.Context, name string) ([]models.User, error) {
	return v.inner.FindUsersByName(ctx, name)
}

func (v *UserValidationService) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return v.inner.FindUserByEmail(ctx, email)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) UpdateUserEmail(ctx context.Context, name, email string) error {
	if err := v.validator.Validate(ctx, models.UserEmailUpdate{Email: email}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateUserEmail(ctx, name, email)
}

func (v *UserValidationService) UpdateUserEmailByID(ctx context.Context, id int64, email string) error {
	if err := v.validator.Validate(ctx, models.User{ID: id, Email: email}, validators.FieldID, validators.FieldEmail); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateUserEmailByID(ctx, id, email)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, name string) error {
	return v.inner.DeleteUser(ctx, name)
}

func (v *UserValidationService) DeleteUserByID(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, models.User{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteUserByID(ctx, id)
}

func (v *UserValidationService) SetActive(active bool) {
	v.inner.SetActive(active)
}

func (v *UserValidationService) Active() bool {
	return v.inner.Active()
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}
