package service

import (
	"context"
	"fmt"

	"github.com/Infogain-GenAI/sample-app1/internal/config"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/store"
	"github.com/Infogain-GenAI/sample-app1/models"
)

type userService struct {
	userRepository store.UserRepository

	// requireAffectedRows turns a zero-row update or delete into
	// ErrNoRowsAffected.
	requireAffectedRows bool

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.DB, logger *logger.Logger) UserService {
	return &userService{
		userRepository:      userRepository,
		requireAffectedRows: cfg.RequireAffectedRows,
		logger:              logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	created, err := s.userRepository.CreateUser(ctx, user.Name, user.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("error creating user %q: %w", user.Name, err)
	}

	return created, nil
}

func (s *userService) GetUser(ctx context.Context, name string) (models.User, error) {
	return s.userRepository.FindUserByName(ctx, name)
}

func (s *userService) FindUsersByName(ctx context.Context, name string) ([]models.User, error) {
	return s.userRepository.FindUsersByName(ctx, name)
}

func (s *userService) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.userRepository.FindUserByEmail(ctx, email)
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

func (s *userService) UpdateUserEmail(ctx context.Context, name, email string) error {
	affected, err := s.userRepository.UpdateUserEmail(ctx, name, email)
	if err != nil {
		return fmt.Errorf("error updating email of user %q: %w", name, err)
	}

	return s.checkAffected(ctx, "UpdateUserEmail", affected)
}

func (s *userService) UpdateUserEmailByID(ctx context.Context, id int64, email string) error {
	affected, err := s.userRepository.UpdateUserEmailByID(ctx, id, email)
	if err != nil {
		return fmt.Errorf("error updating email of user %d: %w", id, err)
	}

	return s.checkAffected(ctx, "UpdateUserEmailByID", affected)
}

func (s *userService) DeleteUser(ctx context.Context, name string) error {
	affected, err := s.userRepository.DeleteUser(ctx, name)
	if err != nil {
		return fmt.Errorf("error deleting user %q: %w", name, err)
	}

	return s.checkAffected(ctx, "DeleteUser", affected)
}

func (s *userService) DeleteUserByID(ctx context.Context, id int64) error {
	affected, err := s.userRepository.DeleteUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting user %d: %w", id, err)
	}

	return s.checkAffected(ctx, "DeleteUserByID", affected)
}

func (s *userService) SetActive(active bool) {
	s.userRepository.SetActive(active)
}

func (s *userService) Active() bool {
	return s.userRepository.Active()
}

// checkAffected applies the zero-rows policy. By default a statement that
// matched nothing still succeeds.
func (s *userService) checkAffected(ctx context.Context, op string, affected int64) error {
	if affected > 0 {
		return nil
	}

	log := logger.FromContextOr(ctx, s.logger)
	log.Debug().Str("func", "*userService."+op).Bool("strict", s.requireAffectedRows).Msg("no rows affected")

	if s.requireAffectedRows {
		return ErrNoRowsAffected
	}
	return nil
}
