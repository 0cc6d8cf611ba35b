// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/store"
	"github.com/Infogain-GenAI/sample-app1/models"
	"github.com/rs/zerolog"
)

type userManager struct {
	userService UserService

	logger *logger.Logger
}

// NewUserManager builds the boolean facade over userService. Errors never
// leave the facade: they are logged with their failure reason and turned
// into false.
func NewUserManager(userService UserService, logger *logger.Logger) UserManager {
	return &userManager{
		userService: userService,
		logger:      logger,
	}
}

func (m *userManager) AddUser(ctx context.Context, name, email string) bool {
	_, err := m.userService.CreateUser(ctx, models.User{Name: name, Email: email})
	if err != nil {
		m.logFailure(ctx, "AddUser", err).Str("name", name).Msg("failed to add user")
		return false
	}

	return true
}

func (m *userManager) GetUser(ctx context.Context, name string) (models.User, bool) {
	user, err := m.userService.GetUser(ctx, name)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			m.logFailure(ctx, "GetUser", err).Str("name", name).Msg("failed to get user")
		}
		return models.User{}, false
	}

	return user, true
}

func (m *userManager) FindUserByEmail(ctx context.Context, email string) (models.User, bool) {
	user, err := m.userService.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			m.logFailure(ctx, "FindUserByEmail", err).Str("email", email).Msg("failed to find user by email")
		}
		return models.User{}, false
	}

	return user, true
}

func (m *userManager) UpdateUser(ctx context.Context, name, email string) bool {
	if err := m.userService.UpdateUserEmail(ctx, name, email); err != nil {
		m.logFailure(ctx, "UpdateUser", err).Str("name", name).Msg("failed to update user")
		return false
	}

	return true
}

func (m *userManager) DeleteUser(ctx context.Context, name string) bool {
	if err := m.userService.DeleteUser(ctx, name); err != nil {
		m.logFailure(ctx, "DeleteUser", err).Str("name", name).Msg("failed to delete user")
		return false
	}

	return true
}

// GetAllUsers returns ok=false when the listing could not be produced. An
// empty table gives a non-nil empty slice and ok=true.
func (m *userManager) GetAllUsers(ctx context.Context) ([]models.User, bool) {
	users, err := m.userService.ListUsers(ctx)
	if err != nil {
		m.logFailure(ctx, "GetAllUsers", err).Msg("failed to list users")
		return nil, false
	}

	if users == nil {
		users = []models.User{}
	}
	return users, true
}

func (m *userManager) logFailure(ctx context.Context, op string, err error) *zerolog.Event {
	log := logger.FromContextOr(ctx, m.logger)

	event := log.Error()
	if errors.Is(err, store.ErrStoreUnavailable) || errors.Is(err, ErrNoRowsAffected) {
		event = log.Warn()
	}

	return event.Err(err).
		Str("func", "*userManager."+op).
		Str("reason", store.ReasonOf(err).String())
}
