package service

import (
	"context"
	"fmt"

	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/store"
	"github.com/Infogain-GenAI/sample-app1/internal/validators"
	"github.com/Infogain-GenAI/sample-app1/models"
)

type todoService struct {
	todoRepository store.TodoRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

func (s *todoService) CreateTodo(ctx context.Context, title string) (models.Todo, error) {
	if err := s.validator.Validate(ctx, models.Todo{Title: title}); err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.todoRepository.CreateTodo(ctx, title)
}

func (s *todoService) ListTodos(ctx context.Context) ([]models.Todo, error) {
	return s.todoRepository.ListTodos(ctx)
}
