package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/taskstack/api/internal/core/domain"
	"github.com/taskstack/api/internal/core/ports"
)

type taskService struct {
	repo ports.TaskRepository
}

func NewTaskService(repo ports.TaskRepository) ports.TaskService {
	return &taskService{
		repo: repo,
	}
}

func (s *taskService) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *taskService) Create(ctx context.Context, ownerID uuid.UUID, input ports.CreateTaskInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		OwnerID:     ownerID,
	}

	if err := s.repo.Save(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) Get(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Task, error) {
	return s.repo.GetByIDAndOwner(ctx, id, ownerID)
}

func (s *taskService) Update(ctx context.Context, ownerID uuid.UUID, id int64, input ports.UpdateTaskInput) (*domain.Task, error) {
	// Fetching through the owner-scoped query first means a foreign task is
	// indistinguishable from a missing one.
	task, err := s.repo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		if *input.Description == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", domain.ErrInvalidInput)
		}
		task.Description = *input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	return s.repo.Delete(ctx, id, ownerID)
}
