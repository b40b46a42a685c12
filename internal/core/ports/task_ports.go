package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskstack/api/internal/core/domain"
)

type TaskRepository interface {
	Save(ctx context.Context, task *domain.Task) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)
	GetByIDAndOwner(ctx context.Context, id int64, ownerID uuid.UUID) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64, ownerID uuid.UUID) error
}

type CreateTaskInput struct {
	Title       string
	Description string
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

type TaskService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)
	Create(ctx context.Context, ownerID uuid.UUID, input CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Task, error)
	Update(ctx context.Context, ownerID uuid.UUID, id int64, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, ownerID uuid.UUID, id int64) error
}
