package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskstack/api/internal/core/domain"
	"github.com/taskstack/api/internal/core/ports"
)

type fakeTaskRepo struct {
	tasks  map[int64]*domain.Task
	nextID int64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[int64]*domain.Task), nextID: 1}
}

func (r *fakeTaskRepo) Save(_ context.Context, task *domain.Task) error {
	task.ID = r.nextID
	r.nextID++
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	copy := *task
	r.tasks[task.ID] = &copy
	return nil
}

func (r *fakeTaskRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	var out []*domain.Task
	for id := int64(1); id < r.nextID; id++ {
		if task, ok := r.tasks[id]; ok && task.OwnerID == ownerID {
			copy := *task
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) GetByIDAndOwner(_ context.Context, id int64, ownerID uuid.UUID) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	copy := *task
	return &copy, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *domain.Task) error {
	stored, ok := r.tasks[task.ID]
	if !ok || stored.OwnerID != task.OwnerID {
		return domain.ErrTaskNotFound
	}
	task.UpdatedAt = time.Now()
	copy := *task
	r.tasks[task.ID] = &copy
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64, ownerID uuid.UUID) error {
	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func TestCreateTask(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())
	owner := uuid.New()

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
		Title:       "Buy milk",
		Description: "2%",
	})
	require.NoError(t, err)

	assert.NotZero(t, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2%", task.Description)
	assert.False(t, task.Completed)
	assert.Equal(t, owner, task.OwnerID)
}

func TestCreateTaskValidation(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	owner := uuid.New()

	_, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{Description: "2%"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(context.Background(), owner, ports.CreateTaskInput{Title: "Buy milk"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Nothing may be persisted on a validation failure.
	assert.Empty(t, repo.tasks)
}

func TestTaskOwnershipScoping(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())
	alice := uuid.New()
	bob := uuid.New()

	task, err := svc.Create(context.Background(), alice, ports.CreateTaskInput{
		Title: "Buy milk", Description: "2%",
	})
	require.NoError(t, err)

	// Bob cannot see, change, or remove alice's task.
	list, err := svc.List(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Get(context.Background(), bob, task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	title := "hijacked"
	_, err = svc.Update(context.Background(), bob, task.ID, ports.UpdateTaskInput{Title: &title})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	err = svc.Delete(context.Background(), bob, task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	// Alice still has it, untouched.
	got, err := svc.Get(context.Background(), alice, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)
}

func TestUpdateTaskPartialFields(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())
	owner := uuid.New()

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
		Title: "Buy milk", Description: "2%",
	})
	require.NoError(t, err)

	completed := true
	updated, err := svc.Update(context.Background(), owner, task.ID, ports.UpdateTaskInput{
		Completed: &completed,
	})
	require.NoError(t, err)

	// Only the supplied field changed.
	assert.True(t, updated.Completed)
	assert.Equal(t, "Buy milk", updated.Title)
	assert.Equal(t, "2%", updated.Description)

	title := "Buy oat milk"
	updated, err = svc.Update(context.Background(), owner, task.ID, ports.UpdateTaskInput{
		Title: &title,
	})
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.True(t, updated.Completed)
}

func TestUpdateTaskValidation(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())
	owner := uuid.New()

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
		Title: "Buy milk", Description: "2%",
	})
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(context.Background(), owner, task.ID, ports.UpdateTaskInput{Title: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := svc.Get(context.Background(), owner, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)
}

func TestDeleteTask(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())
	owner := uuid.New()

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
		Title: "Buy milk", Description: "2%",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), owner, task.ID))

	_, err = svc.Get(context.Background(), owner, task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	err = svc.Delete(context.Background(), owner, task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
