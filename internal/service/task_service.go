package service

import (
	"context"
	"errors"
	"strings"

	"tasktracker/internal/models"
	"tasktracker/internal/repository"
)

// ErrEmptyTitle rejects tasks without a usable title.
var ErrEmptyTitle = errors.New("title must not be empty")

// TaskUpdate is a full replacement of a task's mutable fields; concurrent
// updates are last-write-wins.
type TaskUpdate struct {
	Title       string
	Description string
	IsComplete  bool
}

// TaskService is the enforcement point for owner scoping: it only ever passes
// the authenticated caller's ID down to the store.
type TaskService struct {
	tasks repository.TaskStore
}

func NewTaskService(tasks repository.TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) Create(ctx context.Context, ownerID int, title, description string) (models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return models.Task{}, ErrEmptyTitle
	}
	return s.tasks.Create(ctx, ownerID, title, description)
}

func (s *TaskService) List(ctx context.Context, ownerID int) ([]models.Task, error) {
	return s.tasks.ListByOwner(ctx, ownerID)
}

func (s *TaskService) Update(ctx context.Context, taskID string, ownerID int, upd TaskUpdate) (models.Task, error) {
	if strings.TrimSpace(upd.Title) == "" {
		return models.Task{}, ErrEmptyTitle
	}
	return s.tasks.Update(ctx, taskID, ownerID, upd.Title, upd.Description, upd.IsComplete)
}

func (s *TaskService) Delete(ctx context.Context, taskID string, ownerID int) error {
	return s.tasks.Delete(ctx, taskID, ownerID)
}
