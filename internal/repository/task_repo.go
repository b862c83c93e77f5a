package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tasktracker/internal/models"

	"github.com/google/uuid"
)

type TaskSQLite struct {
	db *sql.DB
}

func NewTaskSQLite(db *sql.DB) *TaskSQLite { return &TaskSQLite{db: db} }

var _ TaskStore = (*TaskSQLite)(nil)

// Every statement that touches an existing task filters on owner_id as well
// as id, so a task belonging to another user behaves exactly like a missing
// one.
const (
	insertTaskSQL = `INSERT INTO tasks (id, owner_id, title, description, is_complete, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	selectTasksByOwnerSQL = `SELECT id, owner_id, title, description, is_complete, created_at FROM tasks WHERE owner_id = ? ORDER BY rowid`

	selectTaskByIDSQL = `SELECT id, owner_id, title, description, is_complete, created_at FROM tasks WHERE id = ? AND owner_id = ?`

	updateTaskSQL = `UPDATE tasks SET title = ?, description = ?, is_complete = ? WHERE id = ? AND owner_id = ?`

	deleteTaskSQL = `DELETE FROM tasks WHERE id = ? AND owner_id = ?`
)

// Create persists a new task for ownerID and returns the full record.
func (r *TaskSQLite) Create(ctx context.Context, ownerID int, title, description string) (models.Task, error) {
	t := models.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		IsComplete:  false,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx, insertTaskSQL,
		t.ID, t.OwnerID, t.Title, t.Description, t.IsComplete, t.CreatedAt,
	)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task for owner %d: %w", ownerID, err)
	}
	return t, nil
}

// ListByOwner returns the owner's tasks in insertion order. The slice is
// empty, never nil, when the owner has no tasks.
func (r *TaskSQLite) ListByOwner(ctx context.Context, ownerID int) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTasksByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select tasks for owner %d: %w", ownerID, err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.IsComplete, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		t.CreatedAt = t.CreatedAt.UTC()
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return tasks, nil
}

// Update replaces title, description and is_complete on the owner's task and
// returns the updated record, or ErrTaskNotFound if no such task exists for
// that owner.
func (r *TaskSQLite) Update(ctx context.Context, id string, ownerID int, title, description string, isComplete bool) (models.Task, error) {
	res, err := r.db.ExecContext(ctx, updateTaskSQL, title, description, isComplete, id, ownerID)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Task{}, fmt.Errorf("rows affected for task %q: %w", id, err)
	}
	if affected == 0 {
		return models.Task{}, ErrTaskNotFound
	}
	return r.getByID(ctx, id, ownerID)
}

// Delete removes the owner's task, or reports ErrTaskNotFound under the same
// owner-scoping rule as Update.
func (r *TaskSQLite) Delete(ctx context.Context, id string, ownerID int) error {
	res, err := r.db.ExecContext(ctx, deleteTaskSQL, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete task %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for task %q: %w", id, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskSQLite) getByID(ctx context.Context, id string, ownerID int) (models.Task, error) {
	var t models.Task
	err := r.db.QueryRowContext(ctx, selectTaskByIDSQL, id, ownerID).
		Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.IsComplete, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, fmt.Errorf("select task %q: %w", id, err)
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}
