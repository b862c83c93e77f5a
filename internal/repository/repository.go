package repository

import (
	"context"
	"database/sql"
	"errors"

	"tasktracker/internal/models"
	"tasktracker/internal/repository/db"
)

// Sentinel errors shared by the storage layer.
var (
	// ErrDuplicateUsername signals a registration conflict on the unique
	// username column.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrTaskNotFound covers both "no such task" and "task owned by someone
	// else"; callers must not be able to tell the two apart.
	ErrTaskNotFound = errors.New("task not found")
)

type Authorization interface {
	Create(username, passwordHash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

type TaskStore interface {
	Create(ctx context.Context, ownerID int, title, description string) (models.Task, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Task, error)
	Update(ctx context.Context, id string, ownerID int, title, description string, isComplete bool) (models.Task, error)
	Delete(ctx context.Context, id string, ownerID int) error
}

type Repository struct {
	Auth  Authorization
	Tasks TaskStore
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		Auth:  NewUserRepository(database),
		Tasks: NewTaskSQLite(database),
	}
}

// InitDB opens the SQLite database at path and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
