package service

import (
	"context"
	"time"

	"tasktracker/internal/models"
	"tasktracker/internal/repository"
)

// Authorization covers registration, credential checks and token handling.
type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Tasks exposes owner-scoped task CRUD. The ownerID argument always comes
// from a verified token, never from client input.
type Tasks interface {
	Create(ctx context.Context, ownerID int, title, description string) (models.Task, error)
	List(ctx context.Context, ownerID int) ([]models.Task, error)
	Update(ctx context.Context, taskID string, ownerID int, upd TaskUpdate) (models.Task, error)
	Delete(ctx context.Context, taskID string, ownerID int) error
}

// AuthConfig carries the token-signing settings injected at startup.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type Service struct {
	Authorization
	Tasks
}

func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, authCfg),
		Tasks:         NewTaskService(repos.Tasks),
	}
}
