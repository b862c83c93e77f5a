package handlers

import (
	"context"
	"net/http"

	"tasktracker/internal/models"
	"tasktracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockTasks struct {
	createResp models.Task
	createErr  error
	listResp   []models.Task
	listErr    error
	updateResp models.Task
	updateErr  error
	deleteErr  error

	lastOwnerID int
	lastTaskID  string
	lastUpdate  service.TaskUpdate
}

func (m *mockTasks) Create(_ context.Context, ownerID int, title, description string) (models.Task, error) {
	m.lastOwnerID = ownerID
	return m.createResp, m.createErr
}
func (m *mockTasks) List(_ context.Context, ownerID int) ([]models.Task, error) {
	m.lastOwnerID = ownerID
	return m.listResp, m.listErr
}
func (m *mockTasks) Update(_ context.Context, taskID string, ownerID int, upd service.TaskUpdate) (models.Task, error) {
	m.lastTaskID, m.lastOwnerID, m.lastUpdate = taskID, ownerID, upd
	return m.updateResp, m.updateErr
}
func (m *mockTasks) Delete(_ context.Context, taskID string, ownerID int) error {
	m.lastTaskID, m.lastOwnerID = taskID, ownerID
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
