package handlers

import (
	"errors"
	"net/http"

	"tasktracker/internal/repository"
	"tasktracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errListTasks  = "failed to list tasks"
	errCreateTask = "failed to create task"
	errUpdateTask = "failed to update task"
	errDeleteTask = "failed to delete task"
	errTaskAbsent = "task not found"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request DTO for creating a task.
type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// Request DTO for updating a task; PUT replaces all mutable fields.
type updateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      List the caller's tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {array}   models.Task
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks [get]
// @Security     BearerAuth
func (h *Handler) listTasks(c *gin.Context) {
	tasks, err := h.services.Tasks.List(c.Request.Context(), ownerID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListTasks, "tasks_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body  createTaskRequest  true  "Task payload"
// @Success      201  {object}  models.Task
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks [post]
// @Security     BearerAuth
func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.services.Tasks.Create(c.Request.Context(), ownerID(c), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateTask, "tasks_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// @Summary      Update a task
// @Description  Replaces title, description and is_complete on the caller's task.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Task ID"
// @Param        body  body  updateTaskRequest  true  "Task payload"
// @Success      200  {object}  models.Task
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string  "absent or not owned"
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.services.Tasks.Update(c.Request.Context(), c.Param("id"), ownerID(c), service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		IsComplete:  req.IsComplete,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errTaskAbsent})
		case errors.Is(err, service.ErrEmptyTitle):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errUpdateTask, "tasks_update_failed", err, "task_id", c.Param("id"))
		}
		return
	}
	c.JSON(http.StatusOK, task)
}

// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id  path  string  true  "Task ID"
// @Success      204  "deleted"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string  "absent or not owned"
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTask(c *gin.Context) {
	if err := h.services.Tasks.Delete(c.Request.Context(), c.Param("id"), ownerID(c)); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errTaskAbsent})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteTask, "tasks_delete_failed", err, "task_id", c.Param("id"))
		return
	}
	c.Status(http.StatusNoContent)
}
