package handlers

import (
	"tasktracker/internal/logger"
	"tasktracker/internal/metrics"
	"tasktracker/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), metrics.RequestMetrics())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Operational endpoints
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Auth endpoints (no token required)
	router.POST("/register", h.register)
	router.POST("/login", h.login)

	// Task endpoints; the middleware rejects anything without a valid token
	// before a handler runs.
	tasks := router.Group("/tasks", h.userIdMiddleware)
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
	}

	// Minimal WebSocket heartbeat (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}
