// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rc-finance/backend/internal/integration/entrypoint/controller"
	"github.com/rc-finance/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	goalController       *controller.GoalController
	allocationController *controller.AllocationController
	userMiddleware       *middleware.UserMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	allocationController *controller.AllocationController,
	userMiddleware *middleware.UserMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		goalController:       goalController,
		allocationController: allocationController,
		userMiddleware:       userMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Goal routes (require user identity)
		if r.goalController != nil && r.userMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.userMiddleware.Identify())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id", r.goalController.Get)
				goals.PUT("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
				goals.POST("/:id/fund", r.goalController.Fund)
			}
		}

		// Allocation routes (require user identity)
		if r.allocationController != nil && r.userMiddleware != nil {
			allocations := v1.Group("/allocations")
			allocations.Use(r.userMiddleware.Identify())
			{
				allocations.POST("/preview", r.allocationController.Preview)
				allocations.POST("/apply", r.allocationController.Apply)
				allocations.GET("/weights", r.allocationController.GetWeights)
				allocations.POST("/weights/tune", r.allocationController.TuneWeights)
			}
		}
	}
}
