// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	reportController      *controller.ReportController
	dashboardController   *controller.DashboardController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	reportController *controller.ReportController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		accountController:     accountController,
		categoryController:    categoryController,
		transactionController: transactionController,
		budgetController:      budgetController,
		reportController:      reportController,
		dashboardController:   dashboardController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
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

	// Setup routes
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Account routes (require authentication)
		if r.accountController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.GET("/:id", r.accountController.Get)
				accounts.PATCH("/:id", r.accountController.Update)
				accounts.DELETE("/:id", r.accountController.Delete)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				// Static paths registered before :id to avoid conflicts
				budgets.GET("/summary", r.budgetController.Summary)
				budgets.POST("/evaluate", r.budgetController.Evaluate)
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.GET("/:id", r.budgetController.Get)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/trends", r.reportController.Trends)
				reports.GET("/breakdown", r.reportController.Breakdown)
				reports.GET("/summary", r.reportController.Summary)
				reports.GET("/detailed", r.reportController.Detailed)
			}
		}

		// Dashboard route (requires authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.Get)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
