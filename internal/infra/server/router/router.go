// Package router wires HTTP routes to their controllers.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeping/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/bookkeeping/internal/integration/entrypoint/middleware"
)

// Router holds the controllers and middleware served by the API.
type Router struct {
	engine                  *gin.Engine
	healthController        *controller.HealthController
	authController          *controller.AuthController
	accountController       *controller.AccountController
	categoryController      *controller.CategoryController
	transactionController   *controller.TransactionController
	transferController      *controller.TransferController
	attachmentController    *controller.AttachmentController
	recurringRuleController *controller.RecurringRuleController
	reportController        *controller.ReportController
	dashboardController     *controller.DashboardController
	authRateLimiter         *middleware.RateLimiter
	authMiddleware          *middleware.AuthMiddleware
	requestObserver         middleware.RequestObserver
	metricsHandler          http.Handler
}

// NewRouter creates a new router. A nil metrics handler leaves /metrics unrouted.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	transferController *controller.TransferController,
	attachmentController *controller.AttachmentController,
	recurringRuleController *controller.RecurringRuleController,
	reportController *controller.ReportController,
	dashboardController *controller.DashboardController,
	authRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	requestObserver middleware.RequestObserver,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		healthController:        healthController,
		authController:          authController,
		accountController:       accountController,
		categoryController:      categoryController,
		transactionController:   transactionController,
		transferController:      transferController,
		attachmentController:    attachmentController,
		recurringRuleController: recurringRuleController,
		reportController:        reportController,
		dashboardController:     dashboardController,
		authRateLimiter:         authRateLimiter,
		authMiddleware:          authMiddleware,
		requestObserver:         requestObserver,
		metricsHandler:          metricsHandler,
	}
}

// Setup builds the gin engine for the given environment.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.Observe(r.requestObserver))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.metricsHandler != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metricsHandler))
	}
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authRateLimiter.Middleware(), r.authController.Register)
		auth.POST("/login", r.authRateLimiter.Middleware(), r.authController.Login)
		auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	accounts := protected.Group("/accounts")
	{
		accounts.GET("", r.accountController.List)
		accounts.POST("", r.accountController.Create)
		accounts.GET("/:id", r.accountController.Get)
		accounts.PATCH("/:id", r.accountController.Update)
		accounts.DELETE("/:id", r.accountController.Delete)
		accounts.GET("/:id/balance", r.accountController.Balance)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.GET("/:id", r.categoryController.Get)
		categories.PATCH("/:id", r.categoryController.Update)
		categories.DELETE("/:id", r.categoryController.Delete)
	}

	transactions := protected.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.GET("/:id", r.transactionController.Get)
		transactions.PATCH("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
		transactions.GET("/:id/transfer-partner", r.transactionController.TransferPartner)

		transactions.GET("/:id/attachments", r.attachmentController.List)
		transactions.POST("/:id/attachments", r.attachmentController.Upload)
		transactions.DELETE("/:id/attachments/:attachment_id", r.attachmentController.Delete)
	}

	protected.POST("/transfers", r.transferController.Create)

	rules := protected.Group("/recurring-rules")
	{
		rules.GET("", r.recurringRuleController.List)
		rules.POST("", r.recurringRuleController.Create)
		rules.GET("/:id", r.recurringRuleController.Get)
		rules.PATCH("/:id", r.recurringRuleController.Update)
		rules.DELETE("/:id", r.recurringRuleController.Delete)
		rules.POST("/:id/execute", r.recurringRuleController.Execute)
	}

	protected.GET("/reports/transactions", r.reportController.Transactions)
	protected.GET("/dashboard/overview", r.dashboardController.Overview)
}
