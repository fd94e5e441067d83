// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/bookkeeping/config"
	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/account"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/attachment"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/auth"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/category"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/dashboard"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/recurring"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/report"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/transaction"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/transfer"
	"github.com/finance-tracker/bookkeeping/internal/infra/metrics"
	"github.com/finance-tracker/bookkeeping/internal/infra/server/router"
	"github.com/finance-tracker/bookkeeping/internal/integration/adapters"
	"github.com/finance-tracker/bookkeeping/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/bookkeeping/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/bookkeeping/internal/integration/lock"
	"github.com/finance-tracker/bookkeeping/internal/integration/persistence"
	reportrenderer "github.com/finance-tracker/bookkeeping/internal/integration/report"
	"github.com/finance-tracker/bookkeeping/internal/integration/storage"
)

// Options carries the optional collaborators of the injector.
type Options struct {
	// Clock defaults to the system clock.
	Clock adapter.Clock
	// Redis enables the per-rule lease when set.
	Redis *redis.Client
	// Metrics enables the /metrics route and request instrumentation when set.
	Metrics *metrics.Metrics
	// DBHealthChecker reports database reachability on /health.
	DBHealthChecker func() bool
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	RunDueRules *recurring.RunDueRulesUseCase
	RateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	ruleRepo := persistence.NewRecurringRuleRepository(db)
	attachmentRepo := persistence.NewAttachmentRepository(db)
	unitOfWork := persistence.NewUnitOfWork(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.Issuer, clock)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment storage: %w", err)
	}

	renderer, err := reportrenderer.NewHTMLRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create report renderer: %w", err)
	}

	var ruleLocker adapter.RuleLocker
	if opts.Redis != nil {
		ruleLocker = lock.NewRedisLocker(opts.Redis, cfg.Worker.LeaseTTL)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	getCurrentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo, transactionRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo, transactionRepo, ruleRepo)
	accountBalanceUseCase := account.NewGetAccountBalanceUseCase(accountRepo, transactionRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, transactionRepo, ruleRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo, ruleRepo)

	// Create transaction and transfer use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, categoryRepo, clock)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, unitOfWork)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, attachmentRepo, fileStorage, unitOfWork)
	createTransferUseCase := transfer.NewCreateTransferUseCase(transactionRepo, accountRepo, categoryRepo, unitOfWork, clock)
	transferPartnerUseCase := transfer.NewGetTransferPartnerUseCase(transactionRepo)

	// Create attachment use cases
	listAttachmentsUseCase := attachment.NewListAttachmentsUseCase(transactionRepo, attachmentRepo)
	addAttachmentUseCase := attachment.NewAddAttachmentUseCase(transactionRepo, attachmentRepo, fileStorage, cfg.Storage.MaxUploadSize)
	deleteAttachmentUseCase := attachment.NewDeleteAttachmentUseCase(transactionRepo, attachmentRepo, fileStorage)

	// Create recurring rule use cases
	listRulesUseCase := recurring.NewListRecurringRulesUseCase(ruleRepo)
	getRuleUseCase := recurring.NewGetRecurringRuleUseCase(ruleRepo)
	createRuleUseCase := recurring.NewCreateRecurringRuleUseCase(ruleRepo, accountRepo, categoryRepo)
	updateRuleUseCase := recurring.NewUpdateRecurringRuleUseCase(ruleRepo, accountRepo, categoryRepo, clock)
	deleteRuleUseCase := recurring.NewDeleteRecurringRuleUseCase(ruleRepo)
	executeRuleUseCase := recurring.NewExecuteRuleUseCase(ruleRepo, transactionRepo, unitOfWork, clock)
	runDueRulesUseCase := recurring.NewRunDueRulesUseCase(ruleRepo, executeRuleUseCase, ruleLocker, clock)

	// Create report use cases
	generateReportUseCase := report.NewGenerateReportUseCase(transactionRepo, accountRepo, categoryRepo, renderer, clock)

	// Create dashboard use cases
	overviewUseCase := dashboard.NewGetOverviewUseCase(accountRepo, transactionRepo, clock)

	// Create controllers
	var redisHealthChecker func() bool
	if opts.Redis != nil {
		redisHealthChecker = lock.HealthChecker(opts.Redis)
	}
	healthController := controller.NewHealthController(opts.DBHealthChecker, redisHealthChecker)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		getCurrentUserUseCase,
	)

	accountController := controller.NewAccountController(
		listAccountsUseCase,
		createAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
		accountBalanceUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		getCategoryUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		transferPartnerUseCase,
	)

	transferController := controller.NewTransferController(createTransferUseCase)

	attachmentController := controller.NewAttachmentController(
		listAttachmentsUseCase,
		addAttachmentUseCase,
		deleteAttachmentUseCase,
		fileStorage,
	)

	recurringRuleController := controller.NewRecurringRuleController(
		listRulesUseCase,
		getRuleUseCase,
		createRuleUseCase,
		updateRuleUseCase,
		deleteRuleUseCase,
		executeRuleUseCase,
	)

	reportController := controller.NewReportController(generateReportUseCase)
	dashboardController := controller.NewDashboardController(overviewUseCase)

	// Create middleware
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window, cfg.RateLimit.Enabled)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	var requestObserver middleware.RequestObserver
	var metricsHandler http.Handler
	if opts.Metrics != nil {
		requestObserver = opts.Metrics
		metricsHandler = opts.Metrics.Handler()
	}

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		categoryController,
		transactionController,
		transferController,
		attachmentController,
		recurringRuleController,
		reportController,
		dashboardController,
		rateLimiter,
		authMiddleware,
		requestObserver,
		metricsHandler,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		RunDueRules: runDueRulesUseCase,
		RateLimiter: rateLimiter,
	}, nil
}
