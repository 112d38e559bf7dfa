// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/config"
	"github.com/budgetwise/backend/internal/application/usecase/account"
	"github.com/budgetwise/backend/internal/application/usecase/auth"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/application/usecase/category"
	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
	"github.com/budgetwise/backend/internal/application/usecase/report"
	"github.com/budgetwise/backend/internal/application/usecase/transaction"
	"github.com/budgetwise/backend/internal/infra/server/router"
	"github.com/budgetwise/backend/internal/integration/adapters"
	"github.com/budgetwise/backend/internal/integration/email"
	"github.com/budgetwise/backend/internal/integration/email/templates"
	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetwise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
	Provisioner *auth.ProvisionDefaultUserUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	provisionUseCase := auth.NewProvisionDefaultUserUseCase(userRepo, passwordService)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	getAccountUseCase := account.NewGetAccountUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, categoryRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, accountRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, categoryRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo, categoryRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	budgetSummaryUseCase := budget.NewBudgetSummaryUseCase(budgetRepo, categoryRepo)
	evaluateBudgetsUseCase := budget.NewEvaluateBudgetsUseCase(budgetRepo, categoryRepo, userRepo, emailQueueRepo)

	// Create report use cases
	monthlyTrendsUseCase := report.NewMonthlyTrendsUseCase(transactionRepo)
	categoryBreakdownUseCase := report.NewCategoryBreakdownUseCase(transactionRepo)
	financialSummaryUseCase := report.NewFinancialSummaryUseCase(transactionRepo)
	detailedReportUseCase := report.NewDetailedReportUseCase(transactionRepo)

	// Create dashboard use case
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(
		accountRepo,
		transactionRepo,
		monthlyTrendsUseCase,
		categoryBreakdownUseCase,
		financialSummaryUseCase,
	)

	// Create email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	accountController := controller.NewAccountController(
		listAccountsUseCase,
		createAccountUseCase,
		getAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		getTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		getBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		budgetSummaryUseCase,
		evaluateBudgetsUseCase,
	)

	reportController := controller.NewReportController(
		monthlyTrendsUseCase,
		categoryBreakdownUseCase,
		financialSummaryUseCase,
		detailedReportUseCase,
	)

	dashboardController := controller.NewDashboardController(getDashboardUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		categoryController,
		transactionController,
		budgetController,
		reportController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
		Provisioner: provisionUseCase,
	}, nil
}
