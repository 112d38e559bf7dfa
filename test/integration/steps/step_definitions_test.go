package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/usecase/account"
	"github.com/budgetwise/backend/internal/application/usecase/auth"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/application/usecase/category"
	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
	"github.com/budgetwise/backend/internal/application/usecase/report"
	"github.com/budgetwise/backend/internal/application/usecase/transaction"
	"github.com/budgetwise/backend/internal/infra/server/router"
	"github.com/budgetwise/backend/internal/integration/adapters"
	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetwise/backend/internal/integration/persistence"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
	"github.com/budgetwise/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	refreshToken      string
	currentUserID     uuid.UUID
	currentAccountID  uuid.UUID
	categoryIDs       map[string]uuid.UUID
	lastTransactionID uuid.UUID
	lastBudgetID      uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("budgetwise", map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"accounts":       &model.AccountModel{},
			"categories":     &model.CategoryModel{},
			"transactions":   &model.TransactionModel{},
			"budgets":        &model.BudgetModel{},
			"email_queue":    &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^the user has budget alerts disabled$`, test.theUserHasBudgetAlertsDisabled)

	// Fixture setup steps
	ctx.Given(`^an account exists with name "([^"]*)" and balance "([^"]*)"$`, test.anAccountExistsWithNameAndBalance)
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^an expense of "([^"]*)" in "([^"]*)" on "([^"]*)"$`, test.anExpenseInCategoryOn)
	ctx.Given(`^an uncategorized expense of "([^"]*)" on "([^"]*)"$`, test.anUncategorizedExpenseOn)
	ctx.Given(`^an income of "([^"]*)" on "([^"]*)"$`, test.anIncomeOn)
	ctx.Given(`^a budget of "([^"]*)" for "([^"]*)" from "([^"]*)" to "([^"]*)" with threshold "([^"]*)"$`, test.aBudgetForCategory)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentAccountID = uuid.Nil
	t.categoryIDs = make(map[string]uuid.UUID)
	t.lastTransactionID = uuid.Nil
	t.lastBudgetID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			accountRepo := persistence.NewAccountRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

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

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
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
			loginRateLimiter := middleware.NewRateLimiter(mock.NewRedis())
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		FullName:     name,
		PasswordHash: hashPassword(password),
		IsActive:     true,
		BudgetAlerts: true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserHasBudgetAlertsDisabled() error {
	return t.db.DbConn.Model(&model.UserModel{}).
		Where("id = ?", t.currentUserID).
		Update("budget_alerts", false).Error
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	// Generate access token
	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "budgetwise",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	// Generate refresh token
	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "budgetwise",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	// Store refresh token in database
	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) anAccountExistsWithNameAndBalance(name, balance string) error {
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid balance: %w", err)
	}

	accountID := uuid.New()
	t.currentAccountID = accountID

	accountModel := &model.AccountModel{
		ID:        accountID,
		UserID:    t.currentUserID,
		Name:      name,
		Type:      "bank",
		Balance:   amount,
		Currency:  "USD",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return t.db.DbConn.Create(accountModel).Error
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	categoryID := uuid.New()
	t.categoryIDs[name] = categoryID

	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Name:      name,
		Type:      categoryType,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) anExpenseInCategoryOn(amount, categoryName, date string) error {
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("category %q has not been created", categoryName)
	}
	return t.createTransaction(amount, "expense", &categoryID, date)
}

func (t *testContext) anUncategorizedExpenseOn(amount, date string) error {
	return t.createTransaction(amount, "expense", nil, date)
}

func (t *testContext) anIncomeOn(amount, date string) error {
	return t.createTransaction(amount, "income", nil, date)
}

func (t *testContext) createTransaction(amount, txnType string, categoryID *uuid.UUID, date string) error {
	// Lazily create a default account for transaction fixtures
	if t.currentAccountID == uuid.Nil {
		if err := t.anAccountExistsWithNameAndBalance("Checking", "1000"); err != nil {
			return err
		}
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID

	transactionModel := &model.TransactionModel{
		ID:         transactionID,
		UserID:     t.currentUserID,
		AccountID:  t.currentAccountID,
		CategoryID: categoryID,
		Amount:     value,
		Type:       txnType,
		Date:       parsedDate,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) aBudgetForCategory(amount, categoryName, startDate, endDate, threshold string) error {
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("category %q has not been created", categoryName)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}
	thresholdValue, err := strconv.ParseFloat(threshold, 64)
	if err != nil {
		return fmt.Errorf("invalid threshold: %w", err)
	}

	budgetID := uuid.New()
	t.lastBudgetID = budgetID

	budgetModel := &model.BudgetModel{
		ID:                    budgetID,
		UserID:                t.currentUserID,
		CategoryID:            categoryID,
		Amount:                value,
		Spent:                 decimal.Zero,
		StartDate:             start,
		EndDate:               end,
		NotificationThreshold: thresholdValue,
		IsActive:              true,
		CreatedAt:             time.Now(),
		UpdatedAt:             time.Now(),
	}

	return t.db.DbConn.Create(budgetModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replaceTokenPlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replaceTokenPlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replaceTokenPlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{account_id}}", t.currentAccountID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", t.lastBudgetID.String())

	for name, id := range t.categoryIDs {
		placeholder := fmt.Sprintf("{{category_id:%s}}", name)
		content = strings.ReplaceAll(content, placeholder, id.String())
	}

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture created resource IDs for follow-up requests
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastTransactionID = id
				t.lastBudgetID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	current := object

	for _, field := range fields {
		switch v := current.(type) {
		case map[string]any:
			value, ok := v[field]
			if !ok {
				return nil
			}
			current = value
		case []any:
			index, err := strconv.Atoi(field)
			if err != nil || index < 0 || index >= len(v) {
				return nil
			}
			current = v[index]
		default:
			return nil
		}
	}

	return current
}
