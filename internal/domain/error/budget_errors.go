// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNotAuthorizedToModifyBudget is returned when user is not authorized to modify a budget.
	ErrNotAuthorizedToModifyBudget = errors.New("not authorized to modify budget")

	// ErrInvalidBudgetAmount is returned when the budget amount is not positive.
	ErrInvalidBudgetAmount = errors.New("budget amount must be greater than zero")

	// ErrInvalidBudgetWindow is returned when end_date is before start_date.
	ErrInvalidBudgetWindow = errors.New("end_date must not be before start_date")

	// ErrInvalidNotificationThreshold is returned when the threshold is outside [0,1].
	ErrInvalidNotificationThreshold = errors.New("notification threshold must be between 0 and 1")

	// ErrBudgetCategoryNotFound is returned when the budget's category does not exist.
	ErrBudgetCategoryNotFound = errors.New("category not found")

	// ErrBudgetSpentWriteFailed is returned when persisting a refreshed spent value fails.
	ErrBudgetSpentWriteFailed = errors.New("failed to persist budget spent amount")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount     BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetWindow     BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidThreshold        BudgetErrorCode = "BDG-010003"
	ErrCodeBudgetNotFound          BudgetErrorCode = "BDG-010004"
	ErrCodeNotAuthorizedBudget     BudgetErrorCode = "BDG-010005"
	ErrCodeBudgetCategoryNotFound  BudgetErrorCode = "BDG-010006"
	ErrCodeMissingBudgetFields     BudgetErrorCode = "BDG-010007"

	// Evaluation errors (02XXXX)
	ErrCodeBudgetSpentWriteFailed BudgetErrorCode = "BDG-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
