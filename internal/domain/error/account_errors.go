// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNotAuthorizedToModifyAccount is returned when user is not authorized to modify an account.
	ErrNotAuthorizedToModifyAccount = errors.New("not authorized to modify account")

	// ErrInvalidAccountType is returned when the account type is invalid.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidCurrencyCode is returned when the currency code is not a three-letter ISO code.
	ErrInvalidCurrencyCode = errors.New("invalid currency code")

	// ErrAccountNameRequired is returned when the account name is empty.
	ErrAccountNameRequired = errors.New("account name is required")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAccountType   AccountErrorCode = "ACC-010001"
	ErrCodeInvalidCurrencyCode  AccountErrorCode = "ACC-010002"
	ErrCodeAccountNameRequired  AccountErrorCode = "ACC-010003"
	ErrCodeAccountNotFound      AccountErrorCode = "ACC-010004"
	ErrCodeNotAuthorizedAccount AccountErrorCode = "ACC-010005"
	ErrCodeMissingAccountFields AccountErrorCode = "ACC-010006"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
