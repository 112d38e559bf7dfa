// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the transaction type is outside {income, expense}.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the transaction amount is negative.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be non-negative")

	// ErrCategoryNotFoundForTransaction is returned when the specified category is not found.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrAccountNotFoundForTransaction is returned when the specified account is not found.
	ErrAccountNotFoundForTransaction = errors.New("account not found")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010003"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-010004"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010005"
	ErrCodeTxnAccountNotFound       TransactionErrorCode = "TXN-010006"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010007"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
