package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current state")

// ErrForbidden indicates the caller may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal is returned when an infrastructure failure must not leak details to callers.
var ErrInternal = errors.New("internal error")

// AppError wraps an infrastructure error with a status-like code and a message
// suitable for logs.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	if e.Err == nil {
		return ErrInternal
	}
	return e.Err
}

// UnbalancedTransactionError is returned when the debit and kredit totals of a
// ledger transaction differ by more than the rounding tolerance.
type UnbalancedTransactionError struct {
	TotalDebit  decimal.Decimal
	TotalKredit decimal.Decimal
}

func (e *UnbalancedTransactionError) Error() string {
	return fmt.Sprintf("unbalanced transaction: debit %s, kredit %s",
		e.TotalDebit.StringFixed(2), e.TotalKredit.StringFixed(2))
}

func (e *UnbalancedTransactionError) Unwrap() error { return ErrValidation }

// InvalidStateTransitionError is returned when a booking or payment is attempted
// on a document whose current status does not allow it.
type InvalidStateTransitionError struct {
	Document  string
	Operation string
	Reason    string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: cannot %s %s: %s", e.Operation, e.Document, e.Reason)
}

func (e *InvalidStateTransitionError) Unwrap() error { return ErrConflict }

// NotFoundError is returned when a resource with the given ID does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return notFoundMessage(e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotOwnedError is returned when a resource exists but belongs to another owner.
// Its message matches NotFoundError for the same resource and ID.
type NotOwnedError struct {
	Resource string
	ID       string
}

func (e *NotOwnedError) Error() string {
	return notFoundMessage(e.Resource, e.ID)
}

func (e *NotOwnedError) Unwrap() error { return ErrNotFound }

// UnmappedAdjustmentTypeError is returned when a payroll adjustment type has no
// account in the type to account table.
type UnmappedAdjustmentTypeError struct {
	Type string
}

func (e *UnmappedAdjustmentTypeError) Error() string {
	return fmt.Sprintf("adjustment type %q has no account mapping", e.Type)
}

func (e *UnmappedAdjustmentTypeError) Unwrap() error { return ErrValidation }

// InvalidPayrollInputError is returned for payroll inputs that cannot produce a
// valid payslip, such as a negative gross or net pay.
type InvalidPayrollInputError struct {
	Reason string
}

func (e *InvalidPayrollInputError) Error() string {
	return "invalid payroll input: " + e.Reason
}

func (e *InvalidPayrollInputError) Unwrap() error { return ErrValidation }

func notFoundMessage(resource, id string) string {
	return fmt.Sprintf("%s %s not found", resource, id)
}
