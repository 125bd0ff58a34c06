package usecase

import (
	"context"
	"errors"
)

const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeTransactionFailed = "TRANSACTION_FAILED"
)

// ErrNotFound aborts a transaction whose target record is gone. Use cases
// absorb it: an unknown id is a silent no-op.
var ErrNotFound = errors.New("record not found")

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// settle turns a failed transaction into the use case's result: nil for a
// missing record, the context error when the request was abandoned, a
// TechnicalError otherwise.
func settle(err error) error {
	switch {
	case err == nil, errors.Is(err, ErrNotFound):
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	return &TechnicalError{Code: CodeTransactionFailed, Message: err.Error(), Err: err}
}
