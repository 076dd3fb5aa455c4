package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Error taxonomy sentinels. Every failure surfaced by the data access
// layer wraps exactly one of these so callers can dispatch with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("missing required field")
	ErrParse       = errors.New("unparseable timestamp")
	ErrConstraint  = errors.New("constraint violation")
	ErrTransaction = errors.New("transaction failed")
	ErrBadRequest  = errors.New("malformed request")
)

type ApiErr struct {
	StatusCode int
	err        error
	Details    string // Additional details about the error
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if apiErr, ok := e.Cause.(*ApiErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

func NewValidationError(field string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    fmt.Sprintf("missing required field: %s", field),
		Field:      field,
	}
}

func NewParseError(field, value string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrParse,
		Details:    fmt.Sprintf("cannot parse %s value %q", field, value),
		Field:      field,
		Cause:      cause,
	}
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrBadRequest,
		Details:    message,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

func IsConstraint(err error) bool {
	return errors.Is(err, ErrConstraint)
}

func IsTransaction(err error) bool {
	return errors.Is(err, ErrTransaction)
}
