package errs

import (
	"fmt"
	"net/http"
	"strings"
)

// NewDatabaseError classifies a store-level failure during an operation
// onto the error taxonomy. Driver error strings are the only portable
// signal for constraint conflicts, so classification is substring based.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "duplicate key"),
			strings.Contains(errStr, "UNIQUE constraint"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        ErrConstraint,
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "foreign key constraint"),
			strings.Contains(errStr, "FOREIGN KEY constraint"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        ErrConstraint,
				Details:    "The referenced resource does not exist or cannot be unlinked",
				Cause:      cause,
			}
		case strings.Contains(errStr, "record not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s %w", entity, ErrNotFound),
				Details:    details,
				Cause:      cause,
			}
		}
	}

	// Any other store-level write failure is a transaction failure
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrTransaction,
		Details:    details,
		Cause:      cause,
	}
}
