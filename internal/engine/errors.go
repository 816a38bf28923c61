package engine

import (
	"errors"
	"fmt"
)

// ErrExhausted signals that no eligible choice remains: everything
// reachable has been declined, or every remaining choice has zero
// selection probability. Model select implementations return it; the
// engine turns it into the Exhausted outcome.
var ErrExhausted = errors.New("no eligible choice remains")

// ConfigErrorCode categorizes configuration errors.
type ConfigErrorCode string

const (
	// ErrCodeCategoryNotFound indicates the requested category is not
	// in the document.
	ErrCodeCategoryNotFound ConfigErrorCode = "CATEGORY_NOT_FOUND"

	// ErrCodeInvalidCategory indicates category data that fails
	// validation at engine entry (empty choice list, unknown model,
	// negative numeric field).
	ErrCodeInvalidCategory ConfigErrorCode = "INVALID_CATEGORY"
)

// ConfigError is a fatal configuration problem discovered at engine
// entry. No partial pick occurs and nothing is mutated.
type ConfigError struct {
	Code     ConfigErrorCode
	Category string
	Err      error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: category %q: %v", e.Code, e.Category, e.Err)
	}
	return fmt.Sprintf("%s: category %q", e.Code, e.Category)
}

// Unwrap returns the underlying validation error, if any.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// NewCategoryNotFoundError creates a ConfigError for a missing category.
func NewCategoryNotFoundError(category string) *ConfigError {
	return &ConfigError{Code: ErrCodeCategoryNotFound, Category: category}
}

// NewInvalidCategoryError creates a ConfigError wrapping a validation
// failure.
func NewInvalidCategoryError(category string, err error) *ConfigError {
	return &ConfigError{Code: ErrCodeInvalidCategory, Category: category, Err: err}
}
