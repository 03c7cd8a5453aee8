package errors

import "fmt"

// NotFoundError reports a catalog id that does not exist. The engine never
// substitutes a zero price for a missing record.
type NotFoundError struct {
	Category string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in catalog", e.Category, e.ID)
}

func NewNotFoundError(category, id string) *NotFoundError {
	return &NotFoundError{Category: category, ID: id}
}

// ValidationError reports a structurally invalid booking request field. Callers
// should surface it as "need more information", not as a system fault.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConfigurationError reports an incomplete or inconsistent policy config. This is
// an operator-facing fault, fatal for the request.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("policy configuration missing or invalid: %s", e.Field)
}

func NewConfigurationError(field string) *ConfigurationError {
	return &ConfigurationError{Field: field}
}
