package api

import (
	"errors"
	"fmt"
)

// NotFoundError represents a backend entity that could not be found.
type NotFoundError struct {
	// ResourceType categorizes the type of entity (e.g., "agent", "call", "campaign").
	ResourceType string

	// ResourceName is the identifier of the entity that was not found.
	ResourceName string

	// Message provides a custom error message if the default format is insufficient.
	Message string
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s not found", e.ResourceType, e.ResourceName)
}

// IsNotFound checks if an error is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// NewNotFoundError creates a new NotFoundError for the given entity.
func NewNotFoundError(resourceType, resourceName string) *NotFoundError {
	return &NotFoundError{
		ResourceType: resourceType,
		ResourceName: resourceName,
	}
}
