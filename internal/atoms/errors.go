package atoms

import (
	"errors"
	"fmt"
)

// ConfigError indicates a missing or unusable process configuration. It is
// raised lazily on the first network call, not at startup, so commands that
// never reach the backend work without credentials.
type ConfigError struct {
	Variable string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s environment variable is required", e.Variable)
}

// IsConfigError checks if an error is or wraps a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// InvalidCredentialError indicates the backend rejected the API key (HTTP 401)
// during organization resolution.
type InvalidCredentialError struct{}

func (e *InvalidCredentialError) Error() string {
	return "invalid or revoked ATOMS_API_KEY. Check your API key in the Atoms console (Settings > API Keys)"
}

// NoOrganizationError indicates the API key verified but resolves to zero
// organizations.
type NoOrganizationError struct{}

func (e *NoOrganizationError) Error() string {
	return "no organizations found for this API key"
}

// AuthResolutionError indicates organization resolution failed for a reason
// other than a rejected key. It carries the status and raw body so callers
// can see what the backend actually said.
type AuthResolutionError struct {
	Status int
	Body   string
}

func (e *AuthResolutionError) Error() string {
	return fmt.Sprintf("failed to verify API key: %d %s", e.Status, e.Body)
}
