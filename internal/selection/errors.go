package selection

import "fmt"

// ConfigurationError reports an invalid invocation: an empty fragment list,
// missing test sources, or an incompatible flag combination. It always aborts
// before any discovery request is issued.
type ConfigurationError struct {
	Reason string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return e.Reason
}

// NewConfigurationError creates a ConfigurationError with a formatted reason
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
