package security

import (
	"fmt"
	"strings"
)

// ConfigurationError is fail-fast and non-retryable: a provider whose config
// does not validate is blocked until the config is corrected. Fields lists
// every missing or malformed field, not just the first.
type ConfigurationError struct {
	Provider string
	Fields   []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid security config for provider %s: %s",
		e.Provider, strings.Join(e.Fields, "; "))
}
