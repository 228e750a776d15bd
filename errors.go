package widget

import "fmt"

// AtlasError reports an icon atlas that could not be read or is invalid.
type AtlasError struct {
	Icon    string // offending icon, empty for atlas-wide problems
	Message string
	Err     error
}

// NewAtlasError constructs an AtlasError.
func NewAtlasError(icon, message string, err error) error {
	return &AtlasError{Icon: icon, Message: message, Err: err}
}

func (e *AtlasError) Error() string {
	if e == nil {
		return ""
	}
	if e.Icon != "" {
		return fmt.Sprintf("icon atlas: %s: %s", e.Icon, e.Message)
	}
	return fmt.Sprintf("icon atlas: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *AtlasError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigError reports an invalid layout configuration value.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

// NewConfigError constructs a ConfigError.
func NewConfigError(field, message string, err error) error {
	return &ConfigError{Field: field, Message: message, Err: err}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
