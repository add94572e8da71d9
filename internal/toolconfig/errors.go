package toolconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrUnknownTool is returned when a tool is absent from the tools section.
	ErrUnknownTool = errors.New("tool not found in configuration")
	// ErrUnknownField is returned when a tool record lacks the requested field.
	ErrUnknownField = errors.New("tool field not found in configuration")
	// ErrUnknownEnvVar is returned when a variable is absent from the environment section.
	ErrUnknownEnvVar = errors.New("environment variable not found in configuration")
)

// ParseError reports configuration content that is not valid JSON.
// The decoder's own error is available through errors.As.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse configuration %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
