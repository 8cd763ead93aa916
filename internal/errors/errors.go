// Package errors provides typed errors for the timekeep CLI, with stable
// codes for programmatic handling.
package errors

import (
	"fmt"
)

// TimekeepError is the base interface for all timekeep errors.
type TimekeepError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ConfigurationError represents errors in demo configuration files.
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ValidationError represents a config file that parsed but failed schema or
// structural validation.
type ValidationError struct {
	baseError
	Path string
}

// NewValidationError creates a new validation error.
func NewValidationError(path string, message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    "VALIDATION_ERROR",
			message: message,
		},
		Path: path,
	}
}

// AlreadyExistsError represents an attempt to create a file that exists.
type AlreadyExistsError struct {
	baseError
	Path string
}

// NewAlreadyExistsError creates a new already-exists error.
func NewAlreadyExistsError(path string, message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		baseError: baseError{
			code:    "ALREADY_EXISTS",
			message: message,
		},
		Path: path,
	}
}

// ExecutionError represents a failure while running a command.
type ExecutionError struct {
	baseError
	Command string
}

// NewExecutionError creates a new execution error.
func NewExecutionError(command string, message string, cause error) *ExecutionError {
	return &ExecutionError{
		baseError: baseError{
			code:    "EXEC_ERROR",
			message: message,
			cause:   cause,
		},
		Command: command,
	}
}
