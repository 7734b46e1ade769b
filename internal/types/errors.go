package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for Stargate pipeline errors.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// Judgment error codes
const (
	RUBRIC_WEIGHT_INVALID   ErrorCode = "RUBRIC_WEIGHT_INVALID"
	SCORE_TABLE_LOAD_FAILED ErrorCode = "SCORE_TABLE_LOAD_FAILED"
)

// Research error codes
const (
	RESEARCH_PROVIDER_FAILED ErrorCode = "RESEARCH_PROVIDER_FAILED"
)

// Pipeline error codes
const (
	PIPELINE_STAGE_FAILED ErrorCode = "PIPELINE_STAGE_FAILED"
	PIPELINE_CANCELLED    ErrorCode = "PIPELINE_CANCELLED"
)

// StargateError represents a structured error with error code, message, and
// optional cause. It supports error wrapping and retryability hints.
type StargateError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *StargateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
func (e *StargateError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
func (e *StargateError) Is(target error) bool {
	var sgErr *StargateError
	if errors.As(target, &sgErr) {
		return e.Code == sgErr.Code
	}
	return false
}

// NewError creates a new non-retryable StargateError with the given code and message.
func NewError(code ErrorCode, message string) *StargateError {
	return &StargateError{
		Code:    code,
		Message: message,
	}
}

// NewErrorf creates a new non-retryable StargateError with a formatted message.
func NewErrorf(code ErrorCode, format string, args ...any) *StargateError {
	return &StargateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError creates a StargateError wrapping an underlying cause.
func WrapError(code ErrorCode, message string, cause error) *StargateError {
	return &StargateError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err carries the given error code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	var sgErr *StargateError
	for errors.As(err, &sgErr) {
		if sgErr.Code == code {
			return true
		}
		err = sgErr.Cause
		if err == nil {
			return false
		}
	}
	return false
}
