package errors

import (
	stderrors "errors"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"

	// ConfigError represents an invalid or incomplete service configuration.
	ConfigError ErrorCode = "config_error"

	// UpstreamStatusError represents a non-2xx response from the CLOB API.
	UpstreamStatusError ErrorCode = "upstream_status_error"
	// UpstreamUnreachableError represents a transport failure or timeout reaching the CLOB API.
	UpstreamUnreachableError ErrorCode = "upstream_unreachable"
	// UpstreamParseError represents an unexpected response shape from the CLOB API.
	UpstreamParseError ErrorCode = "upstream_parse_error"
)

// ErrorDetails represents detailed information about an error.
type ErrorDetails struct {
	// Message (required) is the user-defined error message.
	// E.g. "clob responded with status 503".
	Message string

	// Code (required) is the user-defined error code string.
	// E.g. "upstream_status_error".
	Code string

	// Field (optional) is the related field the error occurred on, if any.
	Field string
}

// NewErrorDetails creates a new ErrorDetails struct with the given parameters.
func NewErrorDetails(message string, code ErrorCode, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    string(code),
		Field:   field,
	}
}

// Error is used to implement the Golang `error` interface.
func (e *ErrorDetails) Error() string {
	return e.Message
}

// ErrorCodeEquals checks whether a given `error` carries a specific code
// anywhere in its unwrap chain.
func ErrorCodeEquals(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// CodeOf returns the ErrorCode carried by err or any error it wraps.
// Returns the empty code when no ErrorDetails is found in the chain.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if details, ok := err.(*ErrorDetails); ok {
			return ErrorCode(details.Code)
		}
		err = stderrors.Unwrap(err)
	}
	return ""
}
