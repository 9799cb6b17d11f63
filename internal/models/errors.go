package models

import (
	"errors"
	"fmt"
)

// Error type tags carried by APIError. Callers branch on these to decide
// between fallback content, inline validation messages, and retry prompts.
const (
	ErrTypeNotFound       = "NotFoundError"
	ErrTypeInvalidRequest = "InvalidRequestError"
	ErrTypeFetchList      = "FetchListError"
	ErrTypeSearch         = "SearchError"
	ErrTypeFetchComments  = "FetchCommentsError"
	ErrTypeFetchChannel   = "FetchChannelError"
	ErrTypeFetchRelated   = "FetchRelatedError"
	ErrTypePostComment    = "PostCommentError"
	ErrTypeSuggestions    = "FetchSuggestionsError"
	ErrTypeCommentContent = "InvalidCommentContent"
)

// Sentinel errors
var (
	ErrStateNotFound = errors.New("state not found")
	ErrStateCorrupt  = errors.New("state data is corrupt")
)

// APIError is the error shape returned by every mock service operation.
// It mirrors an HTTP-style failure: message, numeric status code, and a
// machine-readable type tag.
type APIError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Type       string `json:"type"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.Type, e.Message)
}

// NewAPIError creates a service error with an explicit status and type tag.
func NewAPIError(message string, statusCode int, errType string) *APIError {
	return &APIError{Message: message, StatusCode: statusCode, Type: errType}
}

// NewNotFoundError creates a 404 error for an absent resource.
func NewNotFoundError(message string) *APIError {
	if message == "" {
		message = "resource not found"
	}
	return &APIError{Message: message, StatusCode: 404, Type: ErrTypeNotFound}
}

// NewInvalidRequestError creates a 400 error for bad caller input.
func NewInvalidRequestError(message string) *APIError {
	if message == "" {
		message = "invalid request"
	}
	return &APIError{Message: message, StatusCode: 400, Type: ErrTypeInvalidRequest}
}

// IsNotFound reports whether err is a not-found API error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Type == ErrTypeNotFound
}

// IsInvalidRequest reports whether err is an invalid-request API error.
func IsInvalidRequest(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Type == ErrTypeInvalidRequest
}

// IsServerError reports whether err is a generic 5xx service failure,
// the class that gets a retry affordance in the UI.
func IsServerError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 500
}
