package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Path       string    `json:"path,omitempty"`
	Method     string    `json:"method,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewNotFoundError creates a not found error. Absence of a user, room or
// player is an expected outcome, not an exceptional one.
func NewNotFoundError(code, resource string) *AppError {
	return NewAppError(
		code,
		fmt.Sprintf("%s not found", resource),
		http.StatusNotFound,
		nil,
	)
}

// NewStateConflictError creates a membership precondition error. These are
// always recoverable by the caller choosing a different action.
func NewStateConflictError(code, message string) *AppError {
	return NewAppError(
		code,
		message,
		http.StatusConflict,
		nil,
	)
}

// NewInvalidStateError creates an invalid state transition error (e.g. using
// an item that has already been used)
func NewInvalidStateError(code, message string) *AppError {
	return NewAppError(
		code,
		message,
		http.StatusConflict,
		nil,
	)
}

// NewProgrammingError creates an error that indicates a caller bug rather
// than a user-triggerable condition. It is fatal to the operation and logged.
func NewProgrammingError(message string, err error) *AppError {
	return NewAppError(
		ErrCodeInvalidItem,
		message,
		http.StatusInternalServerError,
		err,
	)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	return NewAppError(
		ErrCodeTokenInvalid,
		message,
		http.StatusUnauthorized,
		nil,
	)
}

// NewValidationError creates a validation error
func NewValidationError(field, message string) *AppError {
	return NewAppError(
		"VALIDATION_ERROR",
		fmt.Sprintf("Validation failed for field '%s': %s", field, message),
		http.StatusBadRequest,
		nil,
	)
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(
		"INTERNAL_ERROR",
		message,
		http.StatusInternalServerError,
		err,
	)
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, err error) *AppError {
	return NewAppError(
		"DATABASE_ERROR",
		fmt.Sprintf("Database operation failed: %s", operation),
		http.StatusInternalServerError,
		err,
	)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err is an AppError carrying the given code
func IsCode(err error, code string) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Code == code
}

// Error codes for different categories of errors
const (
	ErrCodeTokenInvalid = "TOKEN_INVALID"
	ErrCodeTokenMissing = "TOKEN_MISSING"

	ErrCodeUserNotFound   = "USER_NOT_FOUND"
	ErrCodeRoomNotFound   = "ROOM_NOT_FOUND"
	ErrCodePlayerNotFound = "PLAYER_NOT_FOUND"

	ErrCodeAlreadyHosting = "ALREADY_HOSTING"
	ErrCodeAlreadyMember  = "ALREADY_MEMBER"
	ErrCodeHostConflict   = "HOST_CONFLICT"
	ErrCodeAlreadyInGame  = "ALREADY_IN_GAME"
	ErrCodeNotInRoom      = "NOT_IN_ROOM"
	ErrCodeNotAMember     = "NOT_A_MEMBER"
	ErrCodeGameInProgress = "GAME_IN_PROGRESS"
	ErrCodeGameNotStarted = "GAME_NOT_STARTED"

	ErrCodeItemAlreadyUsed = "ITEM_ALREADY_USED"
	ErrCodeNoItemHeld      = "NO_ITEM_HELD"
	ErrCodeInvalidItem     = "INVALID_ITEM"
	ErrCodeInvalidRole     = "INVALID_ROLE"

	ErrCodeRequiredField = "REQUIRED_FIELD"
	ErrCodeInvalidFormat = "INVALID_FORMAT"

	ErrCodeDatabaseConnection   = "DATABASE_CONNECTION_ERROR"
	ErrCodeDatabaseQuery        = "DATABASE_QUERY_ERROR"
	ErrCodeIdentityServiceError = "IDENTITY_SERVICE_ERROR"
)
