package errors

import (
	"fmt"
	"net/http"
	"strings"

	"yatai/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Identity-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrIdentityTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_TOKEN_INVALID",
		"Invalid or expired LINE ID token",
		"",
	)

	ErrRoleMismatch = NewBaseError(
		http.StatusBadRequest,
		"ROLE_MISMATCH",
		"Account is registered under a different role; re-registration is required to switch roles",
		"",
	)

	// Profile / verification errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrVerificationAlreadyPending = NewBaseError(
		http.StatusConflict,
		"VERIFICATION_ALREADY_PENDING",
		"Verification is already under review",
		"",
	)

	ErrVerificationNotPending = NewBaseError(
		http.StatusConflict,
		"VERIFICATION_NOT_PENDING",
		"Profile has no pending verification to decide",
		"",
	)

	ErrProfileAlreadyVerified = NewBaseError(
		http.StatusConflict,
		"PROFILE_ALREADY_VERIFIED",
		"Profile is already verified",
		"",
	)

	// Event-related errors
	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"Event not found",
		"",
	)

	ErrEventNotDraft = NewBaseError(
		http.StatusConflict,
		"EVENT_NOT_DRAFT",
		"Only draft events can be published",
		"",
	)

	ErrEventNotPublished = NewBaseError(
		http.StatusConflict,
		"EVENT_NOT_PUBLISHED",
		"Event is not published",
		"",
	)

	ErrEventNotEditable = NewBaseError(
		http.StatusConflict,
		"EVENT_NOT_EDITABLE",
		"Cancelled and completed events can no longer be edited",
		"",
	)

	// Application / eligibility errors
	ErrApplicationNotFound = NewBaseError(
		http.StatusNotFound,
		"APPLICATION_NOT_FOUND",
		"Application not found",
		"",
	)

	ErrEventNotAcceptingApplications = NewBaseError(
		http.StatusConflict,
		"EVENT_NOT_ACCEPTING_APPLICATIONS",
		"Event is not accepting applications",
		"",
	)

	ErrApplicationDeadlinePassed = NewBaseError(
		http.StatusConflict,
		"APPLICATION_DEADLINE_PASSED",
		"The application deadline has passed",
		"",
	)

	ErrAlreadyApplied = NewBaseError(
		http.StatusConflict,
		"ALREADY_APPLIED",
		"Store has already applied to this event",
		"",
	)

	ErrApplicationAlreadyDecided = NewBaseError(
		http.StatusConflict,
		"APPLICATION_ALREADY_DECIDED",
		"Application has already been decided",
		"",
	)

	// Document / upload errors
	ErrDocumentNotFound = NewBaseError(
		http.StatusNotFound,
		"DOCUMENT_NOT_FOUND",
		"Document not found",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FILE_TOO_LARGE",
		"File exceeds the maximum allowed size",
		"",
	)

	ErrUnsupportedFileType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_FILE_TYPE",
		"File type is not allowed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// MissingDocumentsError is a validation error raised when a profile is
// submitted for verification without every required document type present.
// It keeps the missing type names so callers can surface them individually.
type MissingDocumentsError struct {
	Missing []string
}

// NewMissingDocumentsError creates an error naming the missing document types
func NewMissingDocumentsError(missing []string) *MissingDocumentsError {
	return &MissingDocumentsError{Missing: missing}
}

// Error implements the error interface
func (e *MissingDocumentsError) Error() string {
	return "missing required documents: " + strings.Join(e.Missing, ", ")
}

// HTTPCode returns the HTTP status code
func (e *MissingDocumentsError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *MissingDocumentsError) ErrorCode() string {
	return "MISSING_REQUIRED_DOCUMENTS"
}

// Message returns the user-friendly error message
func (e *MissingDocumentsError) Message() string {
	return "Required documents have not been uploaded"
}

// Details returns detailed error information
func (e *MissingDocumentsError) Details() string {
	return strings.Join(e.Missing, ", ")
}

// MissingFieldsError is a validation error raised when an operation requires
// fields the entity does not have populated, e.g. publishing an event
// without a title.
type MissingFieldsError struct {
	Fields []string
}

// NewMissingFieldsError creates an error naming the missing fields
func NewMissingFieldsError(fields []string) *MissingFieldsError {
	return &MissingFieldsError{Fields: fields}
}

// Error implements the error interface
func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// HTTPCode returns the HTTP status code
func (e *MissingFieldsError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *MissingFieldsError) ErrorCode() string {
	return "MISSING_REQUIRED_FIELDS"
}

// Message returns the user-friendly error message
func (e *MissingFieldsError) Message() string {
	return "Required fields are not populated"
}

// Details returns detailed error information
func (e *MissingFieldsError) Details() string {
	return strings.Join(e.Fields, ", ")
}

// ServiceUnavailableError wraps a failure to reach an external collaborator
// (document classifier, identity provider, blob store). It carries the
// upstream error so the retry affordance can show what went wrong.
type ServiceUnavailableError struct {
	service string
	err     error
}

// NewServiceUnavailableError creates a service-unreachable error
func NewServiceUnavailableError(service string, err error) AppError {
	return &ServiceUnavailableError{
		service: service,
		err:     err,
	}
}

// Error implements the error interface
func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.service, e.err)
}

// Unwrap exposes the upstream error for errors.Is/As chains
func (e *ServiceUnavailableError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *ServiceUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *ServiceUnavailableError) ErrorCode() string {
	return "SERVICE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *ServiceUnavailableError) Message() string {
	return fmt.Sprintf("The %s is temporarily unavailable; please retry", e.service)
}

// Details returns detailed error information
func (e *ServiceUnavailableError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}

// DatabaseExecuteError represents a record store read/write failure,
// implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the upstream error for errors.Is/As chains
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
