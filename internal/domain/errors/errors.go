package errors

import (
	"net/http"

	"plaza/internal/errors"
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
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	// Geocoding and distance errors
	ErrGeocodingFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"GEOCODING_FAILED",
		"Could not resolve the address to coordinates",
		"",
	)

	ErrLocationUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"LOCATION_UNAVAILABLE",
		"No location on record for this entry",
		"",
	)

	// Request-related errors
	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"Service request not found",
		"",
	)

	ErrRequestClosed = NewBaseError(
		http.StatusConflict,
		"REQUEST_CLOSED",
		"This service request has been closed",
		"",
	)

	ErrRequestOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"REQUEST_OWNERSHIP_VIOLATION",
		"You do not have access to this service request",
		"",
	)

	// Conversation and messaging errors
	ErrConversationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONVERSATION_NOT_FOUND",
		"Conversation not found",
		"",
	)

	ErrConversationAccessDenied = NewBaseError(
		http.StatusForbidden,
		"CONVERSATION_ACCESS_DENIED",
		"You are not a participant of this conversation",
		"",
	)

	ErrMessageEmpty = NewBaseError(
		http.StatusBadRequest,
		"MESSAGE_EMPTY",
		"Message text must not be empty",
		"",
	)

	// Quotation-related errors
	ErrQuotationPriceInvalid = NewBaseError(
		http.StatusBadRequest,
		"QUOTATION_PRICE_INVALID",
		"Quotation price must be greater than zero and at most 10,000,000",
		"",
	)

	ErrQuotationWholesalePrice = NewBaseError(
		http.StatusBadRequest,
		"QUOTATION_WHOLESALE_PRICE",
		"Wholesale quotations require a positive wholesale price",
		"",
	)

	ErrQuotationNegotiablePrice = NewBaseError(
		http.StatusBadRequest,
		"QUOTATION_NEGOTIABLE_PRICE",
		"Negotiable price must be positive when provided",
		"",
	)

	ErrQuotationTooManyImages = NewBaseError(
		http.StatusBadRequest,
		"QUOTATION_TOO_MANY_IMAGES",
		"A quotation may carry at most five images",
		"",
	)

	// Upload-related errors
	ErrUploadInvalidType = NewBaseError(
		http.StatusBadRequest,
		"UPLOAD_INVALID_TYPE",
		"Only image files may be uploaded",
		"",
	)

	ErrUploadTooLarge = NewBaseError(
		http.StatusBadRequest,
		"UPLOAD_TOO_LARGE",
		"Uploaded file exceeds the size limit",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Failed to store the uploaded file",
		"",
	)

	// Listing and provider errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Listing not found",
		"",
	)

	ErrListingNotPublic = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_PUBLIC",
		"Listing not found",
		"",
	)

	ErrProviderNotFound = NewBaseError(
		http.StatusNotFound,
		"PROVIDER_NOT_FOUND",
		"Service provider not found",
		"",
	)

	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"Event not found",
		"",
	)

	ErrApprovalStatusInvalid = NewBaseError(
		http.StatusBadRequest,
		"APPROVAL_STATUS_INVALID",
		"Approval status must be pending, approved or rejected",
		"",
	)

	// Review-related errors
	ErrReviewRatingInvalid = NewBaseError(
		http.StatusBadRequest,
		"REVIEW_RATING_INVALID",
		"Rating must be between 1 and 5",
		"",
	)

	ErrReviewSubjectInvalid = NewBaseError(
		http.StatusBadRequest,
		"REVIEW_SUBJECT_INVALID",
		"Review subject must be a listing or a service provider",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
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
