package common

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "validation"
	ErrorTypeNotFound       ErrorType = "not_found"
	ErrorTypePermission     ErrorType = "permission"
	ErrorTypeStorage        ErrorType = "storage"
	ErrorTypeMalformedEvent ErrorType = "malformed_event"
	ErrorTypeRateLimit      ErrorType = "rate_limit"
)

// AppError carries a category and a stable code next to the human message.
type AppError struct {
	Type     ErrorType
	Code     string
	Message  string
	Internal error
	Source   string
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// Is matches on Type and Code so predefined errors work with errors.Is.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

func (e *AppError) LogFields() []zap.Field {
	fields := []zap.Field{
		zap.String("error_type", string(e.Type)),
		zap.String("error_code", e.Code),
		zap.String("error_message", e.Message),
		zap.String("source", e.Source),
	}
	if e.Internal != nil {
		fields = append(fields, zap.NamedError("internal_error", e.Internal))
	}
	return fields
}

func NewError(errorType ErrorType, code, message string) *AppError {
	_, file, line, _ := runtime.Caller(1)
	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Source:  fmt.Sprintf("%s:%d", file, line),
	}
}

func WrapError(err error, errorType ErrorType, code, message string) *AppError {
	_, file, line, _ := runtime.Caller(1)
	return &AppError{
		Type:     errorType,
		Code:     code,
		Message:  message,
		Internal: err,
		Source:   fmt.Sprintf("%s:%d", file, line),
	}
}

// ErrorTypeOf returns the category of err, or "" for foreign errors.
func ErrorTypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

func IsErrorType(err error, errorType ErrorType) bool {
	return err != nil && ErrorTypeOf(err) == errorType
}

// LogError writes err at a level matching its category.
func LogError(logger *zap.Logger, msg string, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		logger.Error(msg, zap.Error(err))
		return
	}

	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypePermission, ErrorTypeMalformedEvent, ErrorTypeRateLimit:
		logger.Warn(msg, appErr.LogFields()...)
	default:
		logger.Error(msg, appErr.LogFields()...)
	}
}

var (
	ErrProfileNotFound     = NewError(ErrorTypeNotFound, "PROFILE_NOT_FOUND", "user profile not found")
	ErrNoActiveProfile     = NewError(ErrorTypeNotFound, "NO_ACTIVE_PROFILE", "no active user profile")
	ErrUsernameTaken       = NewError(ErrorTypeValidation, "USERNAME_TAKEN", "username already exists")
	ErrReadingNotFound     = NewError(ErrorTypeNotFound, "READING_NOT_FOUND", "glucose reading not found")
	ErrMedicationNotFound  = NewError(ErrorTypeNotFound, "MEDICATION_NOT_FOUND", "medication not found")
	ErrScheduleNotFound    = NewError(ErrorTypeNotFound, "SCHEDULE_NOT_FOUND", "medication schedule not found")
	ErrLogNotFound         = NewError(ErrorTypeNotFound, "LOG_NOT_FOUND", "medication log not found")
	ErrDuplicateTime       = NewError(ErrorTypeValidation, "DUPLICATE_TIME", "schedule times must be distinct")
	ErrInvalidReading      = NewError(ErrorTypeValidation, "INVALID_READING", "invalid glucose reading")
	ErrNotificationsDenied = NewError(ErrorTypePermission, "NOTIFICATIONS_DENIED", "notification permission not granted")
	ErrExactAlarmsDenied   = NewError(ErrorTypePermission, "EXACT_ALARMS_DENIED", "exact alarm permission not granted")
	ErrMalformedEvent      = NewError(ErrorTypeMalformedEvent, "MALFORMED_EVENT", "event is missing required fields")
	ErrUnknownEvent        = NewError(ErrorTypeMalformedEvent, "UNKNOWN_EVENT", "unknown event action")
	ErrQueueClosed         = NewError(ErrorTypeStorage, "QUEUE_CLOSED", "event queue is not running")
	ErrRateLimited         = NewError(ErrorTypeRateLimit, "RATE_LIMITED", "rate limit exceeded")
)

// StorageError wraps an underlying store failure.
func StorageError(err error, message string) *AppError {
	return WrapError(err, ErrorTypeStorage, "STORE_FAILED", message)
}

// WithMessage copies a predefined error with a more specific message.
func WithMessage(base *AppError, message string) *AppError {
	_, file, line, _ := runtime.Caller(1)
	return &AppError{
		Type:    base.Type,
		Code:    base.Code,
		Message: message,
		Source:  fmt.Sprintf("%s:%d", file, line),
	}
}
