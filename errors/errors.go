package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure class the front desk reports to the operator.
type ErrorCode string

const (
	// Room errors
	ErrCodeRoomInvalid  ErrorCode = "ROOM_INVALID"
	ErrCodeRoomOccupied ErrorCode = "ROOM_OCCUPIED"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"

	// Record errors
	ErrCodeInvalidField  ErrorCode = "INVALID_FIELD"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"

	// Storage errors
	ErrCodeCorruptData ErrorCode = "CORRUPT_DATA"
	ErrCodeDBError     ErrorCode = "DB_ERROR"

	// Validation errors
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

var (
	ErrRoomInvalid   = errors.New("room number out of range")
	ErrRoomOccupied  = errors.New("room is occupied")
	ErrNotFound      = errors.New("room is vacant")
	ErrCorruptData   = errors.New("corrupt record data")
	ErrInvalidField  = errors.New("invalid field")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrValidation    = errors.New("validation failed")
)

var sentinelCodes = map[error]ErrorCode{
	ErrRoomInvalid:   ErrCodeRoomInvalid,
	ErrRoomOccupied:  ErrCodeRoomOccupied,
	ErrNotFound:      ErrCodeNotFound,
	ErrCorruptData:   ErrCodeCorruptData,
	ErrInvalidField:  ErrCodeInvalidField,
	ErrInvalidAmount: ErrCodeInvalidAmount,
	ErrValidation:    ErrCodeValidation,
}

// AppError carries a code, an operator-facing message and the cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap attaches the code that belongs to sentinel and a message to it.
func Wrap(sentinel error, format string, args ...interface{}) *AppError {
	return NewAppError(codeOf(sentinel), fmt.Sprintf(format, args...), sentinel)
}

// GetAppError returns the first AppError in err's chain.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Code returns the code of err, or "" for nil.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return codeOf(err)
}

// Message returns the operator-facing message of err.
func Message(err error) string {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}

func codeOf(err error) ErrorCode {
	for sentinel, code := range sentinelCodes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ErrCodeUnknown
}
