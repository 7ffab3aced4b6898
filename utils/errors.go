package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds carried by AppError. Two kinds may share an HTTP status, so
// classification goes by kind rather than code.
const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
	KindSignature  = "signature"
	KindGateway    = "gateway"
	KindDevice     = "device"
)

// AppError represents an application error
type AppError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code int, kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// ValidationError creates a 400 error for bad client input
func ValidationError(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, KindValidation, message, err)
}

// NotFoundError creates a 404 error for an unknown order id
func NotFoundError(message string, err error) *AppError {
	return NewAppError(http.StatusNotFound, KindNotFound, message, err)
}

// SignatureError creates a 400 error for a failed webhook signature check
func SignatureError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, KindSignature, message, nil)
}

// GatewayError creates a 500 error for an upstream payment provider failure
func GatewayError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, KindGateway, message, err)
}

// DeviceError creates a 500 error for an unreachable or failing device
func DeviceError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, KindDevice, message, err)
}

// GetAppError returns the AppError if err is or wraps one
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFoundError checks if an error is a "not found" error
func IsNotFoundError(err error) bool {
	return hasKind(err, KindNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasKind(err, KindValidation)
}

// IsSignatureError checks if an error is a webhook signature error
func IsSignatureError(err error) bool {
	return hasKind(err, KindSignature)
}

// IsGatewayError checks if an error is an upstream gateway error
func IsGatewayError(err error) bool {
	return hasKind(err, KindGateway)
}

// IsDeviceError checks if an error is a device error
func IsDeviceError(err error) bool {
	return hasKind(err, KindDevice)
}

func hasKind(err error, kind string) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Kind == kind
	}
	return false
}
