package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error with the HTTP status it maps to.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrBadRequest     = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized   = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrNotFound       = New(http.StatusNotFound, "Not found", nil)
	ErrConflict       = New(http.StatusConflict, "Conflict", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Storefront flow errors. The messages are part of the contract consumed by
// the web client and must not be reworded.
var (
	ErrShippingIncomplete = New(http.StatusBadRequest, "Please fill all shipping details.", nil)
	ErrInvalidOTP         = New(http.StatusUnauthorized, "Invalid or expired OTP.", nil)
	ErrResendOTP          = New(http.StatusTooManyRequests, "Failed to resend OTP.", nil)
	ErrLoginFailed        = New(http.StatusInternalServerError, "Login failed, try again.", nil)
	ErrSignupFailed       = New(http.StatusInternalServerError, "Signup failed, try again", nil)
)

// From converts any error into an *Error, wrapping unknown errors as an
// internal server error.
func From(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return New(http.StatusInternalServerError, "Internal server error", err)
}

// ErrorMiddleware converts errors attached to the gin context into a JSON
// {code, message} response.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			appErr := From(c.Errors.Last().Err)
			c.JSON(appErr.Code, appErr)
			c.Abort()
		}
	}
}
