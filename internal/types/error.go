package types

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error type labels carried in responses.
const (
	ErrTypeValidation = "validation"
	ErrTypeNotFound   = "not_found"
	ErrTypeConflict   = "conflict"
	ErrTypeInternal   = "internal"
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// ValidationError reports bad or missing input.
func ValidationError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusBadRequest, Message: message, Type: ErrTypeValidation}
}

// NotFoundError reports an unknown id, including wrong-owner lookups
// which are deliberately indistinguishable from absence.
func NotFoundError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusNotFound, Message: message, Type: ErrTypeNotFound}
}

// ConflictError reports a lost reservation race or duplicate resource.
func ConflictError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusConflict, Message: message, Type: ErrTypeConflict}
}

// InternalError wraps an unclassified persistence or I/O failure.
func InternalError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusInternalServerError, Message: message, Type: ErrTypeInternal}
}

// AsCustomError unwraps err to a *CustomError if one is in the chain.
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
