// utils/errors.go
package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorKind int

const (
	ErrNotFound ErrorKind = iota + 1
	ErrConflict
	ErrValidation
)

// AppError is the error shape the services layer returns to controllers.
// Controllers translate the kind into an HTTP status; anything that is not
// an AppError surfaces as a generic 500.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NotFoundError(message string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: message}
}

func ConflictError(message string) *AppError {
	return &AppError{Kind: ErrConflict, Message: message}
}

func ValidationError(message string) *AppError {
	return &AppError{Kind: ErrValidation, Message: message}
}

func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RespondAppError maps a services-layer error onto the HTTP response.
func RespondAppError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case ErrNotFound:
			RespondWithError(c, http.StatusNotFound, appErr.Message)
		case ErrConflict:
			RespondWithError(c, http.StatusConflict, appErr.Message)
		case ErrValidation:
			RespondWithError(c, http.StatusBadRequest, appErr.Message)
		default:
			RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	log.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	RespondWithError(c, http.StatusInternalServerError, "Internal server error")
}
