package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`

	cause error
}

func (e *Err) Error() string {
	return e.Message
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    err.Error(),
	}
}

func ErrUnauthorized(message string) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("%v with %v %v not found", resource, key, value),
	}
}

// ErrInternalServerError hides the cause from the client; RenderErr still
// logs it.
func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal server error",
		cause:      err,
	}
}

// RenderErr writes the error response. Internal errors are logged here so
// handlers never have to.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", ctx.FullPath()),
			zap.Error(err.cause),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
