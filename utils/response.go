package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error sends the {"error": ...} shape used by every failing endpoint.
// Details are attached only when provided.
func Error(c *gin.Context, statusCode int, slug string, details interface{}) {
	body := gin.H{"error": slug}
	if details != nil {
		body["details"] = details
	}
	c.JSON(statusCode, body)
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, slug string) {
	Error(c, http.StatusBadRequest, slug, nil)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, slug string) {
	Error(c, http.StatusNotFound, slug, nil)
}

// InternalServerError sends a 500 Internal Server Error response
func InternalServerError(c *gin.Context, slug string, details interface{}) {
	Error(c, http.StatusInternalServerError, slug, details)
}

// RespondError maps an application error onto the wire. Server-side causes
// are surfaced under "details"; client errors only carry the slug.
func RespondError(c *gin.Context, err error) {
	if appErr := GetAppError(err); appErr != nil {
		var details interface{}
		if appErr.Err != nil && appErr.Code >= http.StatusInternalServerError {
			details = appErr.Err.Error()
		}
		Error(c, appErr.Code, appErr.Message, details)
		return
	}
	InternalServerError(c, "server_error", err.Error())
}
