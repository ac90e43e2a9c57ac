package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response represents a standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Detail  string      `json:"detail,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// JSON sends a body as is, for endpoints that define their own envelope
func JSON(c *gin.Context, code int, body interface{}) {
	c.JSON(code, body)
}

// Error sends an error response. The first non-nil error becomes the detail.
func Error(c *gin.Context, code int, message string, errs ...error) {
	resp := Response{
		Code:    code,
		Message: message,
	}
	for _, err := range errs {
		if err != nil {
			resp.Detail = err.Error()
			break
		}
	}
	c.AbortWithStatusJSON(code, resp)
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string, errs ...error) {
	Error(c, http.StatusBadRequest, message, errs...)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 not found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string, errs ...error) {
	Error(c, http.StatusInternalServerError, message, errs...)
}
