package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON body of handled error responses, e.g. {"error":"Author not found"}.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes data as the bare response body, no envelope.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Text writes a plain text body.
func Text(c *gin.Context, statusCode int, body string) {
	c.String(statusCode, body)
}

// ErrorResponse aborts the chain with an ErrorBody.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

// InternalServerError aborts with a bare 500 and no body.
func InternalServerError(c *gin.Context) {
	c.AbortWithStatus(http.StatusInternalServerError)
}
