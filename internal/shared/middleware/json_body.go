package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"bookshelf-api/internal/shared/response"
)

// JSONBodyKey is the context key holding the decoded request body.
const JSONBodyKey = "json_body"

// JSONBody decodes application/json request bodies up to limit bytes.
// The raw bytes stay cached on the context, so handlers can still bind with ShouldBindBodyWith.
// An empty body passes through untouched; malformed JSON is rejected with 400, oversized bodies with 413.
func JSONBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.ContentLength == 0 || c.ContentType() != binding.MIMEJSON {
			c.Next()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

		var body any
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.Is(err, io.EOF):
				// unknown length (chunked) but nothing sent
				c.Next()
			case errors.As(err, &tooLarge):
				response.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Request body too large")
			default:
				response.BadRequest(c, "Invalid JSON body")
			}
			return
		}
		c.Set(JSONBodyKey, body)

		c.Next()
	}
}
