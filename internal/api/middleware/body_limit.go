package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bataa715/Audit/pkg/response"
)

// BodyLimit rejects request bodies above maxBytes.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, http.StatusRequestEntityTooLarge,
					"Хүсэлтийн хэмжээ хэтэрсэн байна")
				return
			}
		}
	}
}
