package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Bataa715/Audit/internal/api/middleware"
	"github.com/Bataa715/Audit/pkg/response"
)

// MustGetUserID extracts the internal user id injected by the JWT
// middleware. On ok=false a 401 has already been written and the
// caller should return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, "Нэвтрэх шаардлагатай")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "Нэвтрэх шаардлагатай")
		return "", false
	}
	return s, true
}
