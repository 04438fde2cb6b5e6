package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Bataa715/Audit/internal/repository"
	"github.com/Bataa715/Audit/pkg/jwt"
	"github.com/Bataa715/Audit/pkg/response"
)

// Context keys set by JWTAuth.
const (
	CtxUserID         = "id"      // internal user id
	CtxEmail          = "email"
	CtxBusinessUserID = "user_id" // business user id
)

// JWTAuth validates the Authorization: Bearer <token> header and
// injects the token claims into the request context.
func JWTAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Нэвтрэх шаардлагатай")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Нэвтрэх шаардлагатай")
			c.Abort()
			return
		}

		claims, err := jwtMgr.Parse(parts[1])
		if err != nil {
			response.Unauthorized(c, "Токен хүчингүй эсвэл хугацаа нь дууссан байна")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.ID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxBusinessUserID, claims.UserID)

		c.Next()
	}
}

// AdminOnly re-checks the admin flag against the database on every
// request, so a demoted admin loses access without waiting for the
// token to expire. Must run after JWTAuth.
func AdminOnly(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetString(CtxUserID)
		if id == "" {
			response.Unauthorized(c, "Нэвтрэх шаардлагатай")
			c.Abort()
			return
		}

		user, err := repo.User.GetByID(c.Request.Context(), id)
		if err != nil || !user.IsAdmin || !user.IsActive {
			response.Forbidden(c, "Админ эрх шаардлагатай")
			c.Abort()
			return
		}

		c.Next()
	}
}
