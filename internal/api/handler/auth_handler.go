package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Bataa715/Audit/internal/dto"
	"github.com/Bataa715/Audit/internal/service"
	"github.com/Bataa715/Audit/pkg/response"
)

// AuthHandler authentication and public directory endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Signup creates a fully-credentialed user (admin only).
// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	resp, err := h.authSvc.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserIDTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, resp)
}

// Register records a passwordless pre-registration.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	resp, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserIDTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, resp)
}

// SetPassword completes a pending registration.
// POST /api/v1/auth/set-password
func (h *AuthHandler) SetPassword(c *gin.Context) {
	var req dto.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	resp, err := h.authSvc.SetPassword(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrPasswordAlreadySet):
			response.Conflict(c, err.Error())
		case errors.Is(err, service.ErrWeakPassword):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, resp)
}

// CheckUser reports registration state for a business user ID.
// POST /api/v1/auth/check-user
func (h *AuthHandler) CheckUser(c *gin.Context) {
	var req dto.CheckUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	resp, err := h.authSvc.CheckUser(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}

// Login authenticates by department and display name.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.writeLoginError(c, err)
		return
	}

	response.OK(c, resp)
}

// LoginByID authenticates by business user ID.
// POST /api/v1/auth/login-by-id
func (h *AuthHandler) LoginByID(c *gin.Context) {
	var req dto.LoginByIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	resp, err := h.authSvc.LoginByID(c.Request.Context(), &req)
	if err != nil {
		h.writeLoginError(c, err)
		return
	}

	response.OK(c, resp)
}

// AdminLogin authenticates an administrator.
// POST /api/v1/auth/admin-login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	resp, err := h.authSvc.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		h.writeLoginError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *AuthHandler) writeLoginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserInactive),
		errors.Is(err, service.ErrDepartmentNotFound):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c)
	}
}

// UserIDPrefix previews the ID prefix of a department.
// GET /api/v1/auth/user-id-prefix/:department
func (h *AuthHandler) UserIDPrefix(c *gin.Context) {
	prefix := h.authSvc.UserIDPrefix(c.Param("department"))
	response.OK(c, dto.PrefixResponse{Prefix: prefix})
}

// Search finds active users by partial ID or name.
// GET /api/v1/auth/search?q=
func (h *AuthHandler) Search(c *gin.Context) {
	results, err := h.authSvc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, results)
}

// UsersByDepartment lists active members of a department by name.
// GET /api/v1/auth/departments/:department/users
func (h *AuthHandler) UsersByDepartment(c *gin.Context) {
	users, err := h.authSvc.UsersByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, users)
}

// Me returns a fresh projection of the token holder.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.CurrentUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}
