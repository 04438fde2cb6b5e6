package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Bataa715/Audit/internal/dto"
	"github.com/Bataa715/Audit/internal/service"
	"github.com/Bataa715/Audit/pkg/response"
)

// UserHandler admin-side directory endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates the UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List returns the full directory.
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, users)
}

// Get returns one directory entry.
// GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userSvc.Get(c.Request.Context(), c.Param("id"))
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

// Update applies a partial update.
// PUT /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrDepartmentNotFound):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user)
}

// Delete removes a user together with their tool data.
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"success": true})
}

// UpdateStatus enables or disables an account.
// PUT /api/v1/users/:id/status
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	user, err := h.userSvc.UpdateStatus(c.Request.Context(), c.Param("id"), *req.IsActive)
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

// UpdateTools replaces the capability list.
// PUT /api/v1/users/:id/tools
func (h *UserHandler) UpdateTools(c *gin.Context) {
	var req dto.UpdateToolsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	user, err := h.userSvc.UpdateTools(c.Request.Context(), c.Param("id"), req.AllowedTools)
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

// Import bulk-registers users from an uploaded .xlsx file.
// POST /api/v1/users/import
func (h *UserHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Файл олдсонгүй")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Файлыг нээж чадсангүй")
		return
	}
	defer file.Close()

	result, err := h.userSvc.Import(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, service.ErrImportEmpty) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Export streams the whole directory as an .xlsx workbook.
// GET /api/v1/export/users
func (h *UserHandler) Export(c *gin.Context) {
	buf, filename, err := h.userSvc.Export(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
