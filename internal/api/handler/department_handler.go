package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Bataa715/Audit/internal/dto"
	"github.com/Bataa715/Audit/internal/service"
	"github.com/Bataa715/Audit/pkg/response"
)

// DepartmentHandler department directory endpoints.
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler creates the DepartmentHandler.
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// List returns all departments with nested member projections.
// GET /api/v1/departments
func (h *DepartmentHandler) List(c *gin.Context) {
	depts, err := h.deptSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, depts)
}

// Get returns one department by id.
// GET /api/v1/departments/:id
func (h *DepartmentHandler) Get(c *gin.Context) {
	dept, err := h.deptSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, dept)
}

// GetByName resolves a department by exact name.
// GET /api/v1/departments/name/:name
func (h *DepartmentHandler) GetByName(c *gin.Context) {
	dept, err := h.deptSvc.FindByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, dept)
}

// Create adds a department (admin only).
// POST /api/v1/departments
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	dept, err := h.deptSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDepartmentExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, dept)
}

// Update applies a partial update (admin only).
// PUT /api/v1/departments/:id
func (h *DepartmentHandler) Update(c *gin.Context) {
	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	dept, err := h.deptSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDepartmentNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrDepartmentExists):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, dept)
}

// Delete removes a department (admin only). Refused while members
// still reference it.
// DELETE /api/v1/departments/:id
func (h *DepartmentHandler) Delete(c *gin.Context) {
	if err := h.deptSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrDepartmentNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrDepartmentInUse):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"success": true})
}
