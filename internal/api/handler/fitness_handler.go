package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Bataa715/Audit/internal/dto"
	"github.com/Bataa715/Audit/internal/service"
	"github.com/Bataa715/Audit/pkg/response"
)

// FitnessHandler endpoints of the fitness tool module. Access control
// lives in the service layer; the handler only carries the caller id.
type FitnessHandler struct {
	fitnessSvc service.FitnessService
}

// NewFitnessHandler creates the FitnessHandler.
func NewFitnessHandler(fitnessSvc service.FitnessService) *FitnessHandler {
	return &FitnessHandler{fitnessSvc: fitnessSvc}
}

func (h *FitnessHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrToolForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrWorkoutLogNotFound),
		errors.Is(err, service.ErrBodyStatsNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c)
	}
}

// ListExercises lists the caller's exercises.
// GET /api/v1/fitness/exercises
func (h *FitnessHandler) ListExercises(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	exercises, err := h.fitnessSvc.ListExercises(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, exercises)
}

// CreateExercise adds an exercise.
// POST /api/v1/fitness/exercises
func (h *FitnessHandler) CreateExercise(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	exercise, err := h.fitnessSvc.CreateExercise(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, exercise)
}

// DeleteExercise removes one of the caller's exercises.
// DELETE /api/v1/fitness/exercises/:id
func (h *FitnessHandler) DeleteExercise(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.fitnessSvc.DeleteExercise(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, gin.H{"success": true})
}

// ListWorkoutLogs lists the caller's workout history.
// GET /api/v1/fitness/workout-logs
func (h *FitnessHandler) ListWorkoutLogs(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	logs, err := h.fitnessSvc.ListWorkoutLogs(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, logs)
}

// CreateWorkoutLog records a workout against one of the caller's
// exercises.
// POST /api/v1/fitness/workout-logs
func (h *FitnessHandler) CreateWorkoutLog(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateWorkoutLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	log, err := h.fitnessSvc.CreateWorkoutLog(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, log)
}

// DeleteWorkoutLog removes a workout entry.
// DELETE /api/v1/fitness/workout-logs/:id
func (h *FitnessHandler) DeleteWorkoutLog(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.fitnessSvc.DeleteWorkoutLog(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, gin.H{"success": true})
}

// ListBodyStats lists the caller's measurements.
// GET /api/v1/fitness/body-stats
func (h *FitnessHandler) ListBodyStats(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	stats, err := h.fitnessSvc.ListBodyStats(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, stats)
}

// CreateBodyStats records a measurement.
// POST /api/v1/fitness/body-stats
func (h *FitnessHandler) CreateBodyStats(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBodyStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Хүсэлтийн өгөгдөл буруу байна")
		return
	}

	stats, err := h.fitnessSvc.CreateBodyStats(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, stats)
}

// DeleteBodyStats removes a measurement.
// DELETE /api/v1/fitness/body-stats/:id
func (h *FitnessHandler) DeleteBodyStats(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.fitnessSvc.DeleteBodyStats(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, gin.H{"success": true})
}

// Dashboard aggregates the tool landing page data.
// GET /api/v1/fitness/dashboard
func (h *FitnessHandler) Dashboard(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	dash, err := h.fitnessSvc.Dashboard(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, dash)
}
