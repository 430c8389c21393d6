package handlers

import (
	"net/http"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/middleware"
	"medibook/models"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the dashboard views over appointments.
type AppointmentHandler struct {
	appointments appointmentRepo.AppointmentRepository
	logger       *zap.Logger
}

func NewAppointmentHandler(appointments appointmentRepo.AppointmentRepository, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, logger: logger}
}

// ListMine returns the calling patient's appointments.
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	appts, err := h.appointments.ListByPatient(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		h.logger.Error("failed to list appointments", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListForDoctor returns the calling doctor's appointments.
func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	appts, err := h.appointments.ListByDoctor(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		h.logger.Error("failed to list appointments", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// UpdateStatus moves an appointment through its lifecycle. Canceling an
// appointment voids it but does not reopen the consumed slot.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	switch input.Status {
	case models.AppointmentInProgress, models.AppointmentCompleted, models.AppointmentCanceled:
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid status", input.Status)
		return
	}

	if err := h.appointments.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		utils.JSONError(c, http.StatusNotFound, "appointment not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}
