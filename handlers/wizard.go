package handlers

import (
	"errors"
	"net/http"

	"medibook/services/wizard"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the consultation booking flow.
type WizardHandler struct {
	svc    wizard.WizardService
	logger *zap.Logger
}

func NewWizardHandler(svc wizard.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{svc: svc, logger: logger}
}

// StartSession opens a new wizard session. An optional doctorId deep-links
// straight to the schedule step.
func (h *WizardHandler) StartSession(c *gin.Context) {
	var input struct {
		DoctorID string `json:"doctorId"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}

	sess, err := h.svc.StartSession(c.Request.Context(), c.GetString("userID"), input.DoctorID)
	if err != nil {
		h.logger.Error("failed to start wizard session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": sess})
}

func (h *WizardHandler) SelectSpecialty(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		SpecialtyID string `json:"specialtyId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, doctors, err := h.svc.SelectSpecialty(c.Request.Context(), sessionID, input.SpecialtyID)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": sess, "doctors": doctors})
}

func (h *WizardHandler) SelectDoctor(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		DoctorID string `json:"doctorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, err := h.svc.SelectDoctor(c.Request.Context(), sessionID, input.DoctorID)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": sess})
}

func (h *WizardHandler) SelectSchedule(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		ScheduleID string `json:"scheduleId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, err := h.svc.SelectSchedule(c.Request.Context(), sessionID, input.ScheduleID)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": sess})
}

func (h *WizardHandler) Back(c *gin.Context) {
	sess, err := h.svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

func (h *WizardHandler) GetSession(c *gin.Context) {
	sess, err := h.svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

func (h *WizardHandler) CancelSession(c *gin.Context) {
	if err := h.svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"canceled": true})
}

func (h *WizardHandler) respondWizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, wizard.ErrInvalidTransition), errors.Is(err, wizard.ErrAtFirstStep):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, wizard.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, "slot is no longer available", "")
	default:
		h.logger.Error("wizard operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking flow error", err.Error())
	}
}
