package handlers

import (
	"errors"
	"net/http"

	"medibook/middleware"
	"medibook/services/booking"
	"medibook/services/wizard"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler finalizes a wizard session into an appointment and a payment
// handoff.
type BookingHandler struct {
	wizardSvc wizard.WizardService
	submitSvc booking.SubmissionService
	logger    *zap.Logger
}

func NewBookingHandler(wizardSvc wizard.WizardService, submitSvc booking.SubmissionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{wizardSvc: wizardSvc, submitSvc: submitSvc, logger: logger}
}

// ConfirmBooking submits the session at the confirm step. Auth is optional at
// the route level so the submission service can express the full precondition
// chain: unresolved auth defers, missing auth redirects to login, and a
// non-patient role redirects to its own dashboard.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")

	sess, err := h.wizardSvc.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking session", err.Error())
		return
	}

	actor := actorFromContext(c)
	result, err := h.submitSvc.Submit(c.Request.Context(), sess, actor)
	if err != nil {
		h.respondSubmitError(c, actor, err)
		return
	}

	if !result.Success {
		// Remote failure with an explicit message; the session is kept so the
		// user can retry from the confirm step.
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": result.Message})
		return
	}
	if result.PaymentURL == "" {
		// Anomalous success: the appointment exists but no payment page.
		utils.JSONError(c, http.StatusBadGateway, "failed to start payment session", "")
		return
	}

	// The client navigates away to the payment page; the session is done.
	if err := h.wizardSvc.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.logger.Warn("failed to clear wizard session after booking", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"paymentUrl": result.PaymentURL, "appointment": result.Appointment},
	})
}

func (h *BookingHandler) respondSubmitError(c *gin.Context, actor booking.Actor, err error) {
	var redirect *booking.RedirectError
	switch {
	case errors.Is(err, booking.ErrNothingSelected):
		utils.JSONError(c, http.StatusBadRequest, "doctor and schedule must be selected", "")
	case errors.Is(err, booking.ErrAuthPending):
		// Deferred, not failed; the client should retry once auth resolves.
		c.JSON(http.StatusServiceUnavailable, gin.H{"deferred": true})
	case errors.As(err, &redirect):
		status := http.StatusForbidden
		if !actor.Authenticated {
			status = http.StatusUnauthorized
		}
		utils.JSONRedirectError(c, status, redirect.Message, redirect.Path)
	default:
		h.logger.Error("booking submission failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking failed", err.Error())
	}
}

func actorFromContext(c *gin.Context) booking.Actor {
	if c.GetBool(middleware.CtxAuthPending) {
		return booking.Actor{Resolved: false}
	}
	userID := c.GetString(middleware.CtxUserID)
	if userID == "" {
		return booking.Actor{Resolved: true, Authenticated: false}
	}
	return booking.Actor{
		Resolved:      true,
		Authenticated: true,
		UserID:        userID,
		Role:          c.GetString(middleware.CtxUserRole),
	}
}
