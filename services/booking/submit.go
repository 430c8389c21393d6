// File: services/booking/submit.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	scheduleRepo "medibook/database/repository/schedule"
	"medibook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoginPath is where an unauthenticated submitter is sent; the redirect
// parameter points back at the booking page.
const LoginPath = "/login?redirect=/consultation"

// Submit checks the preconditions in order, claims the slot, records the
// appointment and opens a payment session.
//
// Precondition order: selections present, auth resolved, authenticated,
// role PATIENT. Only when all four pass is any write attempted.
func (s *DefaultSubmissionService) Submit(ctx context.Context, sess *models.WizardSession, actor Actor) (*models.BookingResult, error) {
	if sess == nil || sess.Doctor == nil || sess.Schedule == nil {
		return nil, ErrNothingSelected
	}
	if !actor.Resolved {
		return nil, ErrAuthPending
	}
	if !actor.Authenticated {
		return nil, &RedirectError{
			Path:    LoginPath,
			Message: "Please login to book a consultation",
		}
	}
	if actor.Role != models.RolePatient {
		return nil, &RedirectError{
			Path:    models.DashboardPath(actor.Role),
			Message: "Only patients can book consultations",
		}
	}

	doctor := *sess.Doctor
	slot := *sess.Schedule

	if err := s.ScheduleRepo.ClaimSlot(ctx, doctor.ID, slot.ScheduleID); err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotTaken) {
			return &models.BookingResult{
				Success: false,
				Message: "This slot has just been booked. Please pick another time.",
			}, nil
		}
		return nil, fmt.Errorf("failed to claim slot: %w", err)
	}

	now := time.Now()
	appt := models.Appointment{
		ID:            uuid.New().String(),
		PatientID:     actor.UserID,
		DoctorID:      doctor.ID,
		ScheduleID:    slot.ScheduleID,
		Status:        models.AppointmentScheduled,
		PaymentStatus: models.PaymentUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.AppointmentRepo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.scheduleReminder(appt, doctor, slot)

	payURL, err := s.Payments.CheckoutURL(ctx, appt, doctor)
	if err != nil || payURL == "" {
		// The appointment exists but the payment page could not be opened.
		// Surfaced as an anomaly rather than silently succeeding.
		s.Logger.Error("payment session failed after booking",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return &models.BookingResult{
			Success:     true,
			Message:     "failed to start payment session",
			Appointment: &appt,
		}, nil
	}

	return &models.BookingResult{
		Success:     true,
		Appointment: &appt,
		PaymentURL:  payURL,
	}, nil
}

func (s *DefaultSubmissionService) scheduleReminder(appt models.Appointment, doctor models.Doctor, slot models.DoctorSchedule) {
	if s.Reminders == nil {
		return
	}
	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		DoctorName:    doctor.Name,
		StartDateTime: slot.Schedule.StartDateTime,
	}
	if err := s.Reminders.ScheduleReminder(payload); err != nil {
		s.Logger.Warn("failed to schedule consultation reminder",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
