package booking

import (
	"context"
	"errors"

	appointmentRepo "medibook/database/repository/appointment"
	scheduleRepo "medibook/database/repository/schedule"
	"medibook/models"

	"go.uber.org/zap"
)

var (
	// ErrNothingSelected means the wizard reached confirm without both a
	// doctor and a schedule. Defensive; the wizard should not allow it.
	ErrNothingSelected = errors.New("doctor and schedule must be selected before confirming")
	// ErrAuthPending means the caller's auth state could not be resolved yet;
	// the submission is deferred, not failed.
	ErrAuthPending = errors.New("auth state not resolved")
)

// RedirectError instructs the client to leave the booking flow.
type RedirectError struct {
	Path    string
	Message string
}

func (e *RedirectError) Error() string { return e.Message }

// Actor is the resolved identity attempting the submission.
type Actor struct {
	Resolved      bool
	Authenticated bool
	UserID        string
	Role          string
}

// PaymentProvider opens a hosted payment page for an appointment and returns
// its URL.
type PaymentProvider interface {
	CheckoutURL(ctx context.Context, appt models.Appointment, doctor models.Doctor) (string, error)
}

// ReminderScheduler queues a consultation reminder. Failures are logged, not
// surfaced; a missed reminder must not fail a paid booking.
type ReminderScheduler interface {
	ScheduleReminder(payload models.ReminderPayload) error
}

// SubmissionService finalizes a wizard session into an appointment plus a
// payment handoff URL.
type SubmissionService interface {
	Submit(ctx context.Context, sess *models.WizardSession, actor Actor) (*models.BookingResult, error)
}

// DefaultSubmissionService implements SubmissionService.
type DefaultSubmissionService struct {
	ScheduleRepo    scheduleRepo.DoctorScheduleRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Payments        PaymentProvider
	Reminders       ReminderScheduler
	Logger          *zap.Logger
}
