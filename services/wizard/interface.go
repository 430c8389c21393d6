package wizard

import (
	"context"
	"errors"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/schedule"
)

var (
	ErrSessionNotFound   = errors.New("booking session not found or expired")
	ErrInvalidTransition = errors.New("step not reachable from current selections")
	ErrAtFirstStep       = errors.New("already at the first step")
	ErrSlotUnavailable   = errors.New("selected slot is not among the doctor's open schedules")
)

// WizardService drives the consultation booking flow:
// specialty -> doctor -> schedule -> confirm.
type WizardService interface {
	// StartSession opens a new session. A non-empty doctorID deep-links
	// straight to the schedule step.
	StartSession(ctx context.Context, patientID, doctorID string) (*models.WizardSession, error)
	SelectSpecialty(ctx context.Context, sessionID, specialtyID string) (*models.WizardSession, []models.Doctor, error)
	SelectDoctor(ctx context.Context, sessionID, doctorID string) (*models.WizardSession, error)
	SelectSchedule(ctx context.Context, sessionID, scheduleID string) (*models.WizardSession, error)
	Back(ctx context.Context, sessionID string) (*models.WizardSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultWizardService implements WizardService over a Redis session store.
type DefaultWizardService struct {
	Store      *Store
	DoctorRepo doctorRepo.DoctorRepository
	Aggregator schedule.Aggregator
}
