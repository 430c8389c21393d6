// File: services/wizard/wizard.go
package wizard

import (
	"context"
	"fmt"

	"medibook/models"

	"github.com/google/uuid"
)

// StartSession creates a new wizard session. With an empty doctorID the flow
// begins at the specialty step. With a doctorID (deep link) the session skips
// straight to the schedule step; Back from there returns to specialty, since
// no specialty/doctor-list context exists.
func (s *DefaultWizardService) StartSession(ctx context.Context, patientID, doctorID string) (*models.WizardSession, error) {
	sess := &models.WizardSession{
		SessionID: uuid.New().String(),
		PatientID: patientID,
		Step:      models.StepSpecialty,
	}

	if doctorID != "" {
		doctor, err := s.DoctorRepo.GetByID(ctx, doctorID)
		if err != nil {
			return nil, fmt.Errorf("failed to load doctor %s: %w", doctorID, err)
		}
		sess.Doctor = doctor
		sess.DeepLinked = true
		sess.Step = models.StepSchedule
		sess.Generation++
	}

	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	if sess.Doctor != nil {
		if err := s.refreshSlots(ctx, sess); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// SelectSpecialty records the specialty filter, clears any doctor and
// schedule selection, and moves to the doctor step. It returns the doctors
// matching the specialty so the next step can render immediately.
func (s *DefaultWizardService) SelectSpecialty(ctx context.Context, sessionID, specialtyID string) (*models.WizardSession, []models.Doctor, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	sess.SpecialtyID = specialtyID
	sess.Doctor = nil
	sess.Schedule = nil
	sess.Days = nil
	sess.Step = models.StepDoctor
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, nil, err
	}

	doctors, err := s.DoctorRepo.ListBySpecialty(ctx, specialtyID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return sess, doctors, nil
}

// SelectDoctor records the doctor, clears any schedule selection, moves to
// the schedule step and aggregates the doctor's open slots. A doctor with no
// open slots yields an empty day list, not an error.
func (s *DefaultWizardService) SelectDoctor(ctx context.Context, sessionID, doctorID string) (*models.WizardSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.SpecialtyID == "" && !sess.DeepLinked {
		return nil, ErrInvalidTransition
	}

	doctor, err := s.DoctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor %s: %w", doctorID, err)
	}

	sess.Doctor = doctor
	sess.Schedule = nil
	sess.Days = nil
	sess.Step = models.StepSchedule
	sess.Generation++
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}

	if err := s.refreshSlots(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SelectSchedule picks one of the currently offered open slots and moves to
// the confirm step. A slot that is booked, or that was never offered for the
// selected doctor, is rejected.
func (s *DefaultWizardService) SelectSchedule(ctx context.Context, sessionID, scheduleID string) (*models.WizardSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Doctor == nil {
		return nil, ErrInvalidTransition
	}

	var picked *models.DoctorSchedule
	for _, day := range sess.Days {
		for i := range day.Slots {
			if day.Slots[i].ScheduleID == scheduleID && !day.Slots[i].IsBooked {
				picked = &day.Slots[i]
				break
			}
		}
		if picked != nil {
			break
		}
	}
	if picked == nil {
		return nil, ErrSlotUnavailable
	}

	selected := *picked
	sess.Schedule = &selected
	sess.Step = models.StepConfirm
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Back returns to the preceding step without clearing that step's own
// selection. A deep-linked session goes from schedule back to specialty.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch sess.Step {
	case models.StepConfirm:
		sess.Step = models.StepSchedule
	case models.StepSchedule:
		if sess.DeepLinked {
			sess.Step = models.StepSpecialty
		} else {
			sess.Step = models.StepDoctor
		}
	case models.StepDoctor:
		sess.Step = models.StepSpecialty
	default:
		return nil, ErrAtFirstStep
	}

	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.Store.Get(ctx, sessionID)
}

func (s *DefaultWizardService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel wizard session: %w", err)
	}
	return nil
}

// refreshSlots aggregates open slots for the session's doctor. The session
// generation is captured at dispatch; if the stored session has moved on by
// the time the fetch returns (the user picked another doctor), the result is
// discarded so a late response can never overwrite newer state.
func (s *DefaultWizardService) refreshSlots(ctx context.Context, sess *models.WizardSession) error {
	gen := sess.Generation

	days, err := s.Aggregator.OpenSlots(ctx, sess.Doctor.ID)
	if err != nil {
		return err
	}

	current, err := s.Store.Get(ctx, sess.SessionID)
	if err != nil {
		return err
	}
	if current.Generation != gen {
		*sess = *current
		return nil
	}

	sess.Days = days
	return s.Store.Save(ctx, sess)
}
