package models

// Wizard steps. The flow is linear except for one skip-path: a session started
// with a pre-selected doctor begins directly at StepSchedule.
const (
	StepSpecialty = "specialty"
	StepDoctor    = "doctor"
	StepSchedule  = "schedule"
	StepConfirm   = "confirm"
)

// WizardSession holds one patient's progress through the booking flow.
// Generation increases every time the selected doctor changes; a slot fetch
// dispatched under an older generation must not overwrite newer state.
type WizardSession struct {
	SessionID   string          `json:"sessionId"`
	PatientID   string          `json:"patientId,omitempty"`
	Step        string          `json:"step"`
	SpecialtyID string          `json:"specialtyId,omitempty"`
	Doctor      *Doctor         `json:"doctor,omitempty"`
	Schedule    *DoctorSchedule `json:"schedule,omitempty"`
	Days        []DaySlots      `json:"days,omitempty"`
	DeepLinked  bool            `json:"deepLinked,omitempty"`
	Generation  int64           `json:"generation"`
}
