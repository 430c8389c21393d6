package models

import "time"

// Appointment lifecycle statuses.
const (
	AppointmentScheduled  = "SCHEDULED"
	AppointmentInProgress = "INPROGRESS"
	AppointmentCompleted  = "COMPLETED"
	AppointmentCanceled   = "CANCELED"
)

// Payment statuses.
const (
	PaymentPaid   = "PAID"
	PaymentUnpaid = "UNPAID"
)

// Appointment is a confirmed booking linking a patient, a doctor and a
// doctor schedule.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`
	PatientID     string    `bson:"patientId" json:"patientId"`
	DoctorID      string    `bson:"doctorId" json:"doctorId"`
	ScheduleID    string    `bson:"scheduleId" json:"scheduleId"`
	Status        string    `bson:"status" json:"status"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingResult is the creation-time outcome of a submission. PaymentURL is
// returned only here and never persisted.
type BookingResult struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message,omitempty"`
	Appointment *Appointment `json:"appointment,omitempty"`
	PaymentURL  string       `json:"paymentUrl,omitempty"`
}
