package models

// ReminderPayload is queued when a consultation is booked and fired ahead of
// its start time.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	DoctorName    string `json:"doctorName"`
	StartDateTime string `json:"startDateTime"`
}
