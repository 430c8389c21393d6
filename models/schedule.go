package models

// Schedule is one bookable time window, independent of any doctor.
// Timestamps are RFC3339 strings at the boundary.
type Schedule struct {
	ID            string `bson:"id" json:"id"`
	StartDateTime string `bson:"startDateTime" json:"startDateTime"`
	EndDateTime   string `bson:"endDateTime" json:"endDateTime"`
}

// DoctorSchedule is the assignment of a Schedule to a Doctor. IsBooked flips
// to true exactly once, when an appointment is created against it; it never
// flips back.
type DoctorSchedule struct {
	DoctorID   string   `bson:"doctorId" json:"doctorId"`
	ScheduleID string   `bson:"scheduleId" json:"scheduleId"`
	IsBooked   bool     `bson:"isBooked" json:"isBooked"`
	Schedule   Schedule `bson:"schedule" json:"schedule"`
}

// DaySlots groups a doctor's open slots under one calendar date.
type DaySlots struct {
	Date  string           `json:"date"`
	Slots []DoctorSchedule `json:"slots"`
}
