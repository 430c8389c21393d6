// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"errors"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when a claim races with another booking for the
// same doctor schedule.
var ErrSlotTaken = errors.New("doctor schedule is already booked")

type DoctorScheduleRepository interface {
	// OpenSlots returns the doctor's unbooked slots starting at or after from,
	// ordered ascending by start time.
	OpenSlots(ctx context.Context, doctorID string, from time.Time) ([]models.DoctorSchedule, error)
	GetOpen(ctx context.Context, doctorID, scheduleID string) (*models.DoctorSchedule, error)
	// ClaimSlot flips isBooked false -> true. The flip happens at most once
	// per doctor schedule; a lost race yields ErrSlotTaken.
	ClaimSlot(ctx context.Context, doctorID, scheduleID string) error
	Assign(ctx context.Context, ds models.DoctorSchedule) error
}

type mongoDoctorScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorScheduleRepo constructs a new MongoDB DoctorScheduleRepository.
func NewMongoDoctorScheduleRepo() DoctorScheduleRepository {
	db := database.MongoClient.Database("medibook")
	return &mongoDoctorScheduleRepo{
		coll: db.Collection("doctor_schedules"),
	}
}
