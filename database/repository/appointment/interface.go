// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("medibook")
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
