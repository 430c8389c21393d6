// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medibook/models"
)

func (r *mongoAppointmentRepo) Create(ctx context.Context, appt models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, appt)
	return err
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"patientId": patientID})
}

func (r *mongoAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID})
}

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.setField(ctx, id, "status", status)
}

func (r *mongoAppointmentRepo) UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) error {
	return r.setField(ctx, id, "paymentStatus", paymentStatus)
}

func (r *mongoAppointmentRepo) setField(ctx context.Context, id, field, value string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{field: value, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
