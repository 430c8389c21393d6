// File: database/repository/doctor/crud.go
package doctorRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medibook/models"
)

func (r *mongoDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *mongoDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoDoctorRepo) ListBySpecialty(ctx context.Context, specialtyID string) ([]models.Doctor, error) {
	return r.find(ctx, bson.M{"specialties.specialtyId": specialtyID})
}

func (r *mongoDoctorRepo) find(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "averageRating", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}
