// File: database/repository/specialty/crud.go
package specialtyRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medibook/models"
)

func (r *mongoSpecialtyRepo) List(ctx context.Context) ([]models.Specialty, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var specialties []models.Specialty
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *mongoSpecialtyRepo) GetByID(ctx context.Context, id string) (*models.Specialty, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var specialty models.Specialty
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&specialty); err != nil {
		return nil, err
	}
	return &specialty, nil
}
