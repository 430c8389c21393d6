// File: database/repository/specialty/interface.go
package specialtyRepo

import (
	"context"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SpecialtyRepository interface {
	List(ctx context.Context) ([]models.Specialty, error)
	GetByID(ctx context.Context, id string) (*models.Specialty, error)
}

type mongoSpecialtyRepo struct {
	coll *mongo.Collection
}

// NewMongoSpecialtyRepo constructs a new MongoDB SpecialtyRepository.
func NewMongoSpecialtyRepo() SpecialtyRepository {
	db := database.MongoClient.Database("medibook")
	return &mongoSpecialtyRepo{
		coll: db.Collection("specialties"),
	}
}
