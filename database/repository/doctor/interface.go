// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	List(ctx context.Context) ([]models.Doctor, error)
	ListBySpecialty(ctx context.Context, specialtyID string) ([]models.Doctor, error)
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.MongoClient.Database("medibook")
	return &mongoDoctorRepo{
		coll: db.Collection("doctors"),
	}
}
