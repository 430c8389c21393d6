// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error)
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database("medibook")
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
