// File: database/repository/user/crud.go
package userRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"medibook/models"
)

func (r *mongoUserRepo) Create(ctx context.Context, user models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, user)
	return err
}

func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"tokenHash": tokenHash})
}

func (r *mongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
