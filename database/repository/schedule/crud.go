// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medibook/models"
)

func (r *mongoDoctorScheduleRepo) OpenSlots(ctx context.Context, doctorID string, from time.Time) ([]models.DoctorSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// StartDateTime is stored as an RFC3339 string, so a lexical $gte against
	// another RFC3339 string is a chronological comparison.
	filter := bson.M{
		"doctorId": doctorID,
		"isBooked": false,
		"schedule.startDateTime": bson.M{"$gte": from.UTC().Format(time.RFC3339)},
	}
	opts := options.Find().SetSort(bson.D{{Key: "schedule.startDateTime", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.DoctorSchedule
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *mongoDoctorScheduleRepo) GetOpen(ctx context.Context, doctorID, scheduleID string) (*models.DoctorSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID, "scheduleId": scheduleID, "isBooked": false}
	var ds models.DoctorSchedule
	if err := r.coll.FindOne(ctx, filter).Decode(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (r *mongoDoctorScheduleRepo) ClaimSlot(ctx context.Context, doctorID, scheduleID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID, "scheduleId": scheduleID, "isBooked": false}
	update := bson.M{"$set": bson.M{"isBooked": true}}

	err := r.coll.FindOneAndUpdate(ctx, filter, update).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrSlotTaken
	}
	return err
}

func (r *mongoDoctorScheduleRepo) Assign(ctx context.Context, ds models.DoctorSchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, ds)
	return err
}
