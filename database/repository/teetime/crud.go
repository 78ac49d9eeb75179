// File: database/repository/teetime/crud.go
package teetimeRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fairway/models"
)

// Create inserts a new tee-time document and returns the assigned id.
func (r *mongoTeeTimeRepo) Create(ctx context.Context, slot *models.TeeTime) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return "", fmt.Errorf("failed to create tee time: %w", err)
	}
	return slot.ID, nil
}

// UpdateFields applies a merge-style update to the mutable tee-time fields.
// Date is never part of the update; the day a slot belongs to is fixed.
func (r *mongoTeeTimeRepo) UpdateFields(ctx context.Context, id string, update models.TeeTimeUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"time":           update.Time,
		"availableSlots": update.AvailableSlots,
		"agentPrice":     update.AgentPrice,
		"note":           update.Note,
		"updatedAt":      time.Now(),
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update tee time with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tee time with id %s not found", id)
	}
	return nil
}

// DeleteByID removes a tee-time document by its ID.
func (r *mongoTeeTimeRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete tee time with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetByID fetches a single tee-time document.
func (r *mongoTeeTimeRepo) GetByID(ctx context.Context, id string) (*models.TeeTime, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.TeeTime
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&slot); err != nil {
		return nil, err
	}
	return &slot, nil
}
