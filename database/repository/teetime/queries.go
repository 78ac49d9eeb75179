// File: database/repository/teetime/queries.go
package teetimeRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fairway/models"
)

// GetByCourseID fetches every tee time belonging to a course, sorted by date
// then time ascending. Both fields are fixed-width zero-padded strings, so
// the lexicographic sort is chronological.
func (repo *mongoTeeTimeRepo) GetByCourseID(ctx context.Context, courseID string) ([]models.TeeTime, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"courseId": courseID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tee times: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.TeeTime
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding tee times: %w", err)
	}
	return slots, nil
}

// GetByCourseIDAndDate fetches the tee times of one course on one day.
func (repo *mongoTeeTimeRepo) GetByCourseIDAndDate(ctx context.Context, courseID, date string) ([]models.TeeTime, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"courseId": courseID, "date": date}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tee times: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.TeeTime
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding tee times: %w", err)
	}
	return slots, nil
}
