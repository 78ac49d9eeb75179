// File: database/repository/course/course_mongo.go
package courseRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fairway/models"
)

// EnsureIndexes creates the necessary indexes on the courses collection.
func (r *mongoCourseRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "active", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetName("active_name_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create course indexes: %w", err)
	}
	return nil
}

// Create inserts a new course document and returns the assigned id.
func (r *mongoCourseRepo) Create(ctx context.Context, course *models.Course) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, course); err != nil {
		return "", fmt.Errorf("failed to create course: %w", err)
	}
	return course.ID, nil
}

// Update replaces the stored course document.
func (r *mongoCourseRepo) Update(ctx context.Context, course *models.Course) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	course.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": course.ID}, bson.M{"$set": course})
	if err != nil {
		return fmt.Errorf("failed to update course with id %s: %w", course.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("course with id %s not found", course.ID)
	}
	return nil
}

// Delete removes a course document by its ID.
func (r *mongoCourseRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete course with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("course with id %s not found", id)
	}
	return nil
}

// GetByID fetches a single course document.
func (r *mongoCourseRepo) GetByID(ctx context.Context, id string) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var course models.Course
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&course); err != nil {
		return nil, fmt.Errorf("course not found: %w", err)
	}
	return &course, nil
}

// GetAll fetches every course, sorted by name.
func (r *mongoCourseRepo) GetAll(ctx context.Context) ([]models.Course, error) {
	return r.find(ctx, bson.M{})
}

// GetActive fetches the courses open for inventory management.
func (r *mongoCourseRepo) GetActive(ctx context.Context) ([]models.Course, error) {
	return r.find(ctx, bson.M{"active": true})
}

func (r *mongoCourseRepo) find(ctx context.Context, filter bson.M) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("error decoding courses: %w", err)
	}
	return courses, nil
}
