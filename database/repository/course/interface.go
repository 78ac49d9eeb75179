// File: database/repository/course/interface.go
package courseRepo

import (
	"context"

	"fairway/database"
	"fairway/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CourseRepository interface {
	EnsureIndexes() error
	Create(ctx context.Context, course *models.Course) (string, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	GetAll(ctx context.Context) ([]models.Course, error)
	GetActive(ctx context.Context) ([]models.Course, error)
}

type mongoCourseRepo struct {
	coll *mongo.Collection
}

// NewMongoCourseRepo constructs a new MongoDB CourseRepository.
func NewMongoCourseRepo() CourseRepository {
	return &mongoCourseRepo{
		coll: database.DB().Collection("courses"),
	}
}
