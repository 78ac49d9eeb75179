// File: database/repository/teetime/interface.go
package teetimeRepo

import (
	"context"

	"fairway/database"
	"fairway/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TeeTimeRepository interface {
	EnsureIndexes() error
	Create(ctx context.Context, slot *models.TeeTime) (string, error)
	UpdateFields(ctx context.Context, id string, update models.TeeTimeUpdate) error
	DeleteByID(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.TeeTime, error)
	GetByCourseID(ctx context.Context, courseID string) ([]models.TeeTime, error)
	GetByCourseIDAndDate(ctx context.Context, courseID, date string) ([]models.TeeTime, error)
}

type mongoTeeTimeRepo struct {
	coll *mongo.Collection
}

// NewMongoTeeTimeRepo constructs a new MongoDB TeeTimeRepository.
func NewMongoTeeTimeRepo() TeeTimeRepository {
	return &mongoTeeTimeRepo{
		coll: database.DB().Collection("teetimes"),
	}
}
