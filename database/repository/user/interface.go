// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"fairway/database"
	"fairway/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	EnsureIndexes() error
	Create(ctx context.Context, user *models.User) (string, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
}
