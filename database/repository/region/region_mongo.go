// File: database/repository/region/region_mongo.go
package regionRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fairway/database"
	"fairway/models"
)

type RegionRepository interface {
	Create(ctx context.Context, region *models.Region) (string, error)
	Update(ctx context.Context, region *models.Region) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Region, error)
	GetByKindAndParent(ctx context.Context, kind, parentID string) ([]models.Region, error)
}

type mongoRegionRepo struct {
	coll *mongo.Collection
}

// NewMongoRegionRepo constructs a new MongoDB RegionRepository.
func NewMongoRegionRepo() RegionRepository {
	return &mongoRegionRepo{
		coll: database.DB().Collection("regions"),
	}
}

// Create inserts a new region node and returns the assigned id.
func (r *mongoRegionRepo) Create(ctx context.Context, region *models.Region) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if region.ID == "" {
		region.ID = uuid.New().String()
	}
	now := time.Now()
	region.CreatedAt = now
	region.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, region); err != nil {
		return "", fmt.Errorf("failed to create region: %w", err)
	}
	return region.ID, nil
}

// Update modifies an existing region node.
func (r *mongoRegionRepo) Update(ctx context.Context, region *models.Region) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	region.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": region.ID}, bson.M{"$set": region})
	if err != nil {
		return fmt.Errorf("failed to update region with id %s: %w", region.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("region with id %s not found", region.ID)
	}
	return nil
}

// Delete removes a region node by its ID.
func (r *mongoRegionRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete region with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("region with id %s not found", id)
	}
	return nil
}

// GetByID fetches a single region node.
func (r *mongoRegionRepo) GetByID(ctx context.Context, id string) (*models.Region, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var region models.Region
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&region); err != nil {
		return nil, fmt.Errorf("region not found: %w", err)
	}
	return &region, nil
}

// GetByKindAndParent lists regions of one kind under a parent. Countries are
// listed with an empty parentID.
func (r *mongoRegionRepo) GetByKindAndParent(ctx context.Context, kind, parentID string) ([]models.Region, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"kind": kind}
	if parentID != "" {
		filter["parentId"] = parentID
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch regions: %w", err)
	}
	defer cursor.Close(ctx)

	var regions []models.Region
	if err := cursor.All(ctx, &regions); err != nil {
		return nil, fmt.Errorf("error decoding regions: %w", err)
	}
	return regions, nil
}
