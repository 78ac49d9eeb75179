// File: database/repository/quotation/quotation_mongo.go
package quotationRepo

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

type QuotationRepository interface {
	Create(ctx context.Context, quotation *models.Quotation) (string, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Quotation, error)
	GetAll(ctx context.Context) ([]models.Quotation, error)
}

type mongoQuotationRepo struct {
	coll *mongo.Collection
}

// NewMongoQuotationRepo constructs a new MongoDB QuotationRepository.
func NewMongoQuotationRepo() QuotationRepository {
	return &mongoQuotationRepo{
		coll: database.DB().Collection("quotations"),
	}
}

// Create inserts a new quotation document and returns the assigned id.
func (r *mongoQuotationRepo) Create(ctx context.Context, quotation *models.Quotation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if quotation.ID == "" {
		quotation.ID = uuid.New().String()
	}
	now := time.Now()
	quotation.CreatedAt = now
	quotation.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, quotation); err != nil {
		return "", fmt.Errorf("failed to create quotation: %w", err)
	}
	return quotation.ID, nil
}

// Delete removes a quotation document by its ID.
func (r *mongoQuotationRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete quotation with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("quotation with id %s not found", id)
	}
	return nil
}

// GetByID fetches a single quotation document.
func (r *mongoQuotationRepo) GetByID(ctx context.Context, id string) (*models.Quotation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var quotation models.Quotation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&quotation); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("quotation not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &quotation, nil
}

// GetAll fetches every quotation, most recent first.
func (r *mongoQuotationRepo) GetAll(ctx context.Context) ([]models.Quotation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotations: %w", err)
	}
	defer cursor.Close(ctx)

	var quotations []models.Quotation
	if err := cursor.All(ctx, &quotations); err != nil {
		return nil, fmt.Errorf("error decoding quotations: %w", err)
	}
	return quotations, nil
}
