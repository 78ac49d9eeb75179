// File: services/quotation/service.go
package quotation

import (
	"context"
	"fmt"

	courseRepo "fairway/database/repository/course"
	quotationRepo "fairway/database/repository/quotation"
	"fairway/models"
)

// QuotationService prepares ad-hoc priced documents for customers. No payment
// state is tracked here.
type QuotationService interface {
	CreateQuotation(ctx context.Context, operatorID string, req models.CreateQuotationRequest) (*models.Quotation, error)
	DeleteQuotation(ctx context.Context, id string) error
	GetQuotationByID(ctx context.Context, id string) (*models.Quotation, error)
	GetAllQuotations(ctx context.Context) ([]models.Quotation, error)
}

// DefaultQuotationService is the production implementation.
type DefaultQuotationService struct {
	Repo    quotationRepo.QuotationRepository
	Courses courseRepo.CourseRepository
}

// CreateQuotation totals the line items and, when a course is referenced,
// denormalizes its display name onto the document.
func (s *DefaultQuotationService) CreateQuotation(ctx context.Context, operatorID string, req models.CreateQuotationRequest) (*models.Quotation, error) {
	total := 0
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item %q has a non-positive quantity", item.Description)
		}
		if item.UnitPrice < 0 {
			return nil, fmt.Errorf("item %q has a negative unit price", item.Description)
		}
		total += item.Quantity * item.UnitPrice
	}

	var courseName string
	if req.CourseID != "" {
		course, err := s.Courses.GetByID(ctx, req.CourseID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve course: %w", err)
		}
		courseName = course.Name
	}

	var createdBy *string
	if operatorID != "" {
		createdBy = &operatorID
	}
	quotation := &models.Quotation{
		CustomerName: req.CustomerName,
		CourseID:     req.CourseID,
		CourseName:   courseName,
		PlayDate:     req.PlayDate,
		Items:        req.Items,
		Total:        total,
		Note:         req.Note,
		CreatedBy:    createdBy,
	}
	if _, err := s.Repo.Create(ctx, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}

func (s *DefaultQuotationService) DeleteQuotation(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultQuotationService) GetQuotationByID(ctx context.Context, id string) (*models.Quotation, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultQuotationService) GetAllQuotations(ctx context.Context) ([]models.Quotation, error) {
	return s.Repo.GetAll(ctx)
}
