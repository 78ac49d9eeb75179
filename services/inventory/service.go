// File: services/inventory/service.go
package inventory

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	courseRepo "fairway/database/repository/course"
	teetimeRepo "fairway/database/repository/teetime"
	"fairway/models"
	"fairway/utils"
)

// Service carries the persistence-facing tee-time operations. The mutation
// rules (past-date refusal, entry bounds) live here so they hold even when a
// request bypasses the page controller.
type Service interface {
	ListTeeTimes(ctx context.Context, courseID string) ([]models.TeeTime, error)
	ListTeeTimesForDate(ctx context.Context, courseID, date string) ([]models.TeeTime, error)
	CreateTeeTime(ctx context.Context, operatorID, courseID string, payload models.TeeTimePayload) (*models.TeeTime, error)
	UpdateTeeTime(ctx context.Context, id string, update models.TeeTimeUpdate) error
	DeleteTeeTime(ctx context.Context, id string) error
}

// DefaultInventoryService is the production implementation.
type DefaultInventoryService struct {
	Repo    teetimeRepo.TeeTimeRepository
	Courses courseRepo.CourseRepository
	Clock   utils.Clock
}

// ListTeeTimes returns every slot of a course, sorted by date then time.
func (s *DefaultInventoryService) ListTeeTimes(ctx context.Context, courseID string) ([]models.TeeTime, error) {
	slots, err := s.Repo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tee times: %w", err)
	}
	return slots, nil
}

// ListTeeTimesForDate returns the slots of a course on one day.
func (s *DefaultInventoryService) ListTeeTimesForDate(ctx context.Context, courseID, date string) ([]models.TeeTime, error) {
	slots, err := s.Repo.GetByCourseIDAndDate(ctx, courseID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load tee times: %w", err)
	}
	return slots, nil
}

// CreateTeeTime constructs the full record for a validated payload: it
// resolves the course's display name (denormalized onto the record), attaches
// the acting operator, and persists. The date may not be in the past.
func (s *DefaultInventoryService) CreateTeeTime(ctx context.Context, operatorID, courseID string, payload models.TeeTimePayload) (*models.TeeTime, error) {
	if utils.IsPastDateString(payload.Date, s.Clock) {
		return nil, ErrPastDate
	}
	if err := models.ValidateTeeTimeFields(payload.Time, payload.AvailableSlots, payload.AgentPrice); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	course, err := s.Courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve course: %w", err)
	}

	var createdBy *string
	if operatorID != "" {
		createdBy = &operatorID
	}
	slot := &models.TeeTime{
		CourseID:       course.ID,
		CourseName:     course.Name,
		Date:           payload.Date,
		Time:           payload.Time,
		AvailableSlots: payload.AvailableSlots,
		AgentPrice:     payload.AgentPrice,
		Note:           payload.Note,
		CreatedBy:      createdBy,
	}
	if _, err := s.Repo.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// UpdateTeeTime applies a partial update to an existing slot. Slots whose
// date has passed are read-only.
func (s *DefaultInventoryService) UpdateTeeTime(ctx context.Context, id string, update models.TeeTimeUpdate) error {
	slot, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load tee time %s: %w", id, err)
	}
	if utils.IsPastDateString(slot.Date, s.Clock) {
		return ErrPastDate
	}
	if err := models.ValidateTeeTimeFields(update.Time, update.AvailableSlots, update.AgentPrice); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return s.Repo.UpdateFields(ctx, id, update)
}

// DeleteTeeTime removes a slot. Slots whose date has passed are kept as-is.
func (s *DefaultInventoryService) DeleteTeeTime(ctx context.Context, id string) error {
	slot, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load tee time %s: %w", id, err)
	}
	if utils.IsPastDateString(slot.Date, s.Clock) {
		return ErrPastDate
	}
	return s.Repo.DeleteByID(ctx, id)
}
