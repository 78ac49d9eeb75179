// File: services/course/service.go
package course

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	courseRepo "fairway/database/repository/course"
	"fairway/models"
	"fairway/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	activeCoursesCacheKey = "courses:active"
	activeCoursesCacheTTL = 5 * time.Minute
)

// CourseService manages golf-course reference data.
type CourseService interface {
	CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, req models.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]models.Course, error)
	GetActiveCourses(ctx context.Context) ([]models.Course, error)
}

// DefaultCourseService is the production implementation. The active-course
// list is served from the cache when present; any mutation drops it.
type DefaultCourseService struct {
	Repo  courseRepo.CourseRepository
	Cache *redis.Client
}

// CreateCourse adds a course. Active defaults to true when unset.
func (s *DefaultCourseService) CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	course := &models.Course{
		Name:       req.Name,
		CountryID:  req.CountryID,
		ProvinceID: req.ProvinceID,
		CityID:     req.CityID,
		Address:    req.Address,
		Phone:      req.Phone,
		Holes:      req.Holes,
		Active:     active,
	}
	if _, err := s.Repo.Create(ctx, course); err != nil {
		return nil, err
	}
	s.invalidateActiveCache(ctx)
	return course, nil
}

// UpdateCourse applies the provided fields to an existing course.
func (s *DefaultCourseService) UpdateCourse(ctx context.Context, id string, req models.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.CountryID != nil {
		course.CountryID = *req.CountryID
	}
	if req.ProvinceID != nil {
		course.ProvinceID = *req.ProvinceID
	}
	if req.CityID != nil {
		course.CityID = *req.CityID
	}
	if req.Address != nil {
		course.Address = *req.Address
	}
	if req.Phone != nil {
		course.Phone = *req.Phone
	}
	if req.Holes != nil {
		course.Holes = *req.Holes
	}
	if req.Active != nil {
		course.Active = *req.Active
	}
	if err := s.Repo.Update(ctx, course); err != nil {
		return nil, err
	}
	s.invalidateActiveCache(ctx)
	return course, nil
}

// DeleteCourse removes a course. Existing tee times keep their denormalized
// course name.
func (s *DefaultCourseService) DeleteCourse(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateActiveCache(ctx)
	return nil
}

func (s *DefaultCourseService) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCourseService) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	return s.Repo.GetAll(ctx)
}

// GetActiveCourses serves the active-course list, cache first.
func (s *DefaultCourseService) GetActiveCourses(ctx context.Context) ([]models.Course, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, activeCoursesCacheKey).Result(); err == nil {
			var cached []models.Course
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	courses, err := s.Repo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active courses: %w", err)
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(courses); err == nil {
			if err := s.Cache.Set(ctx, activeCoursesCacheKey, raw, activeCoursesCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache active courses", zap.Error(err))
			}
		}
	}
	return courses, nil
}

func (s *DefaultCourseService) invalidateActiveCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, activeCoursesCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate course cache", zap.Error(err))
	}
}
