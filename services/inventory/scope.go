// File: services/inventory/scope.go
package inventory

import (
	"context"
	"fmt"

	courseRepo "fairway/database/repository/course"
	"fairway/models"
)

// CourseScope answers which courses an operator may manage. It is a closed
// variant: elevated roles see every active course and must pick one
// explicitly; a course-scoped operator has a single fixed course.
type CourseScope interface {
	// VisibleCourses lists the courses this operator may manage.
	VisibleCourses(ctx context.Context) ([]models.Course, error)
	// AutoSelected returns the fixed course id for single-course operators.
	AutoSelected() (courseID string, ok bool)
}

// ElevatedScope is the super_admin / site_admin view: all active courses.
type ElevatedScope struct {
	Courses courseRepo.CourseRepository
}

func (s ElevatedScope) VisibleCourses(ctx context.Context) ([]models.Course, error) {
	return s.Courses.GetActive(ctx)
}

func (s ElevatedScope) AutoSelected() (string, bool) { return "", false }

// SingleCourseScope is the course_admin view: exactly one course, selected
// automatically with no picker.
type SingleCourseScope struct {
	Courses  courseRepo.CourseRepository
	CourseID string
}

func (s SingleCourseScope) VisibleCourses(ctx context.Context) ([]models.Course, error) {
	course, err := s.Courses.GetByID(ctx, s.CourseID)
	if err != nil {
		return nil, err
	}
	return []models.Course{*course}, nil
}

func (s SingleCourseScope) AutoSelected() (string, bool) { return s.CourseID, true }

// ScopeForOperator maps an operator onto the scope variant its role grants.
func ScopeForOperator(operator *models.User, courses courseRepo.CourseRepository) (CourseScope, error) {
	if models.IsElevatedRole(operator.Role) {
		return ElevatedScope{Courses: courses}, nil
	}
	if operator.Role == models.RoleCourseAdmin {
		if operator.CourseID == "" {
			return nil, fmt.Errorf("course admin %s has no course assigned", operator.ID)
		}
		return SingleCourseScope{Courses: courses, CourseID: operator.CourseID}, nil
	}
	return nil, fmt.Errorf("role %q cannot manage tee-time inventory", operator.Role)
}
