// File: services/user/service.go
package user

import (
	"context"
	"fmt"

	userRepo "fairway/database/repository/user"
	"fairway/models"

	"golang.org/x/crypto/bcrypt"
)

// UserService manages operator accounts and signin.
type UserService interface {
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func validRole(role string) bool {
	switch role {
	case models.RoleSuperAdmin, models.RoleSiteAdmin, models.RoleCourseAdmin, models.RoleUser:
		return true
	}
	return false
}

// CreateUser registers an operator with a bcrypt-hashed password. A
// course_admin must carry the course they are scoped to.
func (s *DefaultUserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if !validRole(req.Role) {
		return nil, fmt.Errorf("unknown role %q", req.Role)
	}
	if req.Role == models.RoleCourseAdmin && req.CourseID == "" {
		return nil, fmt.Errorf("course_admin requires a courseId")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         req.Role,
		CourseID:     req.CourseID,
	}
	if _, err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser applies the provided fields to an operator account.
func (s *DefaultUserService) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		if !validRole(*req.Role) {
			return nil, fmt.Errorf("unknown role %q", *req.Role)
		}
		user.Role = *req.Role
	}
	if req.CourseID != nil {
		user.CourseID = *req.CourseID
	}
	if user.Role == models.RoleCourseAdmin && user.CourseID == "" {
		return nil, fmt.Errorf("course_admin requires a courseId")
	}
	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}
