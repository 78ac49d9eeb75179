package models

import "time"

// Operator roles, from widest to narrowest scope.
const (
	RoleSuperAdmin  = "super_admin"
	RoleSiteAdmin   = "site_admin"
	RoleCourseAdmin = "course_admin"
	RoleUser        = "user"
)

// User is an administrative operator of the platform, never a booking
// customer. A course_admin carries the single course they are scoped to.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CourseID     string    `bson:"courseId,omitempty" json:"courseId,omitempty"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsElevatedRole reports whether the role sees all active courses.
func IsElevatedRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleSiteAdmin
}

// CreateUserRequest defines the payload for registering an operator.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
	CourseID string `json:"courseId"`
}

// UpdateUserRequest carries the mutable operator fields.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	CourseID *string `json:"courseId"`
}

// LoginRequest defines the signin payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse contains the operator's ID, token, and profile details.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	CourseID string `json:"courseId,omitempty"`
}
