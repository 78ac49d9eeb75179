// File: services/user/signin.go
package user

import (
	"context"
	"errors"
	"time"

	"fairway/models"
	"fairway/utils"

	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is how long an operator session token stays valid.
const tokenDuration = 24 * time.Hour

// ErrInvalidCredentials is returned for a wrong email or password, without
// distinguishing which.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Authenticate verifies the password, issues a bearer token, and stores its
// hash on the operator record so middleware can resolve the token back to an
// operator.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenDuration)
	if err != nil {
		return nil, err
	}

	user.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		ID:       user.ID,
		Token:    token,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		CourseID: user.CourseID,
	}, nil
}
