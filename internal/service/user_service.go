// Package service implements the business rules on top of the repositories.
package service

import (
	"context"
	"crypto/md5" //nolint:gosec // gravatar addressing, not password hashing
	"fmt"
	"strings"

	"devconnect/internal/auth"
	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/repository"
)

// UserService handles registration, login, and account lookups.
type UserService struct {
	userRepo  repository.UserRepository
	jwtSecret string
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUserService returns a UserService bound to the given repository.
func NewUserService(userRepo repository.UserRepository, jwtSecret string) *UserService {
	return &UserService{userRepo: userRepo, jwtSecret: jwtSecret}
}

// Register creates a new account. The email must be unused; the password is
// stored only as a bcrypt hash and the avatar is derived from the email.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := requireFields(field{"name", in.Name}, field{"email", in.Email}, field{"password", in.Password}); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if existing != nil {
		return nil, models.NewConflictError("User already exists")
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
		Avatar:   GravatarURL(in.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, models.NewInternalError(err)
	}

	observability.RegistrationsTotal.Inc()
	return user, nil
}

// Login verifies credentials and returns a signed token. The token is the
// only thing returned; callers fetch the user via GetSelf.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if err := requireFields(field{"email", email}, field{"password", password}); err != nil {
		return "", err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	if user == nil || !auth.CheckPassword(password, user.Password) {
		observability.RecordLogin(false)
		return "", models.NewUnauthorizedError("Invalid credentials")
	}

	token, err := auth.IssueToken(s.jwtSecret, user.ID, user.Name)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	observability.RecordLogin(true)
	return token, nil
}

// GetSelf returns the authenticated caller's record. The password hash is
// excluded from serialization by the model.
func (s *UserService) GetSelf(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", userID)
	}
	return user, nil
}

// GravatarURL derives the avatar URL for an email address using the
// size/rating/default settings the frontend expects.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	digest := md5.Sum([]byte(normalized)) //nolint:gosec
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=300&r=pg&d=mm", digest)
}
