package users

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const maxNameLength = 255

type userService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateUser validates and stores a new user
func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	user := &User{
		Name:     req.Name,
		Email:    req.Email,
		Avatar:   req.Avatar,
		IsPublic: req.IsPublic,
	}

	// Repository maps the unique email constraint to ErrEmailAlreadyTaken
	return s.userRepo.Create(ctx, user)
}

// GetUser retrieves a user by id
func (s *userService) GetUser(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}
	return s.userRepo.GetByID(ctx, id)
}

// SetVisibility updates the public flag of a user
func (s *userService) SetVisibility(ctx context.Context, id int64, isPublic bool) (*User, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}
	return s.userRepo.SetVisibility(ctx, id, isPublic)
}

func validateCreateRequest(req CreateUserRequest) error {
	if req.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if utf8.RuneCountInString(req.Name) > maxNameLength {
		return NewValidationError("name", "name must not exceed 255 characters")
	}
	if req.Email == "" {
		return NewValidationError("email", "email is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return NewValidationError("email", "email is not a valid address")
	}
	return nil
}
