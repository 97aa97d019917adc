package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"backoffice/internal/cache"
	"backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

const bcryptCost = 10

// UserService manages back-office operators.
type UserService interface {
	CreateUser(ctx context.Context, in UserInput) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, in UserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) (int64, error)
	ChangePassword(ctx context.Context, id uint, password string) (int64, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

// HashPassword returns the bcrypt hash stored for a user password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *userService) CreateUser(ctx context.Context, in UserInput) (*model.User, error) {
	if blank(in.Username) {
		return nil, errors.Validation("username is required")
	}
	if in.Password == "" {
		return nil, errors.Validation("password is required")
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: hash,
		Role:         in.Role,
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, cache.KeyDashboardStats)
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser changes username and role. Passwords go through ChangePassword.
func (s *userService) UpdateUser(ctx context.Context, id uint, in UserInput) (*model.User, error) {
	if blank(in.Username) {
		return nil, errors.Validation("username is required")
	}
	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	return s.repo.Update(ctx, id, &model.User{Username: strings.TrimSpace(in.Username), Role: role})
}

func (s *userService) DeleteUser(ctx context.Context, id uint) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	_ = s.cache.Delete(ctx, cache.KeyDashboardStats)
	return n, nil
}

func (s *userService) ChangePassword(ctx context.Context, id uint, password string) (int64, error) {
	if password == "" {
		return 0, errors.Validation("password is required")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return 0, err
	}
	return s.repo.UpdatePassword(ctx, id, hash)
}

// Authenticate returns the user matching username and password.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	return user, nil
}
