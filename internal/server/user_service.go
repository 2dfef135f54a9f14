package server

import (
	"context"
	"errors"
	"strings"

	"github.com/Sayak1321/faculty-recruitment-system/internal/config"
	"github.com/Sayak1321/faculty-recruitment-system/internal/db"
)

// UserService handles user registration and authentication.
type UserService struct {
	store    *db.DB
	password *config.PasswordConfig
}

// NewUserService creates a new user service.
func NewUserService(store *db.DB, password *config.PasswordConfig) *UserService {
	return &UserService{store: store, password: password}
}

// Register creates a new user with a hashed password. Roles are normalized to
// lowercase; unknown roles default to candidate.
func (s *UserService) Register(ctx context.Context, fullName, department, username, email, mobile, password, role string) (db.User, error) {
	if _, err := s.store.GetUserByUsername(ctx, username); err == nil {
		return db.User{}, &ErrUsernameAlreadyExists{Username: username}
	} else if !errors.Is(err, db.ErrNotFound) {
		return db.User{}, err
	}

	hash, err := s.password.HashPassword(password)
	if err != nil {
		return db.User{}, err
	}

	role = strings.ToLower(strings.TrimSpace(role))
	switch role {
	case db.RoleAdmin, db.RolePanel, db.RoleCandidate:
	default:
		role = db.RoleCandidate
	}

	return s.store.CreateUser(ctx, db.User{
		FullName:     fullName,
		Department:   department,
		Username:     username,
		Email:        email,
		Mobile:       mobile,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	})
}

// Authenticate verifies credentials and returns the user. Inactive accounts
// and wrong passwords both yield ErrInvalidCredentials so responses do not
// leak which part failed.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (db.User, error) {
	u, err := s.store.GetUserByUsername(ctx, username)
	if errors.Is(err, db.ErrNotFound) {
		return db.User{}, &ErrInvalidCredentials{}
	}
	if err != nil {
		return db.User{}, err
	}
	if !u.IsActive || !s.password.VerifyPassword(password, u.PasswordHash) {
		return db.User{}, &ErrInvalidCredentials{}
	}
	return u, nil
}
