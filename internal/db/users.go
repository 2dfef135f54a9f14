package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// CreateUser inserts a new user and returns it with generated fields set.
func (db *DB) CreateUser(ctx context.Context, u User) (User, error) {
	u.ID = uuid.New()
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (id, full_name, department, username, email, mobile, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at`,
		u.ID, u.FullName, u.Department, u.Username, u.Email, u.Mobile, u.PasswordHash, u.Role, u.IsActive,
	).Scan(&u.CreatedAt)
	if err != nil {
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// GetUserByID fetches a user by id.
func (db *DB) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	return db.scanUser(ctx,
		`SELECT id, full_name, department, username, email, mobile, password_hash, role, is_active, created_at
		 FROM users WHERE id = $1`, id)
}

// GetUserByUsername fetches a user by username.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return db.scanUser(ctx,
		`SELECT id, full_name, department, username, email, mobile, password_hash, role, is_active, created_at
		 FROM users WHERE username = $1`, username)
}

func (db *DB) scanUser(ctx context.Context, query string, arg any) (User, error) {
	var u User
	err := db.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.FullName, &u.Department, &u.Username, &u.Email, &u.Mobile,
		&u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}
