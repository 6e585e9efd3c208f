package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateUser inserts a new user and returns its ID.
func (db *DB) CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		name, email, passwordHash,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUser retrieves a user by ID. Returns nil when not found.
func (db *DB) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, completed_courses, created_at
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CompletedCourses, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// GetUserByEmail retrieves a user by email. Returns nil when not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, completed_courses, created_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CompletedCourses, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &u, nil
}

// AddCompletedCourse appends a course to the user's completed set, without
// duplicates, and returns the updated list.
func (db *DB) AddCompletedCourse(ctx context.Context, userID uuid.UUID, course string) ([]string, error) {
	var courses []string
	err := db.pool.QueryRow(ctx,
		`UPDATE users
		 SET completed_courses = (
			SELECT ARRAY(SELECT DISTINCT unnest(array_append(completed_courses, $2)))
		 )
		 WHERE id = $1
		 RETURNING completed_courses`,
		userID, course,
	).Scan(&courses)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %s", userID)
		}
		return nil, fmt.Errorf("failed to add completed course: %w", err)
	}
	return courses, nil
}

// RemoveCompletedCourse removes a course from the user's completed set and
// returns the updated list.
func (db *DB) RemoveCompletedCourse(ctx context.Context, userID uuid.UUID, course string) ([]string, error) {
	var courses []string
	err := db.pool.QueryRow(ctx,
		`UPDATE users
		 SET completed_courses = array_remove(completed_courses, $2)
		 WHERE id = $1
		 RETURNING completed_courses`,
		userID, course,
	).Scan(&courses)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %s", userID)
		}
		return nil, fmt.Errorf("failed to remove completed course: %w", err)
	}
	return courses, nil
}
