package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Replace(ctx context.Context, id string, user *User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// SQLiteUserRepository implements UserRepository using SQLite. User IDs are
// caller-supplied, never generated.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed user repository.
func NewUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create inserts a new user account. The Password field must already hold
// the stored (encoded or hashed) form. A duplicate ID or email yields
// ErrUserExists, classified after the write fails; an unexplained driver
// failure is returned unchanged.
func (r *SQLiteUserRepository) Create(ctx context.Context, user *User) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password) VALUES (?, ?, ?, ?)",
		user.ID, user.Name, user.Email, user.Password,
	)
	if err != nil {
		if isUniqueViolation(err) {
			if conflictErr := r.classifyConflict(ctx, user); conflictErr != nil {
				return conflictErr
			}
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by their unique ID.
func (r *SQLiteUserRepository) GetByID(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, password FROM users WHERE id = ?", id)
	return scanUser(row)
}

// List returns all users in insertion order.
func (r *SQLiteUserRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, email, password FROM users")
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

// Replace fully overwrites the user stored under id. A zero-row update
// means the user is absent (ErrUserNotFound).
func (r *SQLiteUserRepository) Replace(ctx context.Context, id string, user *User) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET name = ?, email = ?, password = ? WHERE id = ?",
		user.Name, user.Email, user.Password, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			if conflictErr := r.classifyConflict(ctx, user); conflictErr != nil {
				return conflictErr
			}
		}
		return fmt.Errorf("updating user %s: %w", id, err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes a user account by ID.
func (r *SQLiteUserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Count returns the total number of user accounts.
func (r *SQLiteUserRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}

// classifyConflict determines which unique field a failed write collided
// on. Returns nil when neither explains the violation; the caller then
// propagates the raw error.
func (r *SQLiteUserRepository) classifyConflict(ctx context.Context, user *User) error {
	if taken, err := r.columnTaken(ctx, "id", user.ID); err == nil && taken {
		return fmt.Errorf("%w: id %q is already in use", ErrUserExists, user.ID)
	}
	if taken, err := r.columnTaken(ctx, "email", user.Email); err == nil && taken {
		return fmt.Errorf("%w: email %q is already in use", ErrUserExists, user.Email)
	}
	return nil
}

func (r *SQLiteUserRepository) columnTaken(ctx context.Context, column, value string) (bool, error) {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM users WHERE %s = ?", column)
	if err := r.db.QueryRowContext(ctx, query, value).Scan(&count); err != nil {
		return false, fmt.Errorf("checking users.%s: %w", column, err)
	}
	return count > 0, nil
}

// scanner is an interface for sql.Row and sql.Rows Scan methods.
type scanner interface {
	Scan(dest ...any) error
}

// scanUser scans a user from any scanner (Row or Rows).
func scanUser(s scanner) (*User, error) {
	var u User
	err := s.Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

// isUniqueViolation checks if a SQLite error is a UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
