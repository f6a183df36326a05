package database

import (
	"database/sql"
	"errors"
	"time"

	"finques-lisa/models"
)

// ==================== USER OPERATIONS ====================

const userColumns = `id, email, username, full_name, password_hash, role, is_active, created_at, updated_at`

func scanUser(s rowScanner) (*models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Email, &u.Username, &u.FullName, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser retrieves an admin user by ID
func (r *Repository) GetUser(userID string) (*models.User, error) {
	return scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, userID))
}

// GetUserByUsername retrieves an admin user by login name
func (r *Repository) GetUserByUsername(username string) (*models.User, error) {
	return scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
}

// CreateUser inserts an admin user; duplicate username or email is a constraint error
func (r *Repository) CreateUser(user *models.User) error {
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO users (id, email, username, full_name, password_hash, role, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		user.ID, user.Email, user.Username, user.FullName, user.PasswordHash,
		user.Role, boolInt(user.IsActive), user.CreatedAt, user.UpdatedAt,
	)
	return mapError(err)
}
