package session

import (
	"database/sql"
	"errors"
	"log/slog"
	"sync"
	"time"

	"finques-lisa/database"
	"finques-lisa/models"

	"github.com/google/uuid"
)

const DefaultTTL = 30 * 24 * time.Hour

// Store keeps admin sessions in the sessions table so they survive restarts.
type Store struct {
	db   *database.DB
	ttl  time.Duration
	stop chan struct{}
	once sync.Once
}

func NewStore(db *database.DB, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{db: db, ttl: ttl, stop: make(chan struct{})}
}

func (s *Store) Create(user *models.User) (*models.Session, error) {
	now := time.Now().UTC()
	session := &models.Session{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		Username:   user.Username,
		ExpiresAt:  now.Add(s.ttl),
		CreatedAt:  now,
		LastUsedAt: now,
	}

	_, err := s.db.Exec(`
		INSERT INTO sessions (id, user_id, expires_at, created_at, last_used_at)
		VALUES (?, ?, ?, ?, ?)
	`, session.ID, session.UserID, session.ExpiresAt, session.CreatedAt, session.LastUsedAt)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the session, or nil when it does not exist, has expired or belongs to a
// deactivated user. A hit refreshes last_used_at.
func (s *Store) Get(sessionID string) (*models.Session, error) {
	var session models.Session
	err := s.db.QueryRow(`
		SELECT s.id, s.user_id, u.username, s.expires_at, s.created_at, s.last_used_at
		FROM sessions s
		INNER JOIN users u ON u.id = s.user_id
		WHERE s.id = ? AND u.is_active = 1
	`, sessionID).Scan(
		&session.ID, &session.UserID, &session.Username,
		&session.ExpiresAt, &session.CreatedAt, &session.LastUsedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if now.After(session.ExpiresAt) {
		return nil, nil
	}

	session.LastUsedAt = now
	if _, err := s.db.Exec(`UPDATE sessions SET last_used_at = ? WHERE id = ?`, now, sessionID); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Store) Delete(sessionID string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, sessionID)
	return err
}

// CleanupExpired removes expired sessions and reports how many were deleted.
func (s *Store) CleanupExpired() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM sessions WHERE expires_at < ?`, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// StartCleanupRoutine purges expired sessions every interval until Stop is called.
func (s *Store) StartCleanupRoutine(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n, err := s.CleanupExpired(); err != nil {
					slog.Error("Session cleanup failed", "error", err)
				} else if n > 0 {
					slog.Info("Expired sessions removed", "count", n)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Store) Stop() {
	s.once.Do(func() { close(s.stop) })
}
