package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"finques-lisa/database"
	"finques-lisa/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T, ttl time.Duration) (*Store, *database.Repository, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "session-test-*")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}
	return NewStore(db, ttl), database.NewRepository(db), cleanup
}

func createAdmin(t *testing.T, repo *database.Repository, active bool) *models.User {
	t.Helper()
	id := uuid.New().String()
	user := &models.User{
		ID:           id,
		Email:        id + "@example.com",
		Username:     "admin-" + id[:8],
		PasswordHash: "hash",
		Role:         "admin",
		IsActive:     active,
	}
	require.NoError(t, repo.CreateUser(user))
	return user
}

func TestStore(t *testing.T) {
	store, repo, cleanup := setupTestStore(t, time.Hour)
	defer cleanup()

	user := createAdmin(t, repo, true)

	session, err := store.Create(user)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)

	t.Run("Get returns the session", func(t *testing.T) {
		got, err := store.Get(session.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.UserID)
		assert.Equal(t, user.Username, got.Username)
	})

	t.Run("Unknown id", func(t *testing.T) {
		got, err := store.Get("missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(session.ID))
		got, err := store.Get(session.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Inactive user", func(t *testing.T) {
		inactive := createAdmin(t, repo, false)
		s, err := store.Create(inactive)
		require.NoError(t, err)

		got, err := store.Get(s.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStore_Expiry(t *testing.T) {
	store, repo, cleanup := setupTestStore(t, time.Millisecond)
	defer cleanup()

	user := createAdmin(t, repo, true)
	session, err := store.Create(user)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	removed, err := store.CleanupExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestStore_CleanupRoutine(t *testing.T) {
	store, repo, cleanup := setupTestStore(t, time.Millisecond)
	defer cleanup()
	defer store.Stop()

	user := createAdmin(t, repo, true)
	_, err := store.Create(user)
	require.NoError(t, err)

	store.StartCleanupRoutine(5 * time.Millisecond)

	assert.Eventually(t, func() bool {
		var count int
		if err := store.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count); err != nil {
			return false
		}
		return count == 0
	}, time.Second, 10*time.Millisecond)

	store.Stop()
	store.Stop()
}
