package database

import (
	"time"

	"finques-lisa/models"

	"github.com/google/uuid"
)

// ownerColumn picks the identity column an owner is keyed by.
func ownerColumn(owner models.FavoriteOwner) (string, string) {
	if owner.UserEmail != "" {
		return "user_email", owner.UserEmail
	}
	return "session_id", owner.SessionID
}

// AddFavorite inserts the favorite if absent; repeating it is a no-op. Favoriting a property
// that does not exist is a constraint error. The owner must carry exactly one identity.
func (r *Repository) AddFavorite(propertyID string, owner models.FavoriteOwner) error {
	_, err := r.db.Exec(`
		INSERT OR IGNORE INTO favorites (id, property_id, session_id, user_email, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.New().String(), propertyID, nullString(owner.SessionID), nullString(owner.UserEmail), time.Now().UTC())
	return mapError(err)
}

func (r *Repository) RemoveFavorite(propertyID string, owner models.FavoriteOwner) (bool, error) {
	col, arg := ownerColumn(owner)
	result, err := r.db.Exec(`DELETE FROM favorites WHERE property_id = ? AND `+col+` = ?`, propertyID, arg)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListFavorites returns the owner's favorited active properties, most recently added first.
func (r *Repository) ListFavorites(owner models.FavoriteOwner) ([]models.Property, error) {
	col, arg := ownerColumn(owner)
	return r.queryProperties(`
		SELECT `+propertyColumns("p")+`
		FROM favorites f
		INNER JOIN properties_full p ON p.id = f.property_id
		WHERE p.is_active = 1 AND f.`+col+` = ?
		ORDER BY f.created_at DESC
	`, arg)
}
