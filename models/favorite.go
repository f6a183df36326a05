package models

import "time"

type Favorite struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	SessionID  *string   `json:"session_id,omitempty"`
	UserEmail  *string   `json:"user_email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// FavoriteOwner identifies who a favorite belongs to. Exactly one field must be set.
type FavoriteOwner struct {
	SessionID string
	UserEmail string
}

func (o FavoriteOwner) Valid() bool {
	return (o.SessionID == "") != (o.UserEmail == "")
}
