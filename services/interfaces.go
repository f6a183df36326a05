package services

import (
	"finques-lisa/models"
)

// PropertyRepository defines the interface for property data access
type PropertyRepository interface {
	GetProperty(id string) (*models.Property, error)
	GetPropertyBySlug(slug string) (*models.Property, error)
	ListProperties(filters models.PropertyFilters) ([]models.Property, error)
	SearchProperties(term string, filters models.PropertyFilters) ([]models.Property, error)
	FeaturedProperties(limit int) ([]models.Property, error)
	CreateProperty(id string, in models.PropertyInput) error
	UpdateProperty(id string, in models.PropertyInput) (bool, error)
	DeleteProperty(id string) (bool, error)
	ToggleActive(id string) (bool, error)
	GetStats() (*models.PropertyStats, error)
	PropertyTypes() ([]models.PropertyType, error)
	Locations() ([]string, error)
	PriceRange(operationType models.OperationType) (models.PriceRange, error)
}

// ContactRepository defines the interface for lead data access
type ContactRepository interface {
	CreateContact(c *models.Contact) error
	GetContact(id string) (*models.Contact, error)
	ListContacts(filters models.ContactFilters) ([]models.Contact, error)
	MarkContactRead(id string) (bool, error)
}

// FavoriteRepository defines the interface for favorites data access
type FavoriteRepository interface {
	AddFavorite(propertyID string, owner models.FavoriteOwner) error
	RemoveFavorite(propertyID string, owner models.FavoriteOwner) (bool, error)
	ListFavorites(owner models.FavoriteOwner) ([]models.Property, error)
}

// AuthRepository defines the interface for admin user lookups
type AuthRepository interface {
	GetUser(userID string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
}

// SessionStore defines the interface for session management
type SessionStore interface {
	Create(user *models.User) (*models.Session, error)
	Get(sessionID string) (*models.Session, error)
	Delete(sessionID string) error
}

// PropertyCreator is the create path the legacy migration replays records through
type PropertyCreator interface {
	Create(in models.PropertyInput) (*models.Property, error)
}
