package services

import (
	"strings"

	"finques-lisa/models"
)

// FavoriteService manages favorites keyed by either a visitor session or an email,
// never both at once.
type FavoriteService struct {
	repo FavoriteRepository
}

func NewFavoriteService(repo FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

func normalizeOwner(owner models.FavoriteOwner) (models.FavoriteOwner, error) {
	owner.SessionID = strings.TrimSpace(owner.SessionID)
	owner.UserEmail = strings.ToLower(strings.TrimSpace(owner.UserEmail))
	if !owner.Valid() {
		return owner, ErrInvalidFavoriteOwner
	}
	return owner, nil
}

// Add favorites a property; adding it again is a no-op
func (fs *FavoriteService) Add(propertyID string, owner models.FavoriteOwner) error {
	owner, err := normalizeOwner(owner)
	if err != nil {
		return err
	}
	return fs.repo.AddFavorite(propertyID, owner)
}

// Remove reports whether a favorite was deleted
func (fs *FavoriteService) Remove(propertyID string, owner models.FavoriteOwner) (bool, error) {
	owner, err := normalizeOwner(owner)
	if err != nil {
		return false, err
	}
	return fs.repo.RemoveFavorite(propertyID, owner)
}

// List returns the owner's favorited active properties
func (fs *FavoriteService) List(owner models.FavoriteOwner) ([]models.Property, error) {
	owner, err := normalizeOwner(owner)
	if err != nil {
		return nil, err
	}
	return fs.repo.ListFavorites(owner)
}
