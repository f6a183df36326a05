package services

import (
	"errors"
	"fmt"
	"log/slog"

	"finques-lisa/models"
	"finques-lisa/validator"

	"github.com/google/uuid"
)

// PropertyService handles business logic for property listings
type PropertyService struct {
	repo      PropertyRepository
	validator *validator.Validator
}

// NewPropertyService creates a new property service
func NewPropertyService(repo PropertyRepository, v *validator.Validator) *PropertyService {
	return &PropertyService{
		repo:      repo,
		validator: v,
	}
}

// List returns active properties matching the filters
func (ps *PropertyService) List(filters models.PropertyFilters) ([]models.Property, error) {
	return ps.repo.ListProperties(filters)
}

// Get returns a property by id, or nil when it does not exist
func (ps *PropertyService) Get(id string) (*models.Property, error) {
	return ps.repo.GetProperty(id)
}

// GetBySlug returns a property by slug, or nil when it does not exist
func (ps *PropertyService) GetBySlug(slug string) (*models.Property, error) {
	return ps.repo.GetPropertyBySlug(slug)
}

func (ps *PropertyService) Featured(limit int) ([]models.Property, error) {
	return ps.repo.FeaturedProperties(limit)
}

func (ps *PropertyService) Search(term string, filters models.PropertyFilters) ([]models.Property, error) {
	return ps.repo.SearchProperties(term, filters)
}

func (ps *PropertyService) Stats() (*models.PropertyStats, error) {
	return ps.repo.GetStats()
}

func (ps *PropertyService) PropertyTypes() ([]models.PropertyType, error) {
	return ps.repo.PropertyTypes()
}

func (ps *PropertyService) Locations() ([]string, error) {
	return ps.repo.Locations()
}

// PriceRange returns the price bounds for an operation type; empty means sale.
func (ps *PropertyService) PriceRange(operationType string) (models.PriceRange, error) {
	op := models.OperationSale
	if operationType != "" {
		op = models.NormalizeOperationType(operationType)
	}
	if !op.Valid() {
		return models.PriceRange{}, validator.ValidationErrors{{
			Field:   "operation_type",
			Message: "operation_type must be one of: sale, rent",
			Tag:     "operationtype",
			Value:   operationType,
		}}
	}
	return ps.repo.PriceRange(op)
}

// ValidateProperty reports field errors for the input; an empty map means it is valid.
// It has no side effects.
func (ps *PropertyService) ValidateProperty(in models.PropertyInput) map[string]string {
	in.Normalize()
	err := ps.validator.Validate(in)
	if err == nil {
		return map[string]string{}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.Fields()
	}
	return map[string]string{"input": err.Error()}
}

// Create validates the input and stores the property with its main image, gallery and
// features. Nothing is written when validation fails.
func (ps *PropertyService) Create(in models.PropertyInput) (*models.Property, error) {
	in.Normalize()
	if err := ps.validator.Validate(in); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	if err := ps.repo.CreateProperty(id, in); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	property, err := ps.repo.GetProperty(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	slog.Info("Property created", "property_id", property.ID, "reference", property.ReferenceCode)
	return property, nil
}

// Update validates the input exactly like Create, then overwrites the property.
// Slug and reference code are never recomputed.
func (ps *PropertyService) Update(id string, in models.PropertyInput) (*models.Property, error) {
	in.Normalize()
	if err := ps.validator.Validate(in); err != nil {
		return nil, err
	}

	found, err := ps.repo.UpdateProperty(id, in)
	if err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	if !found {
		return nil, ErrPropertyNotFound
	}

	property, err := ps.repo.GetProperty(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

// Delete hard-deletes a property and reports whether it existed
func (ps *PropertyService) Delete(id string) (bool, error) {
	deleted, err := ps.repo.DeleteProperty(id)
	if err != nil {
		return false, err
	}
	if deleted {
		slog.Info("Property deleted", "property_id", id)
	}
	return deleted, nil
}

// ToggleActive flips the active flag and returns the updated property
func (ps *PropertyService) ToggleActive(id string) (*models.Property, error) {
	found, err := ps.repo.ToggleActive(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrPropertyNotFound
	}

	property, err := ps.repo.GetProperty(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}
