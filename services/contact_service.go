package services

import (
	"fmt"
	"time"

	"finques-lisa/models"
	"finques-lisa/validator"

	"github.com/google/uuid"
)

// ContactService handles leads submitted through the public contact form
type ContactService struct {
	repo      ContactRepository
	validator *validator.Validator
}

func NewContactService(repo ContactRepository, v *validator.Validator) *ContactService {
	return &ContactService{
		repo:      repo,
		validator: v,
	}
}

// Save validates and stores a lead. A property reference that does not exist surfaces as
// a constraint error.
func (cs *ContactService) Save(in models.ContactInput) (*models.Contact, error) {
	in.Normalize()
	if err := cs.validator.Validate(in); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		ID:               uuid.New().String(),
		PropertyID:       in.PropertyID,
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Message:          in.Message,
		ContactType:      in.ContactType,
		PreferredContact: in.PreferredContact,
		CreatedAt:        time.Now().UTC(),
	}

	if err := cs.repo.CreateContact(contact); err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	saved, err := cs.repo.GetContact(contact.ID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, ErrContactNotFound
	}
	return saved, nil
}

// List returns leads newest first
func (cs *ContactService) List(filters models.ContactFilters) ([]models.Contact, error) {
	return cs.repo.ListContacts(filters)
}

// MarkRead flags a lead as read. Repeating it keeps the first responded_at.
func (cs *ContactService) MarkRead(id string) (*models.Contact, error) {
	found, err := cs.repo.MarkContactRead(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrContactNotFound
	}

	contact, err := cs.repo.GetContact(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}
