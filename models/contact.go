package models

import (
	"strings"
	"time"
)

type Contact struct {
	ID                string      `json:"id"`
	PropertyID        *string     `json:"property_id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Phone             *string     `json:"phone,omitempty"`
	Message           *string     `json:"message,omitempty"`
	ContactType       ContactType `json:"contact_type"`
	PreferredContact  *string     `json:"preferred_contact,omitempty"`
	IsRead            bool        `json:"is_read"`
	RespondedAt       *time.Time  `json:"responded_at,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	PropertyTitle     *string     `json:"property_title,omitempty"`
	PropertyReference *string     `json:"property_reference,omitempty"`
}

type ContactInput struct {
	PropertyID       *string     `json:"property_id,omitempty" validate:"omitempty,max=64"`
	Name             string      `json:"name" validate:"notblank,max=100"`
	Email            string      `json:"email" validate:"required,email,max=200"`
	Phone            *string     `json:"phone,omitempty" validate:"omitempty,esphone"`
	Message          *string     `json:"message,omitempty" validate:"omitempty,max=5000"`
	ContactType      ContactType `json:"contact_type,omitempty" validate:"omitempty,oneof=info visit offer callback"`
	PreferredContact *string     `json:"preferred_contact,omitempty" validate:"omitempty,oneof=email phone whatsapp"`
}

func (in *ContactInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.ContactType == "" {
		in.ContactType = ContactInfo
	}
	if in.PropertyID != nil && strings.TrimSpace(*in.PropertyID) == "" {
		in.PropertyID = nil
	}
	if in.Phone != nil && strings.TrimSpace(*in.Phone) == "" {
		in.Phone = nil
	}
	if in.Message != nil && strings.TrimSpace(*in.Message) == "" {
		in.Message = nil
	}
}

type ContactFilters struct {
	IsRead      *bool
	ContactType string
	Limit       int
}
