package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUnauthorized       = errors.New("unauthorized access")

	// Property errors
	ErrPropertyNotFound = errors.New("property not found")

	// Contact errors
	ErrContactNotFound = errors.New("contact not found")

	// Favorite errors
	ErrInvalidFavoriteOwner = errors.New("favorite owner must be exactly one of session id or email")
)
