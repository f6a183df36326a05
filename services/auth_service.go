package services

import (
	"log/slog"
	"strings"

	"finques-lisa/models"
	"finques-lisa/validator"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles admin authentication
type AuthService struct {
	repo         AuthRepository
	sessionStore SessionStore
	validator    *validator.Validator
}

// NewAuthService creates a new auth service
func NewAuthService(repo AuthRepository, sessionStore SessionStore, v *validator.Validator) *AuthService {
	return &AuthService{
		repo:         repo,
		sessionStore: sessionStore,
		validator:    v,
	}
}

// Login checks the credentials of an active admin and opens a session
func (as *AuthService) Login(req models.LoginRequest) (*models.Session, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := as.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := as.repo.GetUserByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		slog.Warn("Failed admin login", "username", req.Username)
		return nil, ErrInvalidCredentials
	}

	session, err := as.sessionStore.Create(user)
	if err != nil {
		return nil, err
	}

	slog.Info("Admin logged in", "user_id", user.ID)
	return session, nil
}

// Logout deletes a session
func (as *AuthService) Logout(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return as.sessionStore.Delete(sessionID)
}

// Me returns the user behind a live session
func (as *AuthService) Me(sessionID string) (*models.User, error) {
	session, err := as.sessionStore.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	user, err := as.repo.GetUser(session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}
	return user, nil
}
