package app

import (
	"log/slog"

	"finques-lisa/database"
	"finques-lisa/services"
	"finques-lisa/session"
	"finques-lisa/storage"
	"finques-lisa/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo         *database.Repository
	SessionStore *session.Store
	Validator    *validator.Validator
	Logger       *slog.Logger

	// SecureCookies marks session and visitor cookies as HTTPS-only
	SecureCookies bool

	Properties *services.PropertyService
	Contacts   *services.ContactService
	Favorites  *services.FavoriteService
	Auth       *services.AuthService
	Migration  *services.MigrationService
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, sessionStore *session.Store, legacyStore storage.LegacyStore, logger *slog.Logger) *App {
	v := validator.New()
	properties := services.NewPropertyService(repo, v)

	return &App{
		Repo:         repo,
		SessionStore: sessionStore,
		Validator:    v,
		Logger:       logger,
		Properties:   properties,
		Contacts:     services.NewContactService(repo, v),
		Favorites:    services.NewFavoriteService(repo),
		Auth:         services.NewAuthService(repo, sessionStore, v),
		Migration:    services.NewMigrationService(properties, legacyStore),
	}
}
