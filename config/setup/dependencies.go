package setup

import (
	"log/slog"
	"time"

	"finques-lisa/app"
	"finques-lisa/config"
	"finques-lisa/database"
	"finques-lisa/session"
	"finques-lisa/storage"
)

// InitDatabase opens the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp builds the repository, seeds the admin account and demo listings, and wires the
// services into an App.
func InitApp(db *database.DB, cfg *config.Config, logger *slog.Logger) (*app.App, error) {
	repo := database.NewRepository(db, database.WithReferencePrefix(cfg.ReferencePrefix))

	if err := repo.Seed(database.SeedOptions{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		AdminEmail:    cfg.AdminEmail,
		DemoData:      cfg.SeedDemoData,
	}); err != nil {
		return nil, err
	}
	logger.Info("seed data checked", "demo_data", cfg.SeedDemoData)

	sessionStore := session.NewStore(db, time.Duration(cfg.SessionTTLHours)*time.Hour)
	if removed, err := sessionStore.CleanupExpired(); err != nil {
		logger.Warn("failed to remove expired sessions", "error", err)
	} else if removed > 0 {
		logger.Info("expired sessions removed", "count", removed)
	}
	sessionStore.StartCleanupRoutine(time.Hour)
	logger.Info("session cleanup routine started")

	legacyStore := storage.NewFileStore(cfg.LegacyStorePath)
	logger.Info("legacy store configured", "path", legacyStore.Path())

	application := app.New(repo, sessionStore, legacyStore, logger)
	application.SecureCookies = cfg.Env == "production"
	return application, nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(sessionStore *session.Store, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if sessionStore != nil {
		sessionStore.Stop()
		logger.Info("session cleanup stopped")
	}

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
