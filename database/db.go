package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"finques-lisa/utils"

	"github.com/mattn/go-sqlite3"
)

// driverName is go-sqlite3 with a fold() SQL function registered on every connection
const driverName = "sqlite3_finques"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("fold", sqlFold, true)
		},
	})
}

// sqlFold backs the fold() SQL function. SQLite's own lower() and LIKE only handle ASCII.
func sqlFold(v any) string {
	switch s := v.(type) {
	case string:
		return utils.Fold(s)
	case []byte:
		return utils.Fold(string(s))
	default:
		return ""
	}
}

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas go in the DSN so they apply to every connection the pool opens
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate", dbPath)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One embedded handle shared by the whole process
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Admin users
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			username TEXT UNIQUE NOT NULL,
			full_name TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'admin',
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			expires_at DATETIME NOT NULL,
			created_at DATETIME NOT NULL,
			last_used_at DATETIME NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS properties (
			id TEXT PRIMARY KEY,
			slug TEXT UNIQUE NOT NULL,
			reference_code TEXT UNIQUE NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price DECIMAL(12,2) NOT NULL CHECK (price > 0),
			operation_type TEXT NOT NULL CHECK (operation_type IN ('sale', 'rent')),
			property_type TEXT NOT NULL CHECK (property_type IN
				('flat', 'house', 'penthouse', 'chalet', 'commercial', 'office', 'studio', 'duplex', 'other')),

			location TEXT NOT NULL,
			address TEXT,
			postal_code TEXT,
			city TEXT,
			province TEXT,
			country TEXT,
			latitude REAL,
			longitude REAL,

			bedrooms INTEGER NOT NULL DEFAULT 0 CHECK (bedrooms >= 0),
			bathrooms INTEGER NOT NULL DEFAULT 0 CHECK (bathrooms >= 0),
			area_built REAL,
			area_useful REAL,
			area_plot REAL,
			year_built INTEGER,
			floor INTEGER,
			has_elevator INTEGER NOT NULL DEFAULT 0,
			orientation TEXT,
			energy_certificate TEXT,
			furnished TEXT,
			parking_spaces INTEGER NOT NULL DEFAULT 0,
			storage_room INTEGER NOT NULL DEFAULT 0,

			is_active INTEGER NOT NULL DEFAULT 1,
			is_featured INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'available' CHECK (status IN
				('available', 'reserved', 'sold', 'rented', 'withdrawn')),
			meta_title TEXT,
			meta_description TEXT,

			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,

		// Last issued reference sequence per prefix and year; codes are never reused
		`CREATE TABLE IF NOT EXISTS reference_sequences (
			prefix TEXT NOT NULL,
			year INTEGER NOT NULL,
			last_value INTEGER NOT NULL,
			PRIMARY KEY (prefix, year)
		)`,

		`CREATE TABLE IF NOT EXISTS property_images (
			id TEXT PRIMARY KEY,
			property_id TEXT NOT NULL,
			url TEXT NOT NULL,
			alt_text TEXT NOT NULL DEFAULT '',
			is_main INTEGER NOT NULL DEFAULT 0,
			display_order INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (property_id) REFERENCES properties(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS property_features (
			id TEXT PRIMARY KEY,
			property_id TEXT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT 'other',
			created_at DATETIME NOT NULL,
			FOREIGN KEY (property_id) REFERENCES properties(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS contacts (
			id TEXT PRIMARY KEY,
			property_id TEXT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			message TEXT,
			contact_type TEXT NOT NULL DEFAULT 'info' CHECK (contact_type IN ('info', 'visit', 'offer', 'callback')),
			preferred_contact TEXT,
			is_read INTEGER NOT NULL DEFAULT 0,
			responded_at DATETIME,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (property_id) REFERENCES properties(id) ON DELETE SET NULL
		)`,

		`CREATE TABLE IF NOT EXISTS favorites (
			id TEXT PRIMARY KEY,
			property_id TEXT NOT NULL,
			session_id TEXT,
			user_email TEXT,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (property_id) REFERENCES properties(id) ON DELETE CASCADE,
			CHECK ((session_id IS NULL) <> (user_email IS NULL)),
			UNIQUE(session_id, property_id),
			UNIQUE(user_email, property_id)
		)`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_properties_active ON properties(is_active)`,
		`CREATE INDEX IF NOT EXISTS idx_properties_featured ON properties(is_featured) WHERE is_featured = 1`,
		`CREATE INDEX IF NOT EXISTS idx_properties_operation ON properties(operation_type)`,
		`CREATE INDEX IF NOT EXISTS idx_properties_type ON properties(property_type)`,
		`CREATE INDEX IF NOT EXISTS idx_properties_price ON properties(price)`,
		`CREATE INDEX IF NOT EXISTS idx_properties_location ON properties(location)`,
		`CREATE INDEX IF NOT EXISTS idx_properties_created ON properties(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_images_property ON property_images(property_id)`,
		`CREATE INDEX IF NOT EXISTS idx_features_property ON property_features(property_id)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_property ON contacts(property_id)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_created ON contacts(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_session ON favorites(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_email ON favorites(user_email)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at)`,

		// Property with its main image and feature names (unit-separator joined)
		`CREATE VIEW IF NOT EXISTS properties_full AS
		SELECT p.*,
			COALESCE((SELECT i.url FROM property_images i
				WHERE i.property_id = p.id AND i.is_main = 1
				ORDER BY i.display_order LIMIT 1), '') AS main_image,
			COALESCE((SELECT GROUP_CONCAT(f.name, char(31)) FROM property_features f
				WHERE f.property_id = p.id), '') AS features,
			COALESCE((SELECT GROUP_CONCAT(i.url, char(31)) FROM property_images i
				WHERE i.property_id = p.id), '') AS image_urls
		FROM properties p`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
