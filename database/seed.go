package database

import (
	"fmt"
	"log/slog"

	"finques-lisa/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const demoImageURL = "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=600&h=400&fit=crop"

type SeedOptions struct {
	AdminUsername string
	AdminPassword string
	AdminEmail    string
	DemoData      bool
}

// Seed creates the admin account on an empty users table and, on an empty properties
// table, a few demo listings. Safe to run on every start.
func (r *Repository) Seed(opts SeedOptions) error {
	if err := r.seedAdmin(opts); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if !opts.DemoData {
		return nil
	}
	if err := r.seedProperties(); err != nil {
		return fmt.Errorf("seed properties: %w", err)
	}
	return nil
}

// seedAdmin only runs on an empty users table. Changing the configured username or email
// later does not create a second account.
func (r *Repository) seedAdmin(opts SeedOptions) error {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = r.CreateUser(&models.User{
		ID:           uuid.New().String(),
		Email:        opts.AdminEmail,
		Username:     opts.AdminUsername,
		FullName:     "Administrator",
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	})
	if err != nil {
		return err
	}

	slog.Info("Admin user created", "username", opts.AdminUsername)
	return nil
}

func (r *Repository) seedProperties() error {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM properties`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, in := range demoProperties() {
		if err := r.CreateProperty(uuid.New().String(), in); err != nil {
			return err
		}
	}

	slog.Info("Demo properties created", "count", len(demoProperties()))
	return nil
}

func demoProperties() []models.PropertyInput {
	inactive := false
	features := []string{"Aire acondicionado", "Calefacción central", "Balcón"}

	return []models.PropertyInput{
		{
			Title:         "Piso moderno en el centro de Lleida",
			Description:   "Hermoso piso completamente renovado en el corazón de Lleida. Cuenta con acabados de alta calidad, mucha luz natural y excelente distribución.",
			Price:         decimal.NewFromInt(180000),
			OperationType: models.OperationSale,
			PropertyType:  models.PropertyFlat,
			Location:      "Centro, Lleida",
			Bedrooms:      3,
			Bathrooms:     2,
			AreaBuilt:     floatPtr(95),
			YearBuilt:     intPtr(2020),
			IsFeatured:    true,
			Image:         demoImageURL,
			Features:      features,
		},
		{
			Title:         "Casa unifamiliar con jardín",
			Description:   "Espaciosa casa familiar con jardín privado y garaje.",
			Price:         decimal.NewFromInt(1200),
			OperationType: models.OperationRent,
			PropertyType:  models.PropertyHouse,
			Location:      "Pardinyes, Lleida",
			Bedrooms:      4,
			Bathrooms:     3,
			AreaBuilt:     floatPtr(150),
			YearBuilt:     intPtr(2018),
			Image:         demoImageURL,
			Features:      features,
		},
		{
			Title:         "Ático con terraza panorámica",
			Description:   "Exclusivo ático con vistas panorámicas de la ciudad.",
			Price:         decimal.NewFromInt(320000),
			OperationType: models.OperationSale,
			PropertyType:  models.PropertyPenthouse,
			Location:      "Ronda, Lleida",
			Bedrooms:      2,
			Bathrooms:     2,
			AreaBuilt:     floatPtr(80),
			YearBuilt:     intPtr(2021),
			IsActive:      &inactive,
			Image:         demoImageURL,
			Features:      features,
		},
	}
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}
