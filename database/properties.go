package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"finques-lisa/models"
	"finques-lisa/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultFeaturedLimit = 6

// ==================== READS ====================

// GetProperty retrieves a property by id, active or not, with its images and features.
func (r *Repository) GetProperty(id string) (*models.Property, error) {
	return r.getPropertyWhere("id = ?", id)
}

// GetPropertyBySlug retrieves a property by slug, active or not, with its images and features.
func (r *Repository) GetPropertyBySlug(slug string) (*models.Property, error) {
	return r.getPropertyWhere("slug = ?", slug)
}

func (r *Repository) getPropertyWhere(cond string, arg any) (*models.Property, error) {
	row := r.db.QueryRow("SELECT "+propertyColumns("")+" FROM properties_full WHERE "+cond, arg)

	p, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if p.Images, err = r.GetImages(p.ID); err != nil {
		return nil, err
	}
	if p.FeatureDetails, err = r.GetFeatures(p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// ListProperties returns active properties matching every filter, newest first
// (featured first when requested).
func (r *Repository) ListProperties(filters models.PropertyFilters) ([]models.Property, error) {
	q := newPropertyQuery()
	q.applyFilters(filters)

	order := orderNewest
	if filters.FeaturedFirst {
		order = orderFeaturedFirst
	}
	query, args := q.build(order, filters.Limit, filters.Offset)
	return r.queryProperties(query, args...)
}

// SearchProperties matches term against title, location, description and reference code,
// combined with the usual filters. Featured properties come first.
func (r *Repository) SearchProperties(term string, filters models.PropertyFilters) ([]models.Property, error) {
	q := newPropertyQuery()
	q.applySearch(term)
	q.applyFilters(filters)

	query, args := q.build(orderFeaturedFirst, filters.Limit, filters.Offset)
	return r.queryProperties(query, args...)
}

// FeaturedProperties returns active featured properties, newest first. A limit of zero or
// less uses the default of 6.
func (r *Repository) FeaturedProperties(limit int) ([]models.Property, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	q := newPropertyQuery()
	q.add("is_featured = 1")

	query, args := q.build(orderNewest, limit, 0)
	return r.queryProperties(query, args...)
}

func (r *Repository) queryProperties(query string, args ...any) ([]models.Property, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	properties := make([]models.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}

	return properties, rows.Err()
}

func (r *Repository) GetImages(propertyID string) ([]models.Image, error) {
	rows, err := r.db.Query(`
		SELECT id, property_id, url, alt_text, is_main, display_order, created_at
		FROM property_images
		WHERE property_id = ?
		ORDER BY is_main DESC, display_order ASC
	`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]models.Image, 0)
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.URL, &img.AltText, &img.IsMain, &img.DisplayOrder, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

func (r *Repository) GetFeatures(propertyID string) ([]models.Feature, error) {
	rows, err := r.db.Query(`
		SELECT id, property_id, name, category, created_at
		FROM property_features
		WHERE property_id = ?
		ORDER BY rowid ASC
	`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	features := make([]models.Feature, 0)
	for rows.Next() {
		var f models.Feature
		if err := rows.Scan(&f.ID, &f.PropertyID, &f.Name, &f.Category, &f.CreatedAt); err != nil {
			return nil, err
		}
		features = append(features, f)
	}

	return features, rows.Err()
}

// ==================== WRITES ====================

// CreateProperty inserts the property row, its main image, gallery and categorized features
// in one transaction. The slug and reference code are derived here and never change after.
// The input must already be normalized and validated.
func (r *Repository) CreateProperty(id string, in models.PropertyInput) error {
	now := time.Now().UTC()

	return r.withTx(func(tx *sql.Tx) error {
		reference, err := r.nextReferenceCode(tx, now.Year())
		if err != nil {
			return fmt.Errorf("reference code: %w", err)
		}

		isActive := true
		if in.IsActive != nil {
			isActive = *in.IsActive
		}
		status := in.Status
		if status == "" {
			status = models.StatusAvailable
		}

		_, err = tx.Exec(`
			INSERT INTO properties (
				id, slug, reference_code, title, description, price, operation_type, property_type,
				location, address, postal_code, city, province, country, latitude, longitude,
				bedrooms, bathrooms, area_built, area_useful, area_plot, year_built, floor,
				has_elevator, orientation, energy_certificate, furnished, parking_spaces, storage_room,
				is_active, is_featured, status, meta_title, meta_description,
				created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			id, utils.PropertySlug(in.Title, id), reference, in.Title, in.Description, in.Price,
			string(in.OperationType), string(in.PropertyType),
			in.Location, in.Address, in.PostalCode, in.City, in.Province, in.Country, in.Latitude, in.Longitude,
			in.Bedrooms, in.Bathrooms, in.AreaBuilt, in.AreaUseful, in.AreaPlot, in.YearBuilt, in.Floor,
			boolInt(in.HasElevator), in.Orientation, in.EnergyCertificate, in.Furnished, in.ParkingSpaces, boolInt(in.StorageRoom),
			boolInt(isActive), boolInt(in.IsFeatured), string(status), in.MetaTitle, in.MetaDescription,
			now, now,
		)
		if err != nil {
			return fmt.Errorf("insert property: %w", err)
		}

		if in.Image != "" {
			if err := insertImage(tx, id, in.Image, in.Title, true, 0, now); err != nil {
				return err
			}
		}
		if err := insertGallery(tx, id, in.Title, in.Gallery, now); err != nil {
			return err
		}
		return insertFeatures(tx, id, in.Features, now)
	})
}

// UpdateProperty overwrites the mutable fields of an existing property in one transaction.
// IsActive and Status are only written when set. The main image is replaced when Image is
// set, the gallery when Gallery is non-nil and the whole feature set when Features is
// non-nil (an empty list clears it). It reports false when the property does not exist.
func (r *Repository) UpdateProperty(id string, in models.PropertyInput) (bool, error) {
	now := time.Now().UTC()
	found := false

	err := r.withTx(func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRow(`SELECT 1 FROM properties WHERE id = ?`, id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lookup property: %w", err)
		}
		found = true

		var isActive any
		if in.IsActive != nil {
			isActive = boolInt(*in.IsActive)
		}

		_, err = tx.Exec(`
			UPDATE properties SET
				title = ?, description = ?, price = ?, operation_type = ?, property_type = ?,
				location = ?, address = ?, postal_code = ?, city = ?, province = ?, country = ?,
				latitude = ?, longitude = ?,
				bedrooms = ?, bathrooms = ?, area_built = ?, area_useful = ?, area_plot = ?,
				year_built = ?, floor = ?, has_elevator = ?, orientation = ?, energy_certificate = ?,
				furnished = ?, parking_spaces = ?, storage_room = ?,
				is_active = COALESCE(?, is_active),
				is_featured = ?,
				status = COALESCE(?, status),
				meta_title = ?, meta_description = ?,
				updated_at = ?
			WHERE id = ?
		`,
			in.Title, in.Description, in.Price, string(in.OperationType), string(in.PropertyType),
			in.Location, in.Address, in.PostalCode, in.City, in.Province, in.Country,
			in.Latitude, in.Longitude,
			in.Bedrooms, in.Bathrooms, in.AreaBuilt, in.AreaUseful, in.AreaPlot,
			in.YearBuilt, in.Floor, boolInt(in.HasElevator), in.Orientation, in.EnergyCertificate,
			in.Furnished, in.ParkingSpaces, boolInt(in.StorageRoom),
			isActive,
			boolInt(in.IsFeatured),
			nullString(string(in.Status)),
			in.MetaTitle, in.MetaDescription,
			now, id,
		)
		if err != nil {
			return fmt.Errorf("update property: %w", err)
		}

		if in.Image != "" {
			if _, err := tx.Exec(`DELETE FROM property_images WHERE property_id = ? AND is_main = 1`, id); err != nil {
				return fmt.Errorf("delete main image: %w", err)
			}
			if err := insertImage(tx, id, in.Image, in.Title, true, 0, now); err != nil {
				return err
			}
		}

		if in.Gallery != nil {
			if _, err := tx.Exec(`DELETE FROM property_images WHERE property_id = ? AND is_main = 0`, id); err != nil {
				return fmt.Errorf("delete gallery: %w", err)
			}
			if err := insertGallery(tx, id, in.Title, in.Gallery, now); err != nil {
				return err
			}
		}

		if in.Features != nil {
			if _, err := tx.Exec(`DELETE FROM property_features WHERE property_id = ?`, id); err != nil {
				return fmt.Errorf("delete features: %w", err)
			}
			if err := insertFeatures(tx, id, in.Features, now); err != nil {
				return err
			}
		}
		return nil
	})

	return found, err
}

// DeleteProperty hard-deletes a property. Images, features and favorites cascade; contacts
// keep their row with the property reference cleared.
func (r *Repository) DeleteProperty(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return false, mapError(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ToggleActive flips is_active in a single statement. It reports false when the property
// does not exist.
func (r *Repository) ToggleActive(id string) (bool, error) {
	result, err := r.db.Exec(`
		UPDATE properties SET is_active = NOT is_active, updated_at = ? WHERE id = ?
	`, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// nextReferenceCode issues prefix + year + the next sequence number for that year. The
// counter lives in reference_sequences so a deleted listing's code is never issued again.
func (r *Repository) nextReferenceCode(tx *sql.Tx, year int) (string, error) {
	var last int
	err := tx.QueryRow(`
		SELECT last_value FROM reference_sequences WHERE prefix = ? AND year = ?
	`, r.referencePrefix, year).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		// No counter yet: continue after the highest code already stored.
		yearPrefix := utils.ReferencePrefix(r.referencePrefix, year)
		err = tx.QueryRow(`
			SELECT COALESCE(MAX(CAST(substr(reference_code, ?) AS INTEGER)), 0)
			FROM properties
			WHERE substr(reference_code, 1, ?) = ?
		`, utils.ReferenceSequenceOffset(r.referencePrefix), len(yearPrefix), yearPrefix).Scan(&last)
	}
	if err != nil {
		return "", err
	}

	next := last + 1
	_, err = tx.Exec(`
		INSERT INTO reference_sequences (prefix, year, last_value) VALUES (?, ?, ?)
		ON CONFLICT(prefix, year) DO UPDATE SET last_value = excluded.last_value
	`, r.referencePrefix, year, next)
	if err != nil {
		return "", err
	}

	return utils.ReferenceCode(r.referencePrefix, year, next), nil
}

func insertImage(tx *sql.Tx, propertyID, url, title string, isMain bool, order int, now time.Time) error {
	alt := title
	if isMain {
		alt = "Main image of " + title
	}
	_, err := tx.Exec(`
		INSERT INTO property_images (id, property_id, url, alt_text, is_main, display_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), propertyID, url, alt, boolInt(isMain), order, now)
	if err != nil {
		return fmt.Errorf("insert image: %w", err)
	}
	return nil
}

func insertGallery(tx *sql.Tx, propertyID, title string, urls []string, now time.Time) error {
	for i, url := range urls {
		if err := insertImage(tx, propertyID, url, title, false, i+1, now); err != nil {
			return err
		}
	}
	return nil
}

func insertFeatures(tx *sql.Tx, propertyID string, names []string, now time.Time) error {
	for _, name := range names {
		_, err := tx.Exec(`
			INSERT INTO property_features (id, property_id, name, category, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, uuid.New().String(), propertyID, name, string(utils.CategorizeFeature(name)), now)
		if err != nil {
			return fmt.Errorf("insert feature %q: %w", name, err)
		}
	}
	return nil
}

// ==================== LOOKUPS ====================

// PropertyTypes lists the distinct types of active properties.
func (r *Repository) PropertyTypes() ([]models.PropertyType, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT property_type FROM properties WHERE is_active = 1 ORDER BY property_type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]models.PropertyType, 0)
	for rows.Next() {
		var t models.PropertyType
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// Locations lists the distinct locations of active properties.
func (r *Repository) Locations() ([]string, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT location FROM properties WHERE is_active = 1 ORDER BY location
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]string, 0)
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

// PriceRange returns the min and max price of active properties for an operation type.
// Both are zero when there are none.
func (r *Repository) PriceRange(operationType models.OperationType) (models.PriceRange, error) {
	var lo, hi sql.NullFloat64
	err := r.db.QueryRow(`
		SELECT MIN(price), MAX(price) FROM properties WHERE is_active = 1 AND operation_type = ?
	`, string(operationType)).Scan(&lo, &hi)
	if err != nil {
		return models.PriceRange{}, err
	}

	return models.PriceRange{
		Min: decimal.NewFromFloat(lo.Float64),
		Max: decimal.NewFromFloat(hi.Float64),
	}, nil
}
