package database

import (
	"strconv"
	"strings"

	"finques-lisa/models"
)

const (
	orderNewest        = "created_at DESC"
	orderFeaturedFirst = "is_featured DESC, created_at DESC"
)

var propertyFields = []string{
	"id", "slug", "reference_code", "title", "description", "price", "operation_type", "property_type",
	"location", "address", "postal_code", "city", "province", "country", "latitude", "longitude",
	"bedrooms", "bathrooms", "area_built", "area_useful", "area_plot", "year_built", "floor",
	"has_elevator", "orientation", "energy_certificate", "furnished", "parking_spaces", "storage_room",
	"is_active", "is_featured", "status", "meta_title", "meta_description",
	"created_at", "updated_at",
	"main_image", "features", "image_urls",
}

// propertyColumns lists the properties_full columns, optionally qualified with a table alias.
func propertyColumns(alias string) string {
	if alias == "" {
		return strings.Join(propertyFields, ", ")
	}
	cols := make([]string, len(propertyFields))
	for i, f := range propertyFields {
		cols[i] = alias + "." + f
	}
	return strings.Join(cols, ", ")
}

func scanProperty(s rowScanner) (*models.Property, error) {
	var p models.Property
	var features, imageURLs string

	err := s.Scan(
		&p.ID, &p.Slug, &p.ReferenceCode, &p.Title, &p.Description, &p.Price, &p.OperationType, &p.PropertyType,
		&p.Location, &p.Address, &p.PostalCode, &p.City, &p.Province, &p.Country, &p.Latitude, &p.Longitude,
		&p.Bedrooms, &p.Bathrooms, &p.AreaBuilt, &p.AreaUseful, &p.AreaPlot, &p.YearBuilt, &p.Floor,
		&p.HasElevator, &p.Orientation, &p.EnergyCertificate, &p.Furnished, &p.ParkingSpaces, &p.StorageRoom,
		&p.IsActive, &p.IsFeatured, &p.Status, &p.MetaTitle, &p.MetaDescription,
		&p.CreatedAt, &p.UpdatedAt,
		&p.MainImage, &features, &imageURLs,
	)
	if err != nil {
		return nil, err
	}

	p.Features = splitList(features)
	p.ImageURLs = splitList(imageURLs)
	return &p, nil
}

// propertyQuery accumulates the WHERE clause of a public listing. Conditions are ANDed.
type propertyQuery struct {
	where []string
	args  []any
}

func newPropertyQuery() *propertyQuery {
	return &propertyQuery{where: []string{"is_active = 1"}}
}

func (q *propertyQuery) add(cond string, args ...any) {
	q.where = append(q.where, cond)
	q.args = append(q.args, args...)
}

// filterSet reports whether a string filter constrains the result; "all" means no filter.
func filterSet(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, "all")
}

func (q *propertyQuery) applyFilters(f models.PropertyFilters) {
	if filterSet(f.OperationType) {
		q.add("operation_type = ?", string(models.NormalizeOperationType(f.OperationType)))
	}
	if filterSet(f.PropertyType) {
		q.add("property_type = ?", string(models.NormalizePropertyType(f.PropertyType)))
	}
	if f.MinPrice != nil {
		q.add("price >= ?", f.MinPrice.InexactFloat64())
	}
	if f.MaxPrice != nil {
		q.add("price <= ?", f.MaxPrice.InexactFloat64())
	}
	if f.Bedrooms != nil {
		q.add("bedrooms = ?", *f.Bedrooms)
	}
	if filterSet(f.Location) {
		q.add(`fold(location) LIKE ? ESCAPE '\'`, foldPattern(f.Location))
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		pattern := foldPattern(term)
		q.add(`(fold(title) LIKE ? ESCAPE '\' OR fold(location) LIKE ? ESCAPE '\' OR fold(description) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern)
	}
}

// applySearch matches term against the reference code as well as the free-text fields.
func (q *propertyQuery) applySearch(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	pattern := foldPattern(term)
	q.add(`(fold(title) LIKE ? ESCAPE '\' OR fold(location) LIKE ? ESCAPE '\' OR fold(description) LIKE ? ESCAPE '\' OR reference_code LIKE ? ESCAPE '\')`,
		pattern, pattern, pattern, likePattern(term))
}

func (q *propertyQuery) build(orderBy string, limit, offset int) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(propertyColumns(""))
	sb.WriteString(" FROM properties_full WHERE ")
	sb.WriteString(strings.Join(q.where, " AND "))
	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderBy)

	args := append([]any(nil), q.args...)
	switch {
	case limit > 0:
		sb.WriteString(" LIMIT ?")
		args = append(args, limit)
		if offset > 0 {
			sb.WriteString(" OFFSET ?")
			args = append(args, offset)
		}
	case offset > 0:
		sb.WriteString(" LIMIT -1 OFFSET " + strconv.Itoa(offset))
	}

	return sb.String(), args
}
