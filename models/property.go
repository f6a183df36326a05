package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Property struct {
	ID            string          `json:"id"`
	Slug          string          `json:"slug"`
	ReferenceCode string          `json:"reference_code"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	OperationType OperationType   `json:"operation_type"`
	PropertyType  PropertyType    `json:"property_type"`

	Location   string   `json:"location"`
	Address    *string  `json:"address,omitempty"`
	PostalCode *string  `json:"postal_code,omitempty"`
	City       *string  `json:"city,omitempty"`
	Province   *string  `json:"province,omitempty"`
	Country    *string  `json:"country,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`

	Bedrooms          int      `json:"bedrooms"`
	Bathrooms         int      `json:"bathrooms"`
	AreaBuilt         *float64 `json:"area_built,omitempty"`
	AreaUseful        *float64 `json:"area_useful,omitempty"`
	AreaPlot          *float64 `json:"area_plot,omitempty"`
	YearBuilt         *int     `json:"year_built,omitempty"`
	Floor             *int     `json:"floor,omitempty"`
	HasElevator       bool     `json:"has_elevator"`
	Orientation       *string  `json:"orientation,omitempty"`
	EnergyCertificate *string  `json:"energy_certificate,omitempty"`
	Furnished         *string  `json:"furnished,omitempty"`
	ParkingSpaces     int      `json:"parking_spaces"`
	StorageRoom       bool     `json:"storage_room"`

	IsActive        bool           `json:"is_active"`
	IsFeatured      bool           `json:"is_featured"`
	Status          PropertyStatus `json:"status"`
	MetaTitle       *string        `json:"meta_title,omitempty"`
	MetaDescription *string        `json:"meta_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Augmented on read
	MainImage      string    `json:"main_image"`
	Features       []string  `json:"features"`
	ImageURLs      []string  `json:"image_urls"`
	Images         []Image   `json:"images,omitempty"`
	FeatureDetails []Feature `json:"feature_details,omitempty"`
}

type Image struct {
	ID           string    `json:"id"`
	PropertyID   string    `json:"property_id"`
	URL          string    `json:"url"`
	AltText      string    `json:"alt_text"`
	IsMain       bool      `json:"is_main"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type Feature struct {
	ID         string          `json:"id"`
	PropertyID string          `json:"property_id"`
	Name       string          `json:"name"`
	Category   FeatureCategory `json:"category"`
	CreatedAt  time.Time       `json:"created_at"`
}

// PropertyInput is the payload for both create and update.
// On update, nil Features/Gallery and an empty Image leave the stored collections untouched,
// and nil IsActive / empty Status keep the stored values.
type PropertyInput struct {
	Title         string          `json:"title" validate:"notblank,max=200"`
	Description   string          `json:"description" validate:"max=5000"`
	Price         decimal.Decimal `json:"price" validate:"gt=0"`
	OperationType OperationType   `json:"operation_type" validate:"required,operationtype"`
	PropertyType  PropertyType    `json:"property_type" validate:"required,propertytype"`

	Location   string   `json:"location" validate:"notblank,max=200"`
	Address    *string  `json:"address,omitempty" validate:"omitempty,max=300"`
	PostalCode *string  `json:"postal_code,omitempty" validate:"omitempty,max=10"`
	City       *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	Province   *string  `json:"province,omitempty" validate:"omitempty,max=100"`
	Country    *string  `json:"country,omitempty" validate:"omitempty,max=100"`
	Latitude   *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude  *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`

	Bedrooms          int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms         int      `json:"bathrooms" validate:"gte=0"`
	AreaBuilt         *float64 `json:"area_built,omitempty" validate:"omitempty,gt=0"`
	AreaUseful        *float64 `json:"area_useful,omitempty" validate:"omitempty,gt=0"`
	AreaPlot          *float64 `json:"area_plot,omitempty" validate:"omitempty,gt=0"`
	YearBuilt         *int     `json:"year_built,omitempty" validate:"omitempty,gte=1800,lte=2100"`
	Floor             *int     `json:"floor,omitempty"`
	HasElevator       bool     `json:"has_elevator"`
	Orientation       *string  `json:"orientation,omitempty" validate:"omitempty,max=50"`
	EnergyCertificate *string  `json:"energy_certificate,omitempty" validate:"omitempty,oneof=A B C D E F G"`
	Furnished         *string  `json:"furnished,omitempty" validate:"omitempty,oneof=unfurnished semi_furnished furnished"`
	ParkingSpaces     int      `json:"parking_spaces" validate:"gte=0"`
	StorageRoom       bool     `json:"storage_room"`

	IsActive        *bool          `json:"is_active,omitempty"`
	IsFeatured      bool           `json:"is_featured"`
	Status          PropertyStatus `json:"status,omitempty" validate:"omitempty,propertystatus"`
	MetaTitle       *string        `json:"meta_title,omitempty" validate:"omitempty,max=200"`
	MetaDescription *string        `json:"meta_description,omitempty" validate:"omitempty,max=500"`

	Image    string   `json:"image,omitempty" validate:"max=2048"`
	Gallery  []string `json:"gallery,omitempty" validate:"omitempty,dive,required,max=2048"`
	Features []string `json:"features,omitempty" validate:"omitempty,dive,required,max=100"`
}

// Normalize trims free text, maps legacy enum spellings to canonical values and drops blank
// features. It is applied before validation.
func (in *PropertyInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	in.Description = strings.TrimSpace(in.Description)
	in.Image = strings.TrimSpace(in.Image)
	in.OperationType = NormalizeOperationType(string(in.OperationType))
	in.PropertyType = NormalizePropertyType(string(in.PropertyType))
	if in.Status != "" {
		in.Status = NormalizeStatus(string(in.Status))
	}
	if in.EnergyCertificate != nil {
		cert := strings.ToUpper(strings.TrimSpace(*in.EnergyCertificate))
		in.EnergyCertificate = &cert
	}
	if in.Furnished != nil {
		furnished := NormalizeFurnished(*in.Furnished)
		in.Furnished = &furnished
	}
	if in.Features != nil {
		in.Features = compactStrings(in.Features)
	}
	if in.Gallery != nil {
		in.Gallery = compactStrings(in.Gallery)
	}
}

func compactStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

type PropertyFilters struct {
	OperationType string           `query:"operation_type"`
	PropertyType  string           `query:"property_type"`
	MinPrice      *decimal.Decimal `query:"-"`
	MaxPrice      *decimal.Decimal `query:"-"`
	Bedrooms      *int             `query:"-"`
	Location      string           `query:"location"`
	Search        string           `query:"search"`
	Limit         int              `query:"limit"`
	Offset        int              `query:"offset"`
	FeaturedFirst bool             `query:"featured_first"`
}

type PropertyStats struct {
	TotalProperties    int   `json:"total_properties"`
	ActiveProperties   int   `json:"active_properties"`
	FeaturedProperties int   `json:"featured_properties"`
	ForSale            int   `json:"for_sale"`
	ForRent            int   `json:"for_rent"`
	Sold               int   `json:"sold"`
	Rented             int   `json:"rented"`
	AvgSalePrice       int64 `json:"avg_sale_price"`
	AvgRentPrice       int64 `json:"avg_rent_price"`
}

type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}
