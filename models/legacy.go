package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// LegacyProperty is a record as the old browser-only frontend kept it in localStorage
// under "finques_lisa_properties". Both the camelCase keys of that frontend and the
// snake_case keys of later exports are accepted.
type LegacyProperty struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Image         string          `json:"image"`
	Images        []string        `json:"images"`
	Location      string          `json:"location"`
	Address       string          `json:"address"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     int             `json:"bathrooms"`
	Area          *float64        `json:"area"`
	AreaBuilt     *float64        `json:"area_built"`
	YearBuilt     *int            `json:"yearBuilt"`
	YearBuiltAlt  *int            `json:"year_built"`
	IsFeatured    bool            `json:"isFeatured"`
	IsActive      *bool           `json:"isActive"`
	OperationType string          `json:"operationType"`
	OperationAlt  string          `json:"operation_type"`
	PropertyType  string          `json:"propertyType"`
	PropertyAlt   string          `json:"property_type"`
	Features      []string        `json:"features"`
}

func (l LegacyProperty) ToInput() PropertyInput {
	in := PropertyInput{
		Title:         l.Title,
		Description:   l.Description,
		Price:         l.Price,
		Location:      l.Location,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		AreaBuilt:     l.AreaBuilt,
		YearBuilt:     l.YearBuilt,
		IsFeatured:    l.IsFeatured,
		IsActive:      l.IsActive,
		OperationType: OperationType(firstNonEmpty(l.OperationType, l.OperationAlt)),
		PropertyType:  PropertyType(firstNonEmpty(l.PropertyType, l.PropertyAlt)),
		Image:         l.Image,
		Features:      l.Features,
	}
	if in.AreaBuilt == nil {
		in.AreaBuilt = l.Area
	}
	if in.YearBuilt == nil {
		in.YearBuilt = l.YearBuiltAlt
	}
	if l.Address != "" {
		address := l.Address
		in.Address = &address
	}
	for _, url := range l.Images {
		if url != "" && url != l.Image {
			in.Gallery = append(in.Gallery, url)
		}
	}
	return in
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type MigrationItem struct {
	Success  bool              `json:"success"`
	Property *Property         `json:"property,omitempty"`
	Error    string            `json:"error,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	Data     json.RawMessage   `json:"data,omitempty"`
}

type MigrationResult struct {
	Total      int             `json:"total"`
	Successful int             `json:"successful"`
	Failed     int             `json:"failed"`
	Cleared    bool            `json:"cleared"`
	Results    []MigrationItem `json:"results"`
}
