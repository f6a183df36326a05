package models

import "strings"

type OperationType string

const (
	OperationSale OperationType = "sale"
	OperationRent OperationType = "rent"
)

type PropertyType string

const (
	PropertyFlat       PropertyType = "flat"
	PropertyHouse      PropertyType = "house"
	PropertyPenthouse  PropertyType = "penthouse"
	PropertyChalet     PropertyType = "chalet"
	PropertyCommercial PropertyType = "commercial"
	PropertyOffice     PropertyType = "office"
	PropertyStudio     PropertyType = "studio"
	PropertyDuplex     PropertyType = "duplex"
	PropertyOther      PropertyType = "other"
)

type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusReserved  PropertyStatus = "reserved"
	StatusSold      PropertyStatus = "sold"
	StatusRented    PropertyStatus = "rented"
	StatusWithdrawn PropertyStatus = "withdrawn"
)

type FeatureCategory string

const (
	CategoryInterior FeatureCategory = "interior"
	CategoryExterior FeatureCategory = "exterior"
	CategoryBuilding FeatureCategory = "building"
	CategoryLocation FeatureCategory = "location"
	CategoryOther    FeatureCategory = "other"
)

type ContactType string

const (
	ContactInfo     ContactType = "info"
	ContactVisit    ContactType = "visit"
	ContactOffer    ContactType = "offer"
	ContactCallback ContactType = "callback"
)

var OperationTypes = []OperationType{OperationSale, OperationRent}

var PropertyTypes = []PropertyType{
	PropertyFlat, PropertyHouse, PropertyPenthouse, PropertyChalet, PropertyCommercial,
	PropertyOffice, PropertyStudio, PropertyDuplex, PropertyOther,
}

var PropertyStatuses = []PropertyStatus{
	StatusAvailable, StatusReserved, StatusSold, StatusRented, StatusWithdrawn,
}

// Values written by the old Spanish-language frontend, still present in legacy exports.
var (
	operationAliases = map[string]OperationType{
		"venta":    OperationSale,
		"alquiler": OperationRent,
	}
	propertyTypeAliases = map[string]PropertyType{
		"piso":    PropertyFlat,
		"casa":    PropertyHouse,
		"ático":   PropertyPenthouse,
		"atico":   PropertyPenthouse,
		"local":   PropertyCommercial,
		"oficina": PropertyOffice,
		"estudio": PropertyStudio,
		"dúplex":  PropertyDuplex,
		"duplex":  PropertyDuplex,
		"otro":    PropertyOther,
	}
	statusAliases = map[string]PropertyStatus{
		"disponible": StatusAvailable,
		"reservado":  StatusReserved,
		"vendido":    StatusSold,
		"alquilado":  StatusRented,
		"retirado":   StatusWithdrawn,
	}
	furnishedAliases = map[string]string{
		"sin_amueblar":   "unfurnished",
		"semi_amueblado": "semi_furnished",
		"amueblado":      "furnished",
	}
)

func NormalizeOperationType(s string) OperationType {
	s = strings.ToLower(strings.TrimSpace(s))
	if alias, ok := operationAliases[s]; ok {
		return alias
	}
	return OperationType(s)
}

func NormalizePropertyType(s string) PropertyType {
	s = strings.ToLower(strings.TrimSpace(s))
	if alias, ok := propertyTypeAliases[s]; ok {
		return alias
	}
	return PropertyType(s)
}

func NormalizeStatus(s string) PropertyStatus {
	s = strings.ToLower(strings.TrimSpace(s))
	if alias, ok := statusAliases[s]; ok {
		return alias
	}
	return PropertyStatus(s)
}

func NormalizeFurnished(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if alias, ok := furnishedAliases[s]; ok {
		return alias
	}
	return s
}

func (o OperationType) Valid() bool {
	for _, v := range OperationTypes {
		if o == v {
			return true
		}
	}
	return false
}

func (p PropertyType) Valid() bool {
	for _, v := range PropertyTypes {
		if p == v {
			return true
		}
	}
	return false
}

func (s PropertyStatus) Valid() bool {
	for _, v := range PropertyStatuses {
		if s == v {
			return true
		}
	}
	return false
}
