package utils

import (
	"strings"

	"finques-lisa/models"
)

type categoryKeywords struct {
	category models.FeatureCategory
	keywords []string
}

// Checked in order; the first category with a matching keyword wins.
// Keywords are stored accent-free because feature names are folded before matching.
var featureCategories = []categoryKeywords{
	{models.CategoryInterior, []string{
		"aire acondicionado", "calefaccion", "chimenea", "suelo radiante", "armarios empotrados",
		"air conditioning", "heating", "fireplace", "underfloor heating", "built-in wardrobes",
	}},
	{models.CategoryExterior, []string{
		"terraza", "balcon", "jardin", "piscina", "barbacoa",
		"terrace", "balcony", "garden", "pool", "barbecue",
	}},
	{models.CategoryBuilding, []string{
		"ascensor", "parking", "trastero", "portero", "zona comunitaria",
		"elevator", "lift", "garage", "storage room", "concierge", "communal area",
	}},
	{models.CategoryLocation, []string{
		"centrico", "zona tranquila", "cerca metro", "cerca colegios",
		"city centre", "city center", "quiet area", "near metro", "near schools",
	}},
}

// CategorizeFeature assigns a category by keyword substring match. It is a heuristic:
// anything not matched falls into "other".
func CategorizeFeature(feature string) models.FeatureCategory {
	name := foldAccents(strings.ToLower(strings.TrimSpace(feature)))
	for _, group := range featureCategories {
		for _, keyword := range group.keywords {
			if strings.Contains(name, keyword) {
				return group.category
			}
		}
	}
	return models.CategoryOther
}
