package database

import (
	"database/sql"

	"finques-lisa/models"

	"github.com/shopspring/decimal"
)

// GetStats aggregates property counts and average prices over the whole table.
// Sale/rent counts only include active properties; averages are rounded to the nearest unit.
func (r *Repository) GetStats() (*models.PropertyStats, error) {
	var stats models.PropertyStats
	var avgSale, avgRent sql.NullFloat64

	err := r.db.QueryRow(`
		SELECT
			COUNT(*),
			COUNT(CASE WHEN is_active = 1 THEN 1 END),
			COUNT(CASE WHEN is_featured = 1 THEN 1 END),
			COUNT(CASE WHEN operation_type = 'sale' AND is_active = 1 THEN 1 END),
			COUNT(CASE WHEN operation_type = 'rent' AND is_active = 1 THEN 1 END),
			COUNT(CASE WHEN status = 'sold' THEN 1 END),
			COUNT(CASE WHEN status = 'rented' THEN 1 END),
			AVG(CASE WHEN operation_type = 'sale' THEN price END),
			AVG(CASE WHEN operation_type = 'rent' THEN price END)
		FROM properties
	`).Scan(
		&stats.TotalProperties, &stats.ActiveProperties, &stats.FeaturedProperties,
		&stats.ForSale, &stats.ForRent, &stats.Sold, &stats.Rented,
		&avgSale, &avgRent,
	)
	if err != nil {
		return nil, err
	}

	stats.AvgSalePrice = roundAverage(avgSale)
	stats.AvgRentPrice = roundAverage(avgRent)
	return &stats, nil
}

// roundAverage rounds half away from zero; NULL averages become 0.
func roundAverage(v sql.NullFloat64) int64 {
	if !v.Valid {
		return 0
	}
	return decimal.NewFromFloat(v.Float64).Round(0).IntPart()
}
