package repository

import (
	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/models"
)

// GormSeriesRepository is a GORM implementation of SeriesRepository
type GormSeriesRepository struct {
	db *gorm.DB
}

// NewSeriesRepository creates a new SeriesRepository
func NewSeriesRepository(db *gorm.DB) SeriesRepository {
	return &GormSeriesRepository{db: db}
}

// RevenueSeries returns revenue points in chronological order
func (r *GormSeriesRepository) RevenueSeries() ([]models.RevenuePoint, error) {
	var points []models.RevenuePoint
	if err := r.db.Order("id ASC").Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

// GrowthSeries returns user-growth points in chronological order
func (r *GormSeriesRepository) GrowthSeries() ([]models.GrowthPoint, error) {
	var points []models.GrowthPoint
	if err := r.db.Order("id ASC").Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}
