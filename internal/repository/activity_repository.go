package repository

import (
	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/models"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// Append adds an entry to the activity feed
func (r *GormActivityRepository) Append(entry *models.ActivityEntry) error {
	return r.db.Create(entry).Error
}

// Recent returns up to limit entries, most recent first
func (r *GormActivityRepository) Recent(limit int) ([]models.ActivityEntry, error) {
	var entries []models.ActivityEntry

	query := r.db.Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
