package repository

import (
	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new directory user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// List retrieves users in insertion order with filters applied
func (r *GormUserRepository) List(filter UserFilter) ([]models.User, error) {
	var users []models.User

	query := r.db.Model(&models.User{})

	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if pattern, ok := searchPattern(filter.Query); ok {
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	if err := query.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// Count returns the total number of directory users
func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
