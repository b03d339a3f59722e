package repository

import (
	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/models"
)

// GormApprovalRepository is a GORM implementation of ApprovalRepository
type GormApprovalRepository struct {
	db *gorm.DB
}

// NewApprovalRepository creates a new ApprovalRepository
func NewApprovalRepository(db *gorm.DB) ApprovalRepository {
	return &GormApprovalRepository{db: db}
}

// Create creates a new approval request
func (r *GormApprovalRepository) Create(request *models.ApprovalRequest) error {
	return r.db.Create(request).Error
}

// FindByID finds an approval request by ID
func (r *GormApprovalRepository) FindByID(id uint64) (*models.ApprovalRequest, error) {
	var request models.ApprovalRequest
	if err := r.db.First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ListPending returns undecided requests in insertion order. Decided requests
// stay in the collection with a terminal status and are filtered out here.
func (r *GormApprovalRepository) ListPending() ([]models.ApprovalRequest, error) {
	var requests []models.ApprovalRequest
	err := r.db.Where("status = ?", models.ApprovalStatusPending).
		Order("id ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Update updates an approval request
func (r *GormApprovalRepository) Update(request *models.ApprovalRequest) error {
	return r.db.Save(request).Error
}

// PendingCount counts undecided requests
func (r *GormApprovalRepository) PendingCount() (int64, error) {
	var count int64
	err := r.db.Model(&models.ApprovalRequest{}).
		Where("status = ?", models.ApprovalStatusPending).
		Count(&count).Error
	return count, err
}
