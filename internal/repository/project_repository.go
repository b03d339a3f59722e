package repository

import (
	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves projects in insertion order with filters applied
func (r *GormProjectRepository) List(filter ProjectFilter) ([]models.Project, error) {
	var projects []models.Project

	query := r.db.Model(&models.Project{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if pattern, ok := searchPattern(filter.Query); ok {
		query = query.Where("LOWER(name) LIKE ? OR LOWER(client) LIKE ?", pattern, pattern)
	}

	if err := query.Order("id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// CountActive counts projects in the Active or In Progress status
func (r *GormProjectRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).
		Where("status IN ?", []models.ProjectStatus{models.ProjectStatusActive, models.ProjectStatusInProgress}).
		Count(&count).Error
	return count, err
}
