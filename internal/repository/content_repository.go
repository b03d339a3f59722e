package repository

import (
	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/models"
)

// GormContentRepository is a GORM implementation of ContentRepository
type GormContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &GormContentRepository{db: db}
}

// CreateBlogPost creates a new blog post
func (r *GormContentRepository) CreateBlogPost(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// ListBlogPosts retrieves blog posts in insertion order
func (r *GormContentRepository) ListBlogPosts() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := r.db.Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CountBlogPosts returns the total number of blog posts
func (r *GormContentRepository) CountBlogPosts() (int64, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Count(&count).Error
	return count, err
}

// CreatePortfolioItem creates a new portfolio item
func (r *GormContentRepository) CreatePortfolioItem(item *models.PortfolioItem) error {
	return r.db.Create(item).Error
}

// ListPortfolioItems retrieves portfolio items in insertion order
func (r *GormContentRepository) ListPortfolioItems() ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	if err := r.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListMediaAssets retrieves media assets in insertion order
func (r *GormContentRepository) ListMediaAssets() ([]models.MediaAsset, error) {
	var assets []models.MediaAsset
	if err := r.db.Order("id ASC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}
