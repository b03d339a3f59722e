package repository

import (
	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/models"
)

// GormFeedRepository is a GORM implementation of FeedRepository
type GormFeedRepository struct {
	db *gorm.DB
}

// NewFeedRepository creates a new FeedRepository
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &GormFeedRepository{db: db}
}

// ListMessages retrieves client messages, most recent first
func (r *GormFeedRepository) ListMessages() ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Order("id DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// UnreadMessageCount counts unread client messages
func (r *GormFeedRepository) UnreadMessageCount() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Where("read = ?", false).Count(&count).Error
	return count, err
}

// ListAnnouncements retrieves announcements, most recent first
func (r *GormFeedRepository) ListAnnouncements() ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := r.db.Order("id DESC").Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

// ListSchedule retrieves schedule items ordered by start time
func (r *GormFeedRepository) ListSchedule() ([]models.ScheduleItem, error) {
	var items []models.ScheduleItem
	if err := r.db.Order("starts_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateSubmission creates a work submission
func (r *GormFeedRepository) CreateSubmission(submission *models.Submission) error {
	return r.db.Create(submission).Error
}

// ListSubmissionsBy retrieves a submitter's work history, most recent first
func (r *GormFeedRepository) ListSubmissionsBy(submitter string) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Where("submitted_by = ?", submitter).
		Order("id DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
