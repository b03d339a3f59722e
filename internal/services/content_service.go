package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pixelforge/studio-console/internal/models"
	"github.com/pixelforge/studio-console/internal/repository"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrCategoryRequired = errors.New("category is required")
)

// ContentService handles blog and portfolio mutations. Required text fields
// are validated after trimming; a failed validation writes nothing.
type ContentService struct {
	contentRepo  repository.ContentRepository
	activityRepo repository.ActivityRepository
}

// NewContentService creates a new ContentService
func NewContentService(contentRepo repository.ContentRepository, activityRepo repository.ActivityRepository) *ContentService {
	return &ContentService{
		contentRepo:  contentRepo,
		activityRepo: activityRepo,
	}
}

// AddBlogPostInput represents input for creating a blog post
type AddBlogPostInput struct {
	Title    string
	Category string
	Status   models.ContentStatus
	Author   string
}

// AddBlogPost validates and appends a blog post.
func (s *ContentService) AddBlogPost(input AddBlogPostInput) (*models.BlogPost, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, ErrCategoryRequired
	}

	status := input.Status
	if status == "" {
		status = models.ContentStatusDraft
	}

	post := &models.BlogPost{
		Title:    title,
		Category: category,
		Status:   status,
		Author:   input.Author,
	}

	if err := s.contentRepo.CreateBlogPost(post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	entry := &models.ActivityEntry{
		Title: fmt.Sprintf("Added blog post %q", post.Title),
		Actor: input.Author,
		Type:  models.ActivityTypeContent,
	}
	if err := s.activityRepo.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to record content activity: %w", err)
	}

	return post, nil
}

// AddPortfolioItemInput represents input for creating a portfolio item
type AddPortfolioItemInput struct {
	Title    string
	Client   string
	Category string
	Status   models.ContentStatus
	Actor    string
}

// AddPortfolioItem validates and appends a portfolio item.
func (s *ContentService) AddPortfolioItem(input AddPortfolioItemInput) (*models.PortfolioItem, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, ErrCategoryRequired
	}

	status := input.Status
	if status == "" {
		status = models.ContentStatusDraft
	}

	item := &models.PortfolioItem{
		Title:    title,
		Client:   strings.TrimSpace(input.Client),
		Category: category,
		Status:   status,
	}

	if err := s.contentRepo.CreatePortfolioItem(item); err != nil {
		return nil, fmt.Errorf("failed to create portfolio item: %w", err)
	}

	entry := &models.ActivityEntry{
		Title: fmt.Sprintf("Added portfolio item %q", item.Title),
		Actor: input.Actor,
		Type:  models.ActivityTypeContent,
	}
	if err := s.activityRepo.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to record content activity: %w", err)
	}

	return item, nil
}
