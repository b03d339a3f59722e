package repository

import (
	"github.com/pixelforge/studio-console/internal/models"
)

// TaskFilter holds filtering options for listing tasks. Filters compose with
// AND; Query is a case-insensitive substring match over title, description
// and client.
type TaskFilter struct {
	Status   *models.TaskStatus
	Priority *models.TaskPriority
	Assignee *string
	Query    string
}

// UserFilter holds filtering options for the admin user list. Query matches
// name or email.
type UserFilter struct {
	Role   *models.Role
	Status *models.UserStatus
	Query  string
}

// ProjectFilter holds filtering options for listing projects. Query matches
// name or client.
type ProjectFilter struct {
	Status *models.ProjectStatus
	Query  string
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error

	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks in insertion order, filtered
	List(filter TaskFilter) ([]models.Task, error)

	Update(task *models.Task) error

	// CountByStatus counts tasks currently in the given status
	CountByStatus(status models.TaskStatus) (int64, error)

	// CountDueToday counts tasks whose due date falls on the current day
	CountDueToday() (int64, error)
}

// UserRepository defines the interface for the admin user directory
type UserRepository interface {
	Create(user *models.User) error

	List(filter UserFilter) ([]models.User, error)

	Count() (int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error

	FindByID(id uint64) (*models.Project, error)

	List(filter ProjectFilter) ([]models.Project, error)

	Update(project *models.Project) error

	// CountActive counts projects in the Active or In Progress status
	CountActive() (int64, error)
}

// InvoiceRepository defines the interface for invoice data access
type InvoiceRepository interface {
	Create(invoice *models.Invoice) error

	List(status *models.InvoiceStatus) ([]models.Invoice, error)

	// OutstandingTotal sums the amounts of invoices not yet paid
	OutstandingTotal() (float64, error)
}

// ContentRepository defines the interface for blog, portfolio and media data
type ContentRepository interface {
	CreateBlogPost(post *models.BlogPost) error
	ListBlogPosts() ([]models.BlogPost, error)
	CountBlogPosts() (int64, error)

	CreatePortfolioItem(item *models.PortfolioItem) error
	ListPortfolioItems() ([]models.PortfolioItem, error)

	ListMediaAssets() ([]models.MediaAsset, error)
}

// ApprovalRepository defines the interface for the approval queue
type ApprovalRepository interface {
	Create(request *models.ApprovalRequest) error

	FindByID(id uint64) (*models.ApprovalRequest, error)

	// ListPending returns undecided requests in insertion order
	ListPending() ([]models.ApprovalRequest, error)

	Update(request *models.ApprovalRequest) error

	PendingCount() (int64, error)
}

// ActivityRepository is append-only: entries are never updated or deleted
type ActivityRepository interface {
	Append(entry *models.ActivityEntry) error

	// Recent returns up to limit entries, most recent first
	Recent(limit int) ([]models.ActivityEntry, error)
}

// FeedRepository covers the small read-mostly dashboard collections
type FeedRepository interface {
	ListMessages() ([]models.Message, error)
	UnreadMessageCount() (int64, error)

	ListAnnouncements() ([]models.Announcement, error)

	ListSchedule() ([]models.ScheduleItem, error)

	CreateSubmission(submission *models.Submission) error
	ListSubmissionsBy(submitter string) ([]models.Submission, error)
}

// SeriesRepository exposes the chart time-series collections
type SeriesRepository interface {
	// RevenueSeries returns revenue points in chronological order
	RevenueSeries() ([]models.RevenuePoint, error)

	// GrowthSeries returns user-growth points in chronological order
	GrowthSeries() ([]models.GrowthPoint, error)
}
