package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/models"
	"github.com/pixelforge/studio-console/internal/utils"
)

// Seed loads the synthetic baseline data every collection starts from. It is
// idempotent: a store that already holds users is left untouched, so reusing
// a file DSN across runs does not duplicate rows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	due := func(days int) *time.Time {
		t := now.AddDate(0, 0, days)
		return &t
	}

	users := []models.User{
		{Name: "John Doe", Email: "john.doe@pixelforge.studio", Role: models.RoleEmployee, Status: models.UserStatusActive, JoinedAt: now.AddDate(-1, -2, 0)},
		{Name: "Alice Johnson", Email: "alice.johnson@x.com", Role: models.RoleClient, Status: models.UserStatusActive, JoinedAt: now.AddDate(0, -8, 0)},
		{Name: "Maria Santos", Email: "maria@brightline.co", Role: models.RoleClient, Status: models.UserStatusActive, JoinedAt: now.AddDate(0, -5, 0)},
		{Name: "David Kim", Email: "david.kim@pixelforge.studio", Role: models.RoleEmployee, Status: models.UserStatusActive, JoinedAt: now.AddDate(0, -11, 0)},
		{Name: "Sarah Chen", Email: "sarah.chen@pixelforge.studio", Role: models.RoleAdmin, Status: models.UserStatusActive, JoinedAt: now.AddDate(-2, 0, 0)},
		{Name: "Tom Becker", Email: "tom@oakandiron.com", Role: models.RoleClient, Status: models.UserStatusInactive, JoinedAt: now.AddDate(0, -3, 0)},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	tasks := []models.Task{
		{Title: "Homepage redesign mockups", Client: "Brightline", Status: models.TaskStatusInProgress, Priority: models.TaskPriorityHigh, DueDate: due(3), Description: "Desktop and mobile mockups for the new homepage hero.", Assignee: "John Doe"},
		{Title: "Brand guideline review", Client: "Oak & Iron", Status: models.TaskStatusNew, Priority: models.TaskPriorityMedium, DueDate: due(7), Description: "Review typography and color usage against the new brand book."},
		{Title: "Q3 campaign assets", Client: "Brightline", Status: models.TaskStatusCompleted, Priority: models.TaskPriorityHigh, DueDate: due(-2), Description: "Banner set for the Q3 paid campaign.", Assignee: "David Kim"},
		{Title: "Newsletter template", Client: "Harbor Labs", Status: models.TaskStatusNew, Priority: models.TaskPriorityLow, DueDate: due(14), Description: "Responsive email template with dark-mode support."},
		{Title: "Product photo retouching", Client: "Oak & Iron", Status: models.TaskStatusReview, Priority: models.TaskPriorityMedium, DueDate: due(1), Description: "Retouch the spring catalog shots.", Assignee: "John Doe"},
		{Title: "Landing page copy pass", Client: "Harbor Labs", Status: models.TaskStatusInProgress, Priority: models.TaskPriorityLow, DueDate: due(5), Description: "Tighten the copy on the pricing page."},
	}
	if err := db.Create(&tasks).Error; err != nil {
		return fmt.Errorf("failed to seed tasks: %w", err)
	}

	projects := []models.Project{
		{Name: "Brightline Website Relaunch", Client: "Brightline", Type: "Web Design", Status: models.ProjectStatusActive, Progress: 65, Budget: 48000, Deadline: due(30)},
		{Name: "Oak & Iron Brand Refresh", Client: "Oak & Iron", Type: "Branding", Status: models.ProjectStatusInProgress, Progress: 40, Budget: 22000, Deadline: due(45)},
		{Name: "Harbor Labs Product Launch", Client: "Harbor Labs", Type: "Marketing", Status: models.ProjectStatusPlanning, Progress: 10, Budget: 36000, Deadline: due(90)},
		{Name: "Brightline Mobile App", Client: "Brightline", Type: "App Design", Status: models.ProjectStatusOnHold, Progress: 25, Budget: 54000, Deadline: due(120)},
		{Name: "Spring Catalog 2026", Client: "Oak & Iron", Type: "Print", Status: models.ProjectStatusCompleted, Progress: 100, Budget: 15000, Deadline: due(-20)},
	}
	if err := db.Create(&projects).Error; err != nil {
		return fmt.Errorf("failed to seed projects: %w", err)
	}

	invoiceSpecs := []struct {
		amount  float64
		status  models.InvoiceStatus
		dueIn   int
		project string
	}{
		{12000, models.InvoiceStatusPaid, -30, "Brightline Website Relaunch"},
		{8000, models.InvoiceStatusSent, 14, "Oak & Iron Brand Refresh"},
		{5500, models.InvoiceStatusViewed, 7, "Harbor Labs Product Launch"},
		{15000, models.InvoiceStatusOverdue, -5, "Spring Catalog 2026"},
		{9500, models.InvoiceStatusDraft, 30, "Brightline Mobile App"},
	}
	for _, spec := range invoiceSpecs {
		number, err := utils.GenerateReference("INV")
		if err != nil {
			return fmt.Errorf("failed to generate invoice number: %w", err)
		}
		invoice := models.Invoice{
			Number:      number,
			Amount:      spec.amount,
			Status:      spec.status,
			DueDate:     due(spec.dueIn),
			ProjectName: spec.project,
		}
		if err := db.Create(&invoice).Error; err != nil {
			return fmt.Errorf("failed to seed invoices: %w", err)
		}
	}

	approvals := []models.ApprovalRequest{
		{Requester: "David Kim", Item: "Budget increase for Brightline relaunch", Risk: models.RiskHigh},
		{Requester: "John Doe", Item: "New stock photo subscription", Risk: models.RiskLow},
		{Requester: "Maria Santos", Item: "Scope change on Harbor Labs launch", Risk: models.RiskMedium},
	}
	if err := db.Create(&approvals).Error; err != nil {
		return fmt.Errorf("failed to seed approvals: %w", err)
	}

	blogPosts := []models.BlogPost{
		{Title: "Designing for Dark Mode", Category: "Design", Status: models.ContentStatusPublished, Author: "Sarah Chen"},
		{Title: "Our 2026 Brand Predictions", Category: "Branding", Status: models.ContentStatusPublished, Author: "David Kim"},
		{Title: "Behind the Brightline Relaunch", Category: "Case Study", Status: models.ContentStatusDraft, Author: "John Doe"},
		{Title: "Typography That Converts", Category: "Design", Status: models.ContentStatusArchived, Author: "Sarah Chen"},
	}
	if err := db.Create(&blogPosts).Error; err != nil {
		return fmt.Errorf("failed to seed blog posts: %w", err)
	}

	portfolio := []models.PortfolioItem{
		{Title: "Oak & Iron Identity", Client: "Oak & Iron", Category: "Branding", Status: models.ContentStatusPublished},
		{Title: "Harbor Labs Microsite", Client: "Harbor Labs", Category: "Web Design", Status: models.ContentStatusPublished},
		{Title: "Brightline App Concept", Client: "Brightline", Category: "App Design", Status: models.ContentStatusDraft},
		{Title: "Spring Catalog", Client: "Oak & Iron", Category: "Print", Status: models.ContentStatusPublished},
	}
	if err := db.Create(&portfolio).Error; err != nil {
		return fmt.Errorf("failed to seed portfolio: %w", err)
	}

	media := []models.MediaAsset{
		{Name: "hero-banner.png", Type: "image", SizeBytes: 2_400_000, UploadedAt: now.AddDate(0, 0, -12)},
		{Name: "brand-reel.mp4", Type: "video", SizeBytes: 84_000_000, UploadedAt: now.AddDate(0, 0, -8)},
		{Name: "style-guide.pdf", Type: "document", SizeBytes: 6_100_000, UploadedAt: now.AddDate(0, 0, -3)},
	}
	if err := db.Create(&media).Error; err != nil {
		return fmt.Errorf("failed to seed media: %w", err)
	}

	activity := []models.ActivityEntry{
		{Title: "Completed Q3 campaign assets", Actor: "David Kim", Type: models.ActivityTypeTask},
		{Title: "Published Designing for Dark Mode", Actor: "Sarah Chen", Type: models.ActivityTypeContent},
		{Title: "Requested budget increase", Actor: "David Kim", Type: models.ActivityTypeApproval},
		{Title: "Moved retouching task to review", Actor: "John Doe", Type: models.ActivityTypeTask},
		{Title: "Nightly backup finished", Actor: "system", Type: models.ActivityTypeSystem},
		{Title: "Added Spring Catalog to portfolio", Actor: "Sarah Chen", Type: models.ActivityTypeContent},
	}
	if err := db.Create(&activity).Error; err != nil {
		return fmt.Errorf("failed to seed activity: %w", err)
	}

	schedule := []models.ScheduleItem{
		{Title: "Brightline weekly sync", StartsAt: now.AddDate(0, 0, 1), Type: models.ScheduleTypeMeeting},
		{Title: "Homepage mockups due", StartsAt: now.AddDate(0, 0, 3), Type: models.ScheduleTypeDeadline},
		{Title: "Catalog retouching review", StartsAt: now.AddDate(0, 0, 2), Type: models.ScheduleTypeReview},
		{Title: "Figma workshop", StartsAt: now.AddDate(0, 0, 7), Type: models.ScheduleTypeTraining},
	}
	if err := db.Create(&schedule).Error; err != nil {
		return fmt.Errorf("failed to seed schedule: %w", err)
	}

	submissions := []models.Submission{
		{TaskTitle: "Q3 campaign assets", Note: "Final banner set uploaded to the shared drive.", SubmittedBy: "David Kim", Status: models.SubmissionStatusReviewed},
		{TaskTitle: "Product photo retouching", Note: "First batch of 20 shots ready for review.", SubmittedBy: "John Doe", Status: models.SubmissionStatusSubmitted},
	}
	if err := db.Create(&submissions).Error; err != nil {
		return fmt.Errorf("failed to seed submissions: %w", err)
	}

	messages := []models.Message{
		{From: "Sarah Chen", Subject: "Relaunch timeline update", Body: "The homepage mockups are on track for Friday.", Read: true},
		{From: "Accounts", Subject: "Invoice reminder", Body: "Invoice for the Spring Catalog is now overdue.", Read: false},
		{From: "David Kim", Subject: "Brand refresh check-in", Body: "Sharing the first round of logo explorations.", Read: false},
	}
	if err := db.Create(&messages).Error; err != nil {
		return fmt.Errorf("failed to seed messages: %w", err)
	}

	announcements := []models.Announcement{
		{Title: "Office closed next Monday", Body: "Public holiday; support rota is in the wiki."},
		{Title: "New submission flow", Body: "File work submissions from the dashboard instead of email."},
		{Title: "Q3 all-hands", Body: "Quarterly review on the 15th, 10:00 in the main room."},
	}
	if err := db.Create(&announcements).Error; err != nil {
		return fmt.Errorf("failed to seed announcements: %w", err)
	}

	revenue := []models.RevenuePoint{
		{Month: "Jan", Revenue: 38500},
		{Month: "Feb", Revenue: 41200},
		{Month: "Mar", Revenue: 39800},
		{Month: "Apr", Revenue: 45600},
		{Month: "May", Revenue: 47100},
		{Month: "Jun", Revenue: 44300},
		{Month: "Jul", Revenue: 49800},
		{Month: "Aug", Revenue: 52400},
	}
	if err := db.Create(&revenue).Error; err != nil {
		return fmt.Errorf("failed to seed revenue series: %w", err)
	}

	growth := []models.GrowthPoint{
		{Month: "Jan", Users: 120, NewClients: 4},
		{Month: "Feb", Users: 132, NewClients: 5},
		{Month: "Mar", Users: 141, NewClients: 3},
		{Month: "Apr", Users: 158, NewClients: 7},
		{Month: "May", Users: 170, NewClients: 6},
		{Month: "Jun", Users: 181, NewClients: 4},
		{Month: "Jul", Users: 197, NewClients: 8},
		{Month: "Aug", Users: 214, NewClients: 9},
	}
	if err := db.Create(&growth).Error; err != nil {
		return fmt.Errorf("failed to seed growth series: %w", err)
	}

	return nil
}
