package services

import (
	"fmt"

	"github.com/pixelforge/studio-console/internal/dto"
	"github.com/pixelforge/studio-console/internal/models"
	"github.com/pixelforge/studio-console/internal/repository"
)

// AnalyticsService reduces the raw time-series collections into chart-ready
// series and assembles the per-role stat cards. It is read-only.
type AnalyticsService struct {
	userRepo     repository.UserRepository
	taskRepo     repository.TaskRepository
	projectRepo  repository.ProjectRepository
	invoiceRepo  repository.InvoiceRepository
	approvalRepo repository.ApprovalRepository
	contentRepo  repository.ContentRepository
	feedRepo     repository.FeedRepository
	seriesRepo   repository.SeriesRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	invoiceRepo repository.InvoiceRepository,
	approvalRepo repository.ApprovalRepository,
	contentRepo repository.ContentRepository,
	feedRepo repository.FeedRepository,
	seriesRepo repository.SeriesRepository,
) *AnalyticsService {
	return &AnalyticsService{
		userRepo:     userRepo,
		taskRepo:     taskRepo,
		projectRepo:  projectRepo,
		invoiceRepo:  invoiceRepo,
		approvalRepo: approvalRepo,
		contentRepo:  contentRepo,
		feedRepo:     feedRepo,
		seriesRepo:   seriesRepo,
	}
}

// seriesBounds returns the minimum and maximum of a series. Zero-length
// series yield zero bounds rather than a panic or division downstream.
func seriesBounds(values []float64) (min, max float64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// growthPercent computes the percentage delta from prev to curr. A zero
// previous value yields 0 instead of dividing by zero.
func growthPercent(prev, curr float64) float64 {
	if prev == 0 {
		return 0
	}
	return (curr - prev) / prev * 100
}

func toChartSeries(labels []string, values []float64) dto.ChartSeries {
	min, max := seriesBounds(values)
	return dto.ChartSeries{
		Labels: labels,
		Values: values,
		Min:    min,
		Max:    max,
	}
}

// RevenueSeries returns the monthly revenue series with bounds.
func (s *AnalyticsService) RevenueSeries() (dto.ChartSeries, error) {
	points, err := s.seriesRepo.RevenueSeries()
	if err != nil {
		return dto.ChartSeries{}, fmt.Errorf("failed to load revenue series: %w", err)
	}

	labels := make([]string, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Month
		values[i] = p.Revenue
	}

	return toChartSeries(labels, values), nil
}

// UserGrowthSeries returns the monthly user and new-client series with bounds.
func (s *AnalyticsService) UserGrowthSeries() (dto.GrowthSeries, error) {
	points, err := s.seriesRepo.GrowthSeries()
	if err != nil {
		return dto.GrowthSeries{}, fmt.Errorf("failed to load growth series: %w", err)
	}

	labels := make([]string, len(points))
	users := make([]float64, len(points))
	clients := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Month
		users[i] = float64(p.Users)
		clients[i] = float64(p.NewClients)
	}

	return dto.GrowthSeries{
		Users:      toChartSeries(labels, users),
		NewClients: toChartSeries(labels, clients),
	}, nil
}

// AdminStats assembles the admin overview stat cards. Monthly revenue is the
// latest point of the revenue series; its growth is month-over-month and
// defaults to 0 when the series is shorter than two points.
func (s *AnalyticsService) AdminStats() (dto.AdminStats, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return dto.AdminStats{}, fmt.Errorf("failed to count users: %w", err)
	}

	activeProjects, err := s.projectRepo.CountActive()
	if err != nil {
		return dto.AdminStats{}, fmt.Errorf("failed to count projects: %w", err)
	}

	pending, err := s.approvalRepo.PendingCount()
	if err != nil {
		return dto.AdminStats{}, fmt.Errorf("failed to count approvals: %w", err)
	}

	posts, err := s.contentRepo.CountBlogPosts()
	if err != nil {
		return dto.AdminStats{}, fmt.Errorf("failed to count blog posts: %w", err)
	}

	revenue, err := s.seriesRepo.RevenueSeries()
	if err != nil {
		return dto.AdminStats{}, fmt.Errorf("failed to load revenue series: %w", err)
	}

	var monthly, growth float64
	if n := len(revenue); n > 0 {
		monthly = revenue[n-1].Revenue
		if n > 1 {
			growth = growthPercent(revenue[n-2].Revenue, monthly)
		}
	}

	return dto.AdminStats{
		TotalUsers:       totalUsers,
		ActiveProjects:   activeProjects,
		MonthlyRevenue:   monthly,
		RevenueGrowthPct: growth,
		PendingApprovals: pending,
		BlogPosts:        posts,
	}, nil
}

// ClientStats assembles the client overview stat cards.
func (s *AnalyticsService) ClientStats() (dto.ClientStats, error) {
	activeProjects, err := s.projectRepo.CountActive()
	if err != nil {
		return dto.ClientStats{}, fmt.Errorf("failed to count projects: %w", err)
	}

	outstanding, err := s.invoiceRepo.OutstandingTotal()
	if err != nil {
		return dto.ClientStats{}, fmt.Errorf("failed to sum invoices: %w", err)
	}

	unread, err := s.feedRepo.UnreadMessageCount()
	if err != nil {
		return dto.ClientStats{}, fmt.Errorf("failed to count messages: %w", err)
	}

	return dto.ClientStats{
		ActiveProjects:    activeProjects,
		OutstandingAmount: outstanding,
		UnreadMessages:    unread,
	}, nil
}

// EmployeeStats assembles the employee overview stat cards.
func (s *AnalyticsService) EmployeeStats() (dto.EmployeeStats, error) {
	open, err := s.taskRepo.CountByStatus(models.TaskStatusNew)
	if err != nil {
		return dto.EmployeeStats{}, fmt.Errorf("failed to count tasks: %w", err)
	}
	inProgress, err := s.taskRepo.CountByStatus(models.TaskStatusInProgress)
	if err != nil {
		return dto.EmployeeStats{}, fmt.Errorf("failed to count tasks: %w", err)
	}
	completed, err := s.taskRepo.CountByStatus(models.TaskStatusCompleted)
	if err != nil {
		return dto.EmployeeStats{}, fmt.Errorf("failed to count tasks: %w", err)
	}
	review, err := s.taskRepo.CountByStatus(models.TaskStatusReview)
	if err != nil {
		return dto.EmployeeStats{}, fmt.Errorf("failed to count tasks: %w", err)
	}
	dueToday, err := s.taskRepo.CountDueToday()
	if err != nil {
		return dto.EmployeeStats{}, fmt.Errorf("failed to count due tasks: %w", err)
	}

	return dto.EmployeeStats{
		OpenTasks:      open + inProgress,
		CompletedTasks: completed,
		InReview:       review,
		DueToday:       dueToday,
	}, nil
}
