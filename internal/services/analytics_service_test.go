package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelforge/studio-console/internal/models"
	"github.com/pixelforge/studio-console/internal/repository"
)

func newAnalyticsService(t *testing.T) (*AnalyticsService, *testEnv) {
	t.Helper()

	db := openTestDB(t)
	svc := NewAnalyticsService(
		repository.NewUserRepository(db),
		repository.NewTaskRepository(db),
		repository.NewProjectRepository(db),
		repository.NewInvoiceRepository(db),
		repository.NewApprovalRepository(db),
		repository.NewContentRepository(db),
		repository.NewFeedRepository(db),
		repository.NewSeriesRepository(db),
	)
	return svc, &testEnv{db: db}
}

func TestSeriesBounds(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		min    float64
		max    float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{42}, 42, 42},
		{"ascending", []float64{1, 2, 3}, 1, 3},
		{"mixed", []float64{5, -2, 9, 0}, -2, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := seriesBounds(tt.values)
			require.Equal(t, tt.min, min)
			require.Equal(t, tt.max, max)
		})
	}
}

func TestGrowthPercent(t *testing.T) {
	require.Equal(t, 0.0, growthPercent(0, 100))
	require.InDelta(t, 10.0, growthPercent(100, 110), 0.001)
	require.InDelta(t, -25.0, growthPercent(200, 150), 0.001)
}

func TestAnalyticsService_RevenueSeries(t *testing.T) {
	svc, env := newAnalyticsService(t)

	points := []models.RevenuePoint{
		{Month: "Jan", Revenue: 100},
		{Month: "Feb", Revenue: 300},
		{Month: "Mar", Revenue: 200},
	}
	require.NoError(t, env.db.Create(&points).Error)

	series, err := svc.RevenueSeries()
	require.NoError(t, err)
	require.Equal(t, []string{"Jan", "Feb", "Mar"}, series.Labels)
	require.Equal(t, []float64{100, 300, 200}, series.Values)
	require.Equal(t, 100.0, series.Min)
	require.Equal(t, 300.0, series.Max)
}

func TestAnalyticsService_AdminStatsEmptySeries(t *testing.T) {
	svc, _ := newAnalyticsService(t)

	// No seed data at all: stats must come back zeroed, not panic
	stats, err := svc.AdminStats()
	require.NoError(t, err)
	require.Zero(t, stats.MonthlyRevenue)
	require.Zero(t, stats.RevenueGrowthPct)
	require.Zero(t, stats.TotalUsers)
}

func TestAnalyticsService_AdminStatsSinglePoint(t *testing.T) {
	svc, env := newAnalyticsService(t)

	require.NoError(t, env.db.Create(&models.RevenuePoint{Month: "Aug", Revenue: 52400}).Error)

	stats, err := svc.AdminStats()
	require.NoError(t, err)
	require.Equal(t, 52400.0, stats.MonthlyRevenue)
	require.Zero(t, stats.RevenueGrowthPct)
}

func TestAnalyticsService_AdminStatsGrowth(t *testing.T) {
	svc, env := newAnalyticsService(t)

	points := []models.RevenuePoint{
		{Month: "Jul", Revenue: 50000},
		{Month: "Aug", Revenue: 55000},
	}
	require.NoError(t, env.db.Create(&points).Error)
	createApproval(t, env.db, "Budget increase")

	stats, err := svc.AdminStats()
	require.NoError(t, err)
	require.Equal(t, 55000.0, stats.MonthlyRevenue)
	require.InDelta(t, 10.0, stats.RevenueGrowthPct, 0.001)
	require.Equal(t, int64(1), stats.PendingApprovals)
}

func TestAnalyticsService_ClientStats(t *testing.T) {
	svc, env := newAnalyticsService(t)

	projects := []models.Project{
		{Name: "Relaunch", Status: models.ProjectStatusActive, Progress: 50},
		{Name: "Refresh", Status: models.ProjectStatusInProgress, Progress: 30},
		{Name: "Catalog", Status: models.ProjectStatusCompleted, Progress: 100},
	}
	require.NoError(t, env.db.Create(&projects).Error)

	invoices := []models.Invoice{
		{Number: "INV-0001", Amount: 1000, Status: models.InvoiceStatusSent},
		{Number: "INV-0002", Amount: 500, Status: models.InvoiceStatusOverdue},
		{Number: "INV-0003", Amount: 9000, Status: models.InvoiceStatusPaid},
		{Number: "INV-0004", Amount: 700, Status: models.InvoiceStatusDraft},
	}
	require.NoError(t, env.db.Create(&invoices).Error)

	messages := []models.Message{
		{From: "Sarah Chen", Subject: "Update", Read: true},
		{From: "Accounts", Subject: "Reminder", Read: false},
	}
	require.NoError(t, env.db.Create(&messages).Error)

	stats, err := svc.ClientStats()
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.ActiveProjects)
	require.Equal(t, 1500.0, stats.OutstandingAmount)
	require.Equal(t, int64(1), stats.UnreadMessages)
}

func TestAnalyticsService_EmployeeStats(t *testing.T) {
	svc, env := newAnalyticsService(t)

	createTask(t, env.db, "a", models.TaskStatusNew)
	createTask(t, env.db, "b", models.TaskStatusInProgress)
	createTask(t, env.db, "c", models.TaskStatusCompleted)
	createTask(t, env.db, "d", models.TaskStatusReview)

	stats, err := svc.EmployeeStats()
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.OpenTasks)
	require.Equal(t, int64(1), stats.CompletedTasks)
	require.Equal(t, int64(1), stats.InReview)
}
