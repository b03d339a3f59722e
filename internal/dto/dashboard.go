package dto

// AdminStats are the stat cards on the admin overview.
type AdminStats struct {
	TotalUsers       int64   `json:"total_users"`
	ActiveProjects   int64   `json:"active_projects"`
	MonthlyRevenue   float64 `json:"monthly_revenue"`
	RevenueGrowthPct float64 `json:"revenue_growth_pct"`
	PendingApprovals int64   `json:"pending_approvals"`
	BlogPosts        int64   `json:"blog_posts"`
}

// ClientStats are the stat cards on the client overview.
type ClientStats struct {
	ActiveProjects    int64   `json:"active_projects"`
	OutstandingAmount float64 `json:"outstanding_amount"`
	UnreadMessages    int64   `json:"unread_messages"`
}

// EmployeeStats are the stat cards on the employee overview.
type EmployeeStats struct {
	OpenTasks      int64 `json:"open_tasks"`
	CompletedTasks int64 `json:"completed_tasks"`
	InReview       int64 `json:"in_review"`
	DueToday       int64 `json:"due_today"`
}

// ChartSeries is a chart-ready series: the raw points plus the bounds the
// client uses for scale normalization.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
}

// GrowthSeries pairs the two user-growth metrics.
type GrowthSeries struct {
	Users      ChartSeries `json:"users"`
	NewClients ChartSeries `json:"new_clients"`
}

// SystemHealth is the admin system snapshot.
type SystemHealth struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	UptimeSeconds uint64  `json:"uptime_seconds"`
	Goroutines    int     `json:"goroutines"`
	StoreOK       bool    `json:"store_ok"`
}
