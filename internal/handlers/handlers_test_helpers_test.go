package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/database"
	"github.com/pixelforge/studio-console/internal/middleware"
	"github.com/pixelforge/studio-console/internal/models"
	"github.com/pixelforge/studio-console/internal/repository"
	"github.com/pixelforge/studio-console/internal/services"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

// newTestServer wires the full route tree against an isolated in-memory
// store, mirroring the production setup minus metrics.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	contentRepo := repository.NewContentRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	feedRepo := repository.NewFeedRepository(db)
	seriesRepo := repository.NewSeriesRepository(db)

	sessionService := services.NewSessionService()
	taskService := services.NewTaskService(taskRepo, activityRepo, feedRepo)
	approvalService := services.NewApprovalService(approvalRepo, activityRepo)
	contentService := services.NewContentService(contentRepo, activityRepo)
	analyticsService := services.NewAnalyticsService(
		userRepo, taskRepo, projectRepo, invoiceRepo,
		approvalRepo, contentRepo, feedRepo, seriesRepo,
	)
	healthService := services.NewHealthService(db)

	authHandler := NewAuthHandler(sessionService)
	adminHandler := NewAdminHandler(
		analyticsService, approvalService, contentService, healthService,
		userRepo, projectRepo, contentRepo, activityRepo,
	)
	clientHandler := NewClientHandler(analyticsService, projectRepo, invoiceRepo, feedRepo)
	employeeHandler := NewEmployeeHandler(analyticsService, taskService, feedRepo)

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("studio_session", store))
	r.Use(middleware.RestoreIdentity(sessionService))

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/employee-login", authHandler.EmployeeLogin)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me)

	admin := api.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/projects", adminHandler.ListProjects)
	admin.GET("/blog", adminHandler.ListBlogPosts)
	admin.POST("/blog", adminHandler.CreateBlogPost)
	admin.GET("/portfolio", adminHandler.ListPortfolioItems)
	admin.POST("/portfolio", adminHandler.CreatePortfolioItem)
	admin.GET("/activity", adminHandler.Activity)
	admin.GET("/approvals", adminHandler.ListApprovals)
	admin.POST("/approvals/:id/approve", adminHandler.ApproveRequest)
	admin.POST("/approvals/:id/reject", adminHandler.RejectRequest)

	client := api.Group("/client")
	client.Use(middleware.RequireRole(models.RoleClient))
	client.GET("/stats", clientHandler.Stats)
	client.GET("/invoices", clientHandler.Invoices)

	employee := api.Group("/employee")
	employee.Use(middleware.RequireRole(models.RoleEmployee))
	employee.GET("/tasks", employeeHandler.Tasks)
	employee.POST("/tasks/:id/advance", employeeHandler.AdvanceTask)
	employee.POST("/submissions", employeeHandler.CreateSubmission)

	return &testServer{router: r, db: db}
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, email string, role models.Role) []*http.Cookie {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": email,
		"role":  string(role),
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
