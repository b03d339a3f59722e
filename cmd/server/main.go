package main

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pixelforge/studio-console/internal/config"
	"github.com/pixelforge/studio-console/internal/database"
	"github.com/pixelforge/studio-console/internal/handlers"
	"github.com/pixelforge/studio-console/internal/logging"
	"github.com/pixelforge/studio-console/internal/metrics"
	"github.com/pixelforge/studio-console/internal/middleware"
	"github.com/pixelforge/studio-console/internal/models"
	"github.com/pixelforge/studio-console/internal/repository"
	"github.com/pixelforge/studio-console/internal/services"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg)

	gin.SetMode(cfg.GinMode)

	db, err := database.Open(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to open database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}
	if err := database.Seed(db); err != nil {
		log.WithError(err).Fatal("Failed to seed baseline data")
	}
	log.WithField("dsn", cfg.DatabaseDSN).Info("Store ready")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	contentRepo := repository.NewContentRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	feedRepo := repository.NewFeedRepository(db)
	seriesRepo := repository.NewSeriesRepository(db)

	// Services
	sessionService := services.NewSessionService()
	taskService := services.NewTaskService(taskRepo, activityRepo, feedRepo)
	approvalService := services.NewApprovalService(approvalRepo, activityRepo)
	contentService := services.NewContentService(contentRepo, activityRepo)
	analyticsService := services.NewAnalyticsService(
		userRepo, taskRepo, projectRepo, invoiceRepo,
		approvalRepo, contentRepo, feedRepo, seriesRepo,
	)
	healthService := services.NewHealthService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(sessionService)
	adminHandler := handlers.NewAdminHandler(
		analyticsService, approvalService, contentService, healthService,
		userRepo, projectRepo, contentRepo, activityRepo,
	)
	clientHandler := handlers.NewClientHandler(analyticsService, projectRepo, invoiceRepo, feedRepo)
	employeeHandler := handlers.NewEmployeeHandler(analyticsService, taskService, feedRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())

	// The cookie store is the single persisted record: the serialized
	// identity survives restarts, the in-memory store does not.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // Lax
	})
	r.Use(sessions.Sessions("studio_session", store))
	r.Use(middleware.RestoreIdentity(sessionService))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Studio console API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/employee-login", authHandler.EmployeeLogin)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/stats", adminHandler.Stats)
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/projects", adminHandler.ListProjects)
			admin.GET("/blog", adminHandler.ListBlogPosts)
			admin.POST("/blog", adminHandler.CreateBlogPost)
			admin.GET("/portfolio", adminHandler.ListPortfolioItems)
			admin.POST("/portfolio", adminHandler.CreatePortfolioItem)
			admin.GET("/media", adminHandler.ListMediaAssets)
			admin.GET("/activity", adminHandler.Activity)
			admin.GET("/approvals", adminHandler.ListApprovals)
			admin.POST("/approvals/:id/approve", adminHandler.ApproveRequest)
			admin.POST("/approvals/:id/reject", adminHandler.RejectRequest)
			admin.GET("/analytics/revenue", adminHandler.RevenueSeries)
			admin.GET("/analytics/growth", adminHandler.GrowthSeries)
			admin.GET("/system-health", adminHandler.SystemHealth)
		}

		client := api.Group("/client")
		client.Use(middleware.RequireRole(models.RoleClient))
		{
			client.GET("/stats", clientHandler.Stats)
			client.GET("/projects", clientHandler.Projects)
			client.GET("/invoices", clientHandler.Invoices)
			client.GET("/messages", clientHandler.Messages)
		}

		employee := api.Group("/employee")
		employee.Use(middleware.RequireRole(models.RoleEmployee))
		{
			employee.GET("/stats", employeeHandler.Stats)
			employee.GET("/tasks", employeeHandler.Tasks)
			employee.POST("/tasks/:id/advance", employeeHandler.AdvanceTask)
			employee.GET("/submissions", employeeHandler.Submissions)
			employee.POST("/submissions", employeeHandler.CreateSubmission)
			employee.GET("/schedule", employeeHandler.Schedule)
			employee.GET("/announcements", employeeHandler.Announcements)
		}
	}

	log.WithFields(logrus.Fields{"addr": cfg.Addr}).Info("Server starting")
	if err := r.Run(cfg.Addr); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
