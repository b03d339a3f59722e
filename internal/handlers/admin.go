package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/pixelforge/studio-console/internal/errors"
	"github.com/pixelforge/studio-console/internal/middleware"
	"github.com/pixelforge/studio-console/internal/models"
	"github.com/pixelforge/studio-console/internal/repository"
	"github.com/pixelforge/studio-console/internal/services"
)

// AdminHandler serves the admin dashboard read and mutation surface.
type AdminHandler struct {
	analytics       *services.AnalyticsService
	approvalService *services.ApprovalService
	contentService  *services.ContentService
	healthService   *services.HealthService
	userRepo        repository.UserRepository
	projectRepo     repository.ProjectRepository
	contentRepo     repository.ContentRepository
	activityRepo    repository.ActivityRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	analytics *services.AnalyticsService,
	approvalService *services.ApprovalService,
	contentService *services.ContentService,
	healthService *services.HealthService,
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	contentRepo repository.ContentRepository,
	activityRepo repository.ActivityRepository,
) *AdminHandler {
	return &AdminHandler{
		analytics:       analytics,
		approvalService: approvalService,
		contentService:  contentService,
		healthService:   healthService,
		userRepo:        userRepo,
		projectRepo:     projectRepo,
		contentRepo:     contentRepo,
		activityRepo:    activityRepo,
	}
}

// Stats returns the admin overview stat cards.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.analytics.AdminStats()
	if err != nil {
		apierrors.InternalError(c, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUsers returns the user directory, optionally search-filtered via ?q=.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	filter := repository.UserFilter{Query: c.Query("q")}

	if raw := c.Query("role"); raw != "" {
		role := models.Role(raw)
		if !role.Valid() {
			apierrors.BadRequest(c, "Unknown role filter")
			return
		}
		filter.Role = &role
	}

	users, err := h.userRepo.List(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListProjects returns projects, optionally filtered by ?status=.
func (h *AdminHandler) ListProjects(c *gin.Context) {
	filter := repository.ProjectFilter{Query: c.Query("q")}

	if raw := c.Query("status"); raw != "" {
		status, ok := parseProjectStatus(raw)
		if !ok {
			apierrors.BadRequest(c, "Unknown project status")
			return
		}
		filter.Status = &status
	}

	projects, err := h.projectRepo.List(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// ListBlogPosts returns all blog posts in insertion order.
func (h *AdminHandler) ListBlogPosts(c *gin.Context) {
	posts, err := h.contentRepo.ListBlogPosts()
	if err != nil {
		apierrors.InternalError(c, "Failed to list blog posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreateBlogPost appends a blog post.
func (h *AdminHandler) CreateBlogPost(c *gin.Context) {
	type CreateBlogPostRequest struct {
		Title    string `json:"title"`
		Category string `json:"category"`
		Status   string `json:"status"`
	}

	var req CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	identity := middleware.CurrentIdentity(c)
	post, err := h.contentService.AddBlogPost(services.AddBlogPostInput{
		Title:    req.Title,
		Category: req.Category,
		Status:   models.ContentStatus(req.Status),
		Author:   identity.Name,
	})
	if err != nil {
		respondContentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListPortfolioItems returns all portfolio items in insertion order.
func (h *AdminHandler) ListPortfolioItems(c *gin.Context) {
	items, err := h.contentRepo.ListPortfolioItems()
	if err != nil {
		apierrors.InternalError(c, "Failed to list portfolio items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreatePortfolioItem appends a portfolio item.
func (h *AdminHandler) CreatePortfolioItem(c *gin.Context) {
	type CreatePortfolioItemRequest struct {
		Title    string `json:"title"`
		Client   string `json:"client"`
		Category string `json:"category"`
		Status   string `json:"status"`
	}

	var req CreatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	identity := middleware.CurrentIdentity(c)
	item, err := h.contentService.AddPortfolioItem(services.AddPortfolioItemInput{
		Title:    req.Title,
		Client:   req.Client,
		Category: req.Category,
		Status:   models.ContentStatus(req.Status),
		Actor:    identity.Name,
	})
	if err != nil {
		respondContentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// ListMediaAssets returns the media library in insertion order.
func (h *AdminHandler) ListMediaAssets(c *gin.Context) {
	assets, err := h.contentRepo.ListMediaAssets()
	if err != nil {
		apierrors.InternalError(c, "Failed to list media assets")
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// Activity returns the most recent activity feed entries.
func (h *AdminHandler) Activity(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			apierrors.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.activityRepo.Recent(limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to list activity")
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": entries})
}

// ListApprovals returns the pending approval queue.
func (h *AdminHandler) ListApprovals(c *gin.Context) {
	requests, err := h.approvalService.ListPending()
	if err != nil {
		apierrors.InternalError(c, "Failed to list approvals")
		return
	}
	c.JSON(http.StatusOK, gin.H{"approvals": requests})
}

// ApproveRequest approves a pending request.
func (h *AdminHandler) ApproveRequest(c *gin.Context) {
	h.decideRequest(c, true)
}

// RejectRequest rejects a pending request, retaining the record.
func (h *AdminHandler) RejectRequest(c *gin.Context) {
	h.decideRequest(c, false)
}

func (h *AdminHandler) decideRequest(c *gin.Context, approve bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid approval request ID")
		return
	}

	identity := middleware.CurrentIdentity(c)

	var request *models.ApprovalRequest
	if approve {
		request, err = h.approvalService.Approve(id, identity.Name)
	} else {
		request, err = h.approvalService.Reject(id, identity.Name)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApprovalNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrApprovalDecided):
			apierrors.Conflict(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to decide approval request")
		}
		return
	}

	c.JSON(http.StatusOK, request)
}

// RevenueSeries returns the chart-ready revenue series.
func (h *AdminHandler) RevenueSeries(c *gin.Context) {
	series, err := h.analytics.RevenueSeries()
	if err != nil {
		apierrors.InternalError(c, "Failed to load revenue series")
		return
	}
	c.JSON(http.StatusOK, series)
}

// GrowthSeries returns the chart-ready user-growth series.
func (h *AdminHandler) GrowthSeries(c *gin.Context) {
	series, err := h.analytics.UserGrowthSeries()
	if err != nil {
		apierrors.InternalError(c, "Failed to load growth series")
		return
	}
	c.JSON(http.StatusOK, series)
}

// SystemHealth returns the system snapshot.
func (h *AdminHandler) SystemHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthService.Snapshot())
}

func respondContentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrCategoryRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Failed to save content")
	}
}

func parseProjectStatus(raw string) (models.ProjectStatus, bool) {
	status := models.ProjectStatus(raw)
	switch status {
	case models.ProjectStatusActive,
		models.ProjectStatusInProgress,
		models.ProjectStatusPlanning,
		models.ProjectStatusCompleted,
		models.ProjectStatusOnHold:
		return status, true
	}
	return "", false
}
