package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/pixelforge/studio-console/internal/errors"
	"github.com/pixelforge/studio-console/internal/repository"
	"github.com/pixelforge/studio-console/internal/services"
)

// ClientHandler serves the client dashboard read surface.
type ClientHandler struct {
	analytics   *services.AnalyticsService
	projectRepo repository.ProjectRepository
	invoiceRepo repository.InvoiceRepository
	feedRepo    repository.FeedRepository
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(
	analytics *services.AnalyticsService,
	projectRepo repository.ProjectRepository,
	invoiceRepo repository.InvoiceRepository,
	feedRepo repository.FeedRepository,
) *ClientHandler {
	return &ClientHandler{
		analytics:   analytics,
		projectRepo: projectRepo,
		invoiceRepo: invoiceRepo,
		feedRepo:    feedRepo,
	}
}

// Stats returns the client overview stat cards.
func (h *ClientHandler) Stats(c *gin.Context) {
	stats, err := h.analytics.ClientStats()
	if err != nil {
		apierrors.InternalError(c, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Projects returns the client's project list.
func (h *ClientHandler) Projects(c *gin.Context) {
	projects, err := h.projectRepo.List(repository.ProjectFilter{})
	if err != nil {
		apierrors.InternalError(c, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Invoices returns the client's invoice list.
func (h *ClientHandler) Invoices(c *gin.Context) {
	invoices, err := h.invoiceRepo.List(nil)
	if err != nil {
		apierrors.InternalError(c, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// Messages returns the client's inbox, most recent first.
func (h *ClientHandler) Messages(c *gin.Context) {
	messages, err := h.feedRepo.ListMessages()
	if err != nil {
		apierrors.InternalError(c, "Failed to list messages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
