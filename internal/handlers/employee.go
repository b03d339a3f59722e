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

// EmployeeHandler serves the employee dashboard surface.
type EmployeeHandler struct {
	analytics   *services.AnalyticsService
	taskService *services.TaskService
	feedRepo    repository.FeedRepository
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(
	analytics *services.AnalyticsService,
	taskService *services.TaskService,
	feedRepo repository.FeedRepository,
) *EmployeeHandler {
	return &EmployeeHandler{
		analytics:   analytics,
		taskService: taskService,
		feedRepo:    feedRepo,
	}
}

// Stats returns the employee overview stat cards.
func (h *EmployeeHandler) Stats(c *gin.Context) {
	stats, err := h.analytics.EmployeeStats()
	if err != nil {
		apierrors.InternalError(c, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Tasks returns the task list, filtered by ?status=, ?priority= and ?q=.
func (h *EmployeeHandler) Tasks(c *gin.Context) {
	filter := repository.TaskFilter{Query: c.Query("q")}

	if raw := c.Query("status"); raw != "" {
		status, ok := parseTaskStatus(raw)
		if !ok {
			apierrors.BadRequest(c, "Unknown task status")
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("priority"); raw != "" {
		priority, ok := parseTaskPriority(raw)
		if !ok {
			apierrors.BadRequest(c, "Unknown task priority")
			return
		}
		filter.Priority = &priority
	}

	tasks, err := h.taskService.ListTasks(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// AdvanceTask moves a task to its next lifecycle state. Advancing a task
// already in Review is a successful no-op.
func (h *EmployeeHandler) AdvanceTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	identity := middleware.CurrentIdentity(c)
	task, err := h.taskService.Advance(id, identity.Name)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to advance task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// Submissions returns the employee's work submission history.
func (h *EmployeeHandler) Submissions(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	submissions, err := h.taskService.ListSubmissions(identity.Name)
	if err != nil {
		apierrors.InternalError(c, "Failed to list submissions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

// CreateSubmission files a work submission.
func (h *EmployeeHandler) CreateSubmission(c *gin.Context) {
	type CreateSubmissionRequest struct {
		TaskTitle string `json:"task_title"`
		Note      string `json:"note"`
	}

	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	identity := middleware.CurrentIdentity(c)
	submission, err := h.taskService.AddSubmission(services.AddSubmissionInput{
		TaskTitle:   req.TaskTitle,
		Note:        req.Note,
		SubmittedBy: identity.Name,
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskTitleRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create submission")
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// Schedule returns upcoming schedule items.
func (h *EmployeeHandler) Schedule(c *gin.Context) {
	items, err := h.feedRepo.ListSchedule()
	if err != nil {
		apierrors.InternalError(c, "Failed to list schedule")
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": items})
}

// Announcements returns the employee announcement board.
func (h *EmployeeHandler) Announcements(c *gin.Context) {
	announcements, err := h.feedRepo.ListAnnouncements()
	if err != nil {
		apierrors.InternalError(c, "Failed to list announcements")
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": announcements})
}

func parseTaskStatus(raw string) (models.TaskStatus, bool) {
	status := models.TaskStatus(raw)
	switch status {
	case models.TaskStatusNew,
		models.TaskStatusInProgress,
		models.TaskStatusCompleted,
		models.TaskStatusReview:
		return status, true
	}
	return "", false
}

func parseTaskPriority(raw string) (models.TaskPriority, bool) {
	priority := models.TaskPriority(raw)
	switch priority {
	case models.TaskPriorityHigh,
		models.TaskPriorityMedium,
		models.TaskPriorityLow:
		return priority, true
	}
	return "", false
}
