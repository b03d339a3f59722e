package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/metrics"
	"github.com/pixelforge/studio-console/internal/models"
	"github.com/pixelforge/studio-console/internal/repository"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskTitleRequired = errors.New("task title is required")
)

// taskProgression is the only path a task may take through its lifecycle.
// Review is terminal; there are no backward transitions and no skipping.
var taskProgression = []models.TaskStatus{
	models.TaskStatusNew,
	models.TaskStatusInProgress,
	models.TaskStatusCompleted,
	models.TaskStatusReview,
}

// nextStatus returns the status following s, or ok=false at the terminal
// state (and for statuses outside the progression, which cannot occur with
// the closed enum).
func nextStatus(s models.TaskStatus) (models.TaskStatus, bool) {
	for i, status := range taskProgression {
		if status == s && i+1 < len(taskProgression) {
			return taskProgression[i+1], true
		}
	}
	return s, false
}

// TaskService handles task business logic, including the lifecycle engine
// and employee work submissions.
type TaskService struct {
	taskRepo     repository.TaskRepository
	activityRepo repository.ActivityRepository
	feedRepo     repository.FeedRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, activityRepo repository.ActivityRepository, feedRepo repository.FeedRepository) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		activityRepo: activityRepo,
		feedRepo:     feedRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Client      string
	Priority    models.TaskPriority
	Description string
	Assignee    string
}

// CreateTask creates a new task in the New status.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTaskTitleRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}

	task := &models.Task{
		Title:       title,
		Client:      strings.TrimSpace(input.Client),
		Status:      models.TaskStatusNew,
		Priority:    priority,
		Description: input.Description,
		Assignee:    strings.TrimSpace(input.Assignee),
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns tasks in insertion order with the given filters applied.
func (s *TaskService) ListTasks(filter repository.TaskFilter) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Advance moves a task to the next lifecycle state. A task already in Review
// stays there; repeated calls are no-ops. The transition is recorded on the
// activity feed.
func (s *TaskService) Advance(taskID uint64, actor string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	next, ok := nextStatus(task.Status)
	if !ok {
		return task, nil
	}

	task.Status = next
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to advance task: %w", err)
	}

	metrics.TaskAdvances.WithLabelValues(string(next)).Inc()

	entry := &models.ActivityEntry{
		Title: fmt.Sprintf("Moved %q to %s", task.Title, next),
		Actor: actor,
		Type:  models.ActivityTypeTask,
	}
	if err := s.activityRepo.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to record task activity: %w", err)
	}

	return task, nil
}

// AddSubmissionInput represents input for filing a work submission
type AddSubmissionInput struct {
	TaskTitle   string
	Note        string
	SubmittedBy string
}

// AddSubmission files a work submission for the submitting employee.
func (s *TaskService) AddSubmission(input AddSubmissionInput) (*models.Submission, error) {
	title := strings.TrimSpace(input.TaskTitle)
	if title == "" {
		return nil, ErrTaskTitleRequired
	}

	submission := &models.Submission{
		TaskTitle:   title,
		Note:        input.Note,
		SubmittedBy: input.SubmittedBy,
		Status:      models.SubmissionStatusSubmitted,
	}

	if err := s.feedRepo.CreateSubmission(submission); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	return submission, nil
}

// ListSubmissions returns an employee's submission history, most recent first.
func (s *TaskService) ListSubmissions(submitter string) ([]models.Submission, error) {
	submissions, err := s.feedRepo.ListSubmissionsBy(submitter)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}
