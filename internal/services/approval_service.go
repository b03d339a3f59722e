package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/metrics"
	"github.com/pixelforge/studio-console/internal/models"
	"github.com/pixelforge/studio-console/internal/repository"
)

var (
	ErrApprovalNotFound = errors.New("approval request not found")
	ErrApprovalDecided  = errors.New("approval request already decided")
)

// ApprovalService handles the approval workflow. A request has exactly one
// transition out of pending; decided requests keep a terminal status so the
// decision history is retained. Risk level never gates a decision.
type ApprovalService struct {
	approvalRepo repository.ApprovalRepository
	activityRepo repository.ActivityRepository
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(approvalRepo repository.ApprovalRepository, activityRepo repository.ActivityRepository) *ApprovalService {
	return &ApprovalService{
		approvalRepo: approvalRepo,
		activityRepo: activityRepo,
	}
}

// ListPending returns the undecided requests in insertion order.
func (s *ApprovalService) ListPending() ([]models.ApprovalRequest, error) {
	requests, err := s.approvalRepo.ListPending()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	return requests, nil
}

// Approve marks a pending request approved.
func (s *ApprovalService) Approve(requestID uint64, actor string) (*models.ApprovalRequest, error) {
	return s.decide(requestID, actor, models.ApprovalStatusApproved)
}

// Reject marks a pending request rejected. The record is retained, not
// deleted, so rejections leave an audit trail.
func (s *ApprovalService) Reject(requestID uint64, actor string) (*models.ApprovalRequest, error) {
	return s.decide(requestID, actor, models.ApprovalStatusRejected)
}

func (s *ApprovalService) decide(requestID uint64, actor string, outcome models.ApprovalStatus) (*models.ApprovalRequest, error) {
	request, err := s.approvalRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApprovalNotFound
		}
		return nil, fmt.Errorf("failed to find approval request: %w", err)
	}

	if request.Status != models.ApprovalStatusPending {
		return nil, ErrApprovalDecided
	}

	now := time.Now()
	request.Status = outcome
	request.DecidedAt = &now
	request.DecidedBy = actor

	if err := s.approvalRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update approval request: %w", err)
	}

	metrics.ApprovalDecisions.WithLabelValues(string(outcome)).Inc()

	entry := &models.ActivityEntry{
		Title: fmt.Sprintf("%s request %q from %s", decisionVerb(outcome), request.Item, request.Requester),
		Actor: actor,
		Type:  models.ActivityTypeApproval,
	}
	if err := s.activityRepo.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to record approval activity: %w", err)
	}

	return request, nil
}

func decisionVerb(outcome models.ApprovalStatus) string {
	if outcome == models.ApprovalStatusRejected {
		return "Rejected"
	}
	return "Approved"
}
