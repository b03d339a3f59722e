package models

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

// ApprovalRequest sits in the admin approval queue. Decided requests are kept
// with a terminal status so the audit trail survives the decision; pending
// listings filter on status. Risk is informational and never gates a decision.
type ApprovalRequest struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Requester string         `gorm:"type:varchar(255);not null" json:"requester"`
	Item      string         `gorm:"type:varchar(255);not null" json:"item"`
	Risk      RiskLevel      `gorm:"type:varchar(20);not null;default:'Low'" json:"risk"`
	Status    ApprovalStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	DecidedAt *time.Time     `json:"decided_at,omitempty"`
	DecidedBy string         `gorm:"type:varchar(255)" json:"decided_by,omitempty"`
}
