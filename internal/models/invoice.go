package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusViewed  InvoiceStatus = "viewed"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// ErrNegativeAmount rejects invoices that would violate the amount invariant.
var ErrNegativeAmount = errors.New("invoice amount must not be negative")

// Invoice is a billing record on the client dashboard. ProjectName is a weak
// reference to a project by display name.
type Invoice struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Number      string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"number"`
	Amount      float64       `gorm:"not null" json:"amount"`
	Status      InvoiceStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	DueDate     *time.Time    `json:"due_date"`
	ProjectName string        `gorm:"type:varchar(255)" json:"project_name"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (i *Invoice) BeforeSave(*gorm.DB) error {
	if i.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}
