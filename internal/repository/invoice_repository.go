package repository

import (
	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/models"
)

// GormInvoiceRepository is a GORM implementation of InvoiceRepository
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Create creates a new invoice
func (r *GormInvoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

// List retrieves invoices in insertion order, optionally filtered by status
func (r *GormInvoiceRepository) List(status *models.InvoiceStatus) ([]models.Invoice, error) {
	var invoices []models.Invoice

	query := r.db.Model(&models.Invoice{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Order("id ASC").Find(&invoices).Error; err != nil {
		return nil, err
	}

	return invoices, nil
}

// OutstandingTotal sums the amounts of invoices not yet paid. Drafts are
// excluded: they have not been issued.
func (r *GormInvoiceRepository) OutstandingTotal() (float64, error) {
	var total float64
	err := r.db.Model(&models.Invoice{}).
		Where("status IN ?", []models.InvoiceStatus{
			models.InvoiceStatusSent,
			models.InvoiceStatusViewed,
			models.InvoiceStatusOverdue,
		}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
