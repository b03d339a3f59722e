package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelforge/studio-console/internal/models"
)

func TestInvoiceRepository_NegativeAmountRejected(t *testing.T) {
	db := openTestDB(t)
	repo := NewInvoiceRepository(db)

	err := repo.Create(&models.Invoice{Number: "INV-3f2a-91cd", Amount: -100, Status: models.InvoiceStatusSent})
	require.ErrorIs(t, err, models.ErrNegativeAmount)

	// The failed create wrote nothing
	var count int64
	require.NoError(t, db.Model(&models.Invoice{}).Count(&count).Error)
	require.Zero(t, count)

	invoice := &models.Invoice{Number: "INV-7b1e-04aa", Amount: 500, Status: models.InvoiceStatusSent}
	require.NoError(t, repo.Create(invoice))

	// Updates are checked the same way and leave the stored row untouched
	invoice.Amount = -1
	require.ErrorIs(t, db.Save(invoice).Error, models.ErrNegativeAmount)

	var stored models.Invoice
	require.NoError(t, db.First(&stored, invoice.ID).Error)
	require.Equal(t, 500.0, stored.Amount)
}

func TestInvoiceRepository_OutstandingTotal(t *testing.T) {
	db := openTestDB(t)
	repo := NewInvoiceRepository(db)

	invoices := []models.Invoice{
		{Number: "INV-0001-aaaa", Amount: 1000, Status: models.InvoiceStatusSent},
		{Number: "INV-0002-bbbb", Amount: 500, Status: models.InvoiceStatusOverdue},
		{Number: "INV-0003-cccc", Amount: 9000, Status: models.InvoiceStatusPaid},
		{Number: "INV-0004-dddd", Amount: 700, Status: models.InvoiceStatusDraft},
	}
	require.NoError(t, db.Create(&invoices).Error)

	total, err := repo.OutstandingTotal()
	require.NoError(t, err)
	require.Equal(t, 1500.0, total)
}
