// file: internals/features/billing/invoices/service/lifecycle_transition_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoiceModel "kosku_backend/internals/features/billing/invoices/model"
)

func TestApplyManualTransition_Paid(t *testing.T) {
	now := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)

	// paid dari status non-terminal mana pun
	for _, st := range []invoiceModel.InvoiceStatus{
		invoiceModel.InvoiceStatusDraft,
		invoiceModel.InvoiceStatusPending,
		invoiceModel.InvoiceStatusOverdue,
		invoiceModel.InvoiceStatusVerifying,
	} {
		inv := invoiceModel.InvoiceModel{InvoiceStatus: st}
		require.NoError(t, ApplyManualTransition(&inv, invoiceModel.InvoiceStatusPaid, now))
		assert.Equal(t, invoiceModel.InvoiceStatusPaid, inv.InvoiceStatus)
		require.NotNil(t, inv.InvoicePaidAt)
		assert.Equal(t, now, *inv.InvoicePaidAt)
	}
}

func TestApplyManualTransition_Cancelled(t *testing.T) {
	inv := invoiceModel.InvoiceModel{InvoiceStatus: invoiceModel.InvoiceStatusOverdue}
	require.NoError(t, ApplyManualTransition(&inv, invoiceModel.InvoiceStatusCancelled, time.Now()))
	assert.Equal(t, invoiceModel.InvoiceStatusCancelled, inv.InvoiceStatus)
	assert.Nil(t, inv.InvoicePaidAt)
}

func TestApplyManualTransition_DraftToPending(t *testing.T) {
	inv := invoiceModel.InvoiceModel{InvoiceStatus: invoiceModel.InvoiceStatusDraft}
	require.NoError(t, ApplyManualTransition(&inv, invoiceModel.InvoiceStatusPending, time.Now()))
	assert.Equal(t, invoiceModel.InvoiceStatusPending, inv.InvoiceStatus)
}

func TestApplyManualTransition_Rejected(t *testing.T) {
	now := time.Now()

	// pending hanya boleh dari draft
	inv := invoiceModel.InvoiceModel{InvoiceStatus: invoiceModel.InvoiceStatusOverdue}
	assert.ErrorIs(t, ApplyManualTransition(&inv, invoiceModel.InvoiceStatusPending, now), ErrInvalidTransition)

	// terminal tidak pernah keluar lagi
	inv = invoiceModel.InvoiceModel{InvoiceStatus: invoiceModel.InvoiceStatusPaid}
	assert.ErrorIs(t, ApplyManualTransition(&inv, invoiceModel.InvoiceStatusCancelled, now), ErrInvalidTransition)
	inv = invoiceModel.InvoiceModel{InvoiceStatus: invoiceModel.InvoiceStatusCancelled}
	assert.ErrorIs(t, ApplyManualTransition(&inv, invoiceModel.InvoiceStatusPaid, now), ErrInvalidTransition)

	// target bukan status valid
	inv = invoiceModel.InvoiceModel{InvoiceStatus: invoiceModel.InvoiceStatusPending}
	assert.ErrorIs(t, ApplyManualTransition(&inv, invoiceModel.InvoiceStatus("refunded"), now), ErrInvalidTransition)

	// target yang bukan bagian jalur manual (overdue via reconcile, bukan manual)
	inv = invoiceModel.InvoiceModel{InvoiceStatus: invoiceModel.InvoiceStatusPending}
	assert.ErrorIs(t, ApplyManualTransition(&inv, invoiceModel.InvoiceStatusOverdue, now), ErrInvalidTransition)
}
