// file: internals/features/billing/invoices/model/invoice_model_test.go
package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Unique (room, period_start) harus PARSIAL atas baris hidup: invoice yang
// di-soft-delete masih punya pasangan (room, period) yang sama, dan tanpa
// predikat ini generate ulang akan kena conflict terhadap baris mati —
// kamar diam-diam tidak pernah tertagih lagi.
func TestInvoiceUniqueIndexIgnoresSoftDeleted(t *testing.T) {
	f, ok := reflect.TypeOf(InvoiceModel{}).FieldByName("InvoiceRoomID")
	require.True(t, ok)

	tag := f.Tag.Get("gorm")
	assert.Contains(t, tag, "uniqueIndex:uniq_invoice_room_period")
	assert.Contains(t, tag, "where:invoice_deleted_at IS NULL")
}

func TestInvoiceStatusTerminal(t *testing.T) {
	assert.True(t, InvoiceStatusPaid.IsTerminal())
	assert.True(t, InvoiceStatusCancelled.IsTerminal())
	assert.False(t, InvoiceStatusPending.IsTerminal())
	assert.False(t, InvoiceStatusVerifying.IsTerminal())
}
