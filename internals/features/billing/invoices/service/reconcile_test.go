// file: internals/features/billing/invoices/service/reconcile_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoiceModel "kosku_backend/internals/features/billing/invoices/model"
	settingsModel "kosku_backend/internals/features/dorm/settings/model"
)

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func pendingInvoice() invoiceModel.InvoiceModel {
	lateStart := day(15)
	return invoiceModel.InvoiceModel{
		InvoiceStatus:           invoiceModel.InvoiceStatusPending,
		InvoiceDueDate:          day(10),
		InvoiceLateFeePerDay:    5,
		InvoiceLateFeeStartDate: &lateStart,
		InvoiceRentAmount:       1300,
		InvoiceTotalAmount:      1300,
	}
}

/* ===== slip policy ===== */

func TestApplySlipPolicy(t *testing.T) {
	url := "https://oss.example/slips/x.jpg"

	inv := pendingInvoice()
	inv.InvoiceSlipURL = &url
	assert.True(t, ApplySlipPolicy(&inv))
	assert.Equal(t, invoiceModel.InvoiceStatusVerifying, inv.InvoiceStatus)

	// juga dari overdue
	inv = pendingInvoice()
	inv.InvoiceStatus = invoiceModel.InvoiceStatusOverdue
	inv.InvoiceSlipURL = &url
	assert.True(t, ApplySlipPolicy(&inv))
	assert.Equal(t, invoiceModel.InvoiceStatusVerifying, inv.InvoiceStatus)

	// tanpa slip → no-op
	inv = pendingInvoice()
	assert.False(t, ApplySlipPolicy(&inv))
	assert.Equal(t, invoiceModel.InvoiceStatusPending, inv.InvoiceStatus)

	// sudah verifying → no-op (tidak dobel-transisi)
	inv = pendingInvoice()
	inv.InvoiceStatus = invoiceModel.InvoiceStatusVerifying
	inv.InvoiceSlipURL = &url
	assert.False(t, ApplySlipPolicy(&inv))
}

/* ===== due-date policy ===== */

func TestApplyDueDatePolicy(t *testing.T) {
	// lewat jatuh tempo → overdue
	inv := pendingInvoice()
	assert.True(t, ApplyDueDatePolicy(&inv, day(11)))
	assert.Equal(t, invoiceModel.InvoiceStatusOverdue, inv.InvoiceStatus)

	// idempoten
	assert.False(t, ApplyDueDatePolicy(&inv, day(12)))

	// tepat di due date → belum overdue
	inv = pendingInvoice()
	assert.False(t, ApplyDueDatePolicy(&inv, day(10)))
	assert.Equal(t, invoiceModel.InvoiceStatusPending, inv.InvoiceStatus)

	// SORE hari jatuh tempo → tetap pending; due_date adalah kolom date
	// (midnight), jam dinding tidak boleh bikin overdue sehari lebih awal
	inv = pendingInvoice()
	assert.False(t, ApplyDueDatePolicy(&inv, time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, invoiceModel.InvoiceStatusPending, inv.InvoiceStatus)

	// lewat tengah malam berikutnya → baru overdue
	inv = pendingInvoice()
	assert.True(t, ApplyDueDatePolicy(&inv, time.Date(2026, 9, 11, 0, 30, 0, 0, time.UTC)))
	assert.Equal(t, invoiceModel.InvoiceStatusOverdue, inv.InvoiceStatus)

	// verifying tidak pernah diturunkan ke overdue
	inv = pendingInvoice()
	inv.InvoiceStatus = invoiceModel.InvoiceStatusVerifying
	assert.False(t, ApplyDueDatePolicy(&inv, day(20)))
	assert.Equal(t, invoiceModel.InvoiceStatusVerifying, inv.InvoiceStatus)
}

/* ===== late fee ===== */

func TestAccrueLateFee(t *testing.T) {
	// hari inklusif: tanggal 15 = hari ke-1
	inv := pendingInvoice()
	assert.True(t, AccrueLateFee(&inv, day(15)))
	assert.Equal(t, 5.0, inv.InvoiceLateFeeAmount)
	assert.True(t, TotalsConsistent(&inv))

	// hari ke-3
	assert.True(t, AccrueLateFee(&inv, day(17)))
	assert.Equal(t, 15.0, inv.InvoiceLateFeeAmount)
	assert.Equal(t, 1315.0, inv.InvoiceTotalAmount)

	// nilai sama → no-op, tidak memutasi
	assert.False(t, AccrueLateFee(&inv, day(17)))
}

func TestAccrueLateFee_BeforeStart(t *testing.T) {
	inv := pendingInvoice()
	assert.False(t, AccrueLateFee(&inv, day(14)))
	assert.Zero(t, inv.InvoiceLateFeeAmount)
}

func TestAccrueLateFee_FrozenAfterSlip(t *testing.T) {
	// denda beku begitu slip masuk — itikad bayar menghentikan akrual
	inv := pendingInvoice()
	inv.InvoiceStatus = invoiceModel.InvoiceStatusVerifying
	inv.InvoiceLateFeeAmount = 10
	assert.False(t, AccrueLateFee(&inv, day(25)))
	assert.Equal(t, 10.0, inv.InvoiceLateFeeAmount)
}

func TestAccrueLateFee_NoRate(t *testing.T) {
	inv := pendingInvoice()
	inv.InvoiceLateFeePerDay = 0
	assert.False(t, AccrueLateFee(&inv, day(20)))
}

/* ===== discount resync ===== */

func TestResyncDiscounts_CorrectsDrift(t *testing.T) {
	inv := pendingInvoice()
	inv.InvoiceElectricityUsage = 30
	inv.InvoiceDiscountTotal = 10 // nilai lama, rule sudah berubah

	discounts := []settingsModel.Rule{
		{Label: "Hemat listrik", CalcType: settingsModel.RuleCalcElectricityUnits, Value: 1},
	}
	changed, err := ResyncDiscounts(&inv, discounts)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 30.0, inv.InvoiceDiscountTotal)
	assert.True(t, TotalsConsistent(&inv))

	// jalankan lagi → konvergen, no-op
	changed, err = ResyncDiscounts(&inv, discounts)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestResyncDiscounts_TerminalUntouched(t *testing.T) {
	// tidak ada koreksi retroaktif untuk invoice lunas/batal
	for _, st := range []invoiceModel.InvoiceStatus{
		invoiceModel.InvoiceStatusPaid,
		invoiceModel.InvoiceStatusCancelled,
	} {
		inv := pendingInvoice()
		inv.InvoiceStatus = st
		inv.InvoiceDiscountTotal = 10

		changed, err := ResyncDiscounts(&inv, []settingsModel.Rule{
			{Label: "X", CalcType: settingsModel.RuleCalcFixed, Value: 99},
		})
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 10.0, inv.InvoiceDiscountTotal)
	}
}

func TestResyncDiscounts_RepairsInconsistentTotal(t *testing.T) {
	// diskon cocok tapi total drift (mis. edit manual setengah jalan) →
	// tetap diperbaiki lewat RecomputeTotals
	inv := pendingInvoice()
	inv.InvoiceTotalAmount = 9999

	changed, err := ResyncDiscounts(&inv, nil)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1300.0, inv.InvoiceTotalAmount)
}

/* ===== full pass ===== */

func TestReconcileInvoice_SlipWinsOverOverdue(t *testing.T) {
	// slip terlampir + lewat due date → verifying, BUKAN overdue
	url := "https://oss.example/slips/x.jpg"
	inv := pendingInvoice()
	inv.InvoiceSlipURL = &url

	changed, err := ReconcileInvoice(&inv, nil, day(20))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, invoiceModel.InvoiceStatusVerifying, inv.InvoiceStatus)
	assert.Zero(t, inv.InvoiceLateFeeAmount) // beku karena sudah verifying
}

func TestReconcileInvoice_OverdueWithLateFee(t *testing.T) {
	inv := pendingInvoice()

	changed, err := ReconcileInvoice(&inv, nil, day(16))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, invoiceModel.InvoiceStatusOverdue, inv.InvoiceStatus)
	assert.Equal(t, 10.0, inv.InvoiceLateFeeAmount) // hari 15–16 inklusif
	assert.True(t, TotalsConsistent(&inv))
}

func TestReconcileInvoice_Converges(t *testing.T) {
	inv := pendingInvoice()

	_, err := ReconcileInvoice(&inv, nil, day(16))
	require.NoError(t, err)

	// pass kedua dengan input sama → tidak ada perubahan
	changed, err := ReconcileInvoice(&inv, nil, day(16))
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestReconcileInvoice_TerminalNoop(t *testing.T) {
	inv := pendingInvoice()
	inv.InvoiceStatus = invoiceModel.InvoiceStatusPaid

	changed, err := ReconcileInvoice(&inv, nil, day(30))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, inv.InvoiceStatus)
}
