// file: internals/features/billing/invoices/service/reconcile.go
package service

import (
	"math"
	"time"

	invoiceModel "kosku_backend/internals/features/billing/invoices/model"
	settingsModel "kosku_backend/internals/features/dorm/settings/model"
)

/* =======================================================
   RECONCILIATION PASS (murni, per-invoice)
   Jalan oportunistik sebelum setiap "list invoice periode"
   — tidak ada scheduler background; staleness dibatasi
   seberapa sering halaman periode dibuka.
======================================================= */

// ApplySlipPolicy: slip terlampir → verifying, dari pending ATAU overdue.
// Verifying tidak pernah balik otomatis ke pending/overdue.
func ApplySlipPolicy(inv *invoiceModel.InvoiceModel) bool {
	if inv.InvoiceSlipURL == nil || *inv.InvoiceSlipURL == "" {
		return false
	}
	switch inv.InvoiceStatus {
	case invoiceModel.InvoiceStatusPending, invoiceModel.InvoiceStatusOverdue:
		inv.InvoiceStatus = invoiceModel.InvoiceStatusVerifying
		return true
	}
	return false
}

// ApplyDueDatePolicy: pending → overdue saat today > due_date.
// Granularitas HARI: due_date tersimpan sebagai date (midnight UTC),
// jadi jam dinding dibuang dulu — sepanjang hari jatuh tempo invoice
// masih pending/boleh bayar, baru lewat tengah malam jadi overdue.
// Idempoten — sudah overdue = no-op.
func ApplyDueDatePolicy(inv *invoiceModel.InvoiceModel, today time.Time) bool {
	if inv.InvoiceStatus != invoiceModel.InvoiceStatusPending {
		return false
	}
	if !dateOf(today).After(inv.InvoiceDueDate) {
		return false
	}
	inv.InvoiceStatus = invoiceModel.InvoiceStatusOverdue
	return true
}

// dateOf membuang komponen jam — semua kolom tanggal invoice bertipe date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AccrueLateFee: isi denda keterlambatan untuk invoice yang masih
// pending/overdue. Denda beku begitu slip masuk (verifying) atau status
// terminal. Hari denda dihitung inklusif sejak late_fee_start_date.
func AccrueLateFee(inv *invoiceModel.InvoiceModel, today time.Time) bool {
	switch inv.InvoiceStatus {
	case invoiceModel.InvoiceStatusPending, invoiceModel.InvoiceStatusOverdue:
	default:
		return false
	}
	if inv.InvoiceLateFeePerDay <= 0 || inv.InvoiceLateFeeStartDate == nil {
		return false
	}
	start := *inv.InvoiceLateFeeStartDate
	if today.Before(start) {
		return false
	}

	days := int(today.Sub(start).Hours()/24) + 1
	want := float64(days) * inv.InvoiceLateFeePerDay
	if math.Abs(want-inv.InvoiceLateFeeAmount) < MoneyEpsilon {
		return false
	}
	inv.InvoiceLateFeeAmount = want
	RecomputeTotals(inv)
	return true
}

// ResyncDiscounts: evaluasi ulang rule diskon terhadap USAGE TERSIMPAN di
// invoice (tidak re-fetch meteran), dan koreksi kalau drift > epsilon.
// Invoice paid/cancelled tidak pernah disentuh — tidak ada koreksi
// retroaktif. Breakdown dan total selalu diperbarui bersama.
func ResyncDiscounts(inv *invoiceModel.InvoiceModel, discounts []settingsModel.Rule) (bool, error) {
	if inv.InvoiceStatus.IsTerminal() {
		return false, nil
	}

	lines, total := EvaluateRules(discounts, inv.InvoiceElectricityUsage, inv.InvoiceWaterUsage)

	drifted := math.Abs(total-inv.InvoiceDiscountTotal) >= MoneyEpsilon
	if !drifted {
		// total cocok; cek juga total invoice (bisa drift karena edit manual)
		if TotalsConsistent(inv) {
			return false, nil
		}
	}

	items, err := invoiceModel.EncodeLines(lines)
	if err != nil {
		return false, err
	}
	inv.InvoiceDiscountItems = items
	inv.InvoiceDiscountTotal = total
	RecomputeTotals(inv)
	return true, nil
}

// ReconcileInvoice menjalankan seluruh pass untuk satu invoice.
// Urutan: slip dulu (menang atas overdue), lalu due-date, denda, diskon.
func ReconcileInvoice(inv *invoiceModel.InvoiceModel, discounts []settingsModel.Rule, today time.Time) (bool, error) {
	if inv.InvoiceStatus.IsTerminal() {
		return false, nil
	}

	changed := ApplySlipPolicy(inv)
	if ApplyDueDatePolicy(inv, today) {
		changed = true
	}
	if AccrueLateFee(inv, today) {
		changed = true
	}
	resynced, err := ResyncDiscounts(inv, discounts)
	if err != nil {
		return changed, err
	}
	return changed || resynced, nil
}
