// file: internals/features/billing/invoices/service/assembler.go
package service

import (
	"math"

	invoiceModel "kosku_backend/internals/features/billing/invoices/model"
	settingsModel "kosku_backend/internals/features/dorm/settings/model"
)

// MoneyEpsilon: toleransi pembandingan nominal (floating point).
const MoneyEpsilon = 0.01

/* =======================================================
   INVOICE ASSEMBLER
   Komposisi murni: aritmetika + perakitan breakdown.
   Tidak pernah memutuskan KAPAN dijalankan.
======================================================= */

// RecomputeTotals menghitung ulang total dari komponen tersimpan.
// SATU-SATUNYA tempat invariant total ditegakkan:
//
//	total = rent + water + electricity + common_fee
//	      + additional_fees + late_fee − discount
//
// Dipanggil setelah setiap perubahan field dan sekali lagi sebelum persist
// — tidak ada rekalkulasi parsial tersebar di handler input.
func RecomputeTotals(inv *invoiceModel.InvoiceModel) {
	inv.InvoiceTotalAmount = inv.InvoiceRentAmount +
		inv.InvoiceWaterBill +
		inv.InvoiceElectricityBill +
		inv.InvoiceCommonFee +
		inv.InvoiceAdditionalFeeTotal +
		inv.InvoiceLateFeeAmount -
		inv.InvoiceDiscountTotal
}

// TotalsConsistent: cek invariant tanpa memutasi (untuk audit/test).
func TotalsConsistent(inv *invoiceModel.InvoiceModel) bool {
	want := inv.InvoiceRentAmount + inv.InvoiceWaterBill + inv.InvoiceElectricityBill +
		inv.InvoiceCommonFee + inv.InvoiceAdditionalFeeTotal + inv.InvoiceLateFeeAmount -
		inv.InvoiceDiscountTotal
	return math.Abs(want-inv.InvoiceTotalAmount) < MoneyEpsilon
}

// UsageInput: pemakaian ternormalisasi satu kamar untuk satu periode.
// Zero value = meteran tidak ada → semua utilitas 0 (degradasi, bukan fatal).
type UsageInput struct {
	Electricity float64
	Water       float64
}

// AssembleInvoice merakit invoice baru status pending untuk satu kamar.
// rentAmount sudah diputuskan pemanggil (harga bulanan penuh saat batch;
// proration hanya lewat jalur edit/preview eksplisit).
func AssembleInvoice(
	period Period,
	settings *settingsModel.SettingsModel,
	rentAmount float64,
	usage UsageInput,
	fees []settingsModel.Rule,
	discounts []settingsModel.Rule,
) (invoiceModel.InvoiceModel, error) {
	waterBill := TieredWaterBill(usage.Water, settings.SettingWaterRate, settings.SettingWaterMinUnits, settings.SettingWaterMinPrice)
	electricityBill := usage.Electricity * settings.SettingElectricityRate

	feeLines, feeTotal := EvaluateRules(fees, usage.Electricity, usage.Water)
	discLines, discTotal := EvaluateRules(discounts, usage.Electricity, usage.Water)

	feeItems, err := invoiceModel.EncodeLines(feeLines)
	if err != nil {
		return invoiceModel.InvoiceModel{}, err
	}
	discItems, err := invoiceModel.EncodeLines(discLines)
	if err != nil {
		return invoiceModel.InvoiceModel{}, err
	}

	issue := period.DayInPeriod(settings.SettingBillingDay)
	due := period.DayInPeriod(settings.SettingDueDay)
	lateStart := period.DayInPeriod(settings.SettingLateFeeStartDay)

	inv := invoiceModel.InvoiceModel{
		InvoicePeriodStart: period.Start(),
		InvoicePeriodEnd:   period.End(),
		InvoiceIssueDate:   issue,
		InvoiceDueDate:     due,

		InvoiceRentAmount:       rentAmount,
		InvoiceWaterUsage:       usage.Water,
		InvoiceWaterBill:        waterBill,
		InvoiceElectricityUsage: usage.Electricity,
		InvoiceElectricityBill:  electricityBill,
		InvoiceCommonFee:        settings.SettingCommonFee,

		InvoiceAdditionalFeeTotal: feeTotal,
		InvoiceAdditionalFeeItems: feeItems,
		InvoiceDiscountTotal:      discTotal,
		InvoiceDiscountItems:      discItems,

		// Denda 0 saat generate; diisi oleh reconciliation pass.
		InvoiceLateFeeAmount:    0,
		InvoiceLateFeePerDay:    settings.SettingLateFeePerDay,
		InvoiceLateFeeStartDate: &lateStart,

		InvoiceStatus: invoiceModel.InvoiceStatusPending,
	}
	RecomputeTotals(&inv)
	return inv, nil
}
