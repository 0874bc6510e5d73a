// file: internals/features/billing/invoices/service/assembler_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoiceModel "kosku_backend/internals/features/billing/invoices/model"
	settingsModel "kosku_backend/internals/features/dorm/settings/model"
)

func testSettings() *settingsModel.SettingsModel {
	return &settingsModel.SettingsModel{
		SettingWaterRate:       18,
		SettingElectricityRate: 2,
		SettingCommonFee:       25,
		SettingWaterMinUnits:   10,
		SettingWaterMinPrice:   180,
		SettingBillingDay:      1,
		SettingDueDay:          10,
		SettingLateFeeStartDay: 15,
		SettingLateFeePerDay:   5,
		SettingMeterMaxValue:   9999,
	}
}

func TestRecomputeTotals(t *testing.T) {
	inv := invoiceModel.InvoiceModel{
		InvoiceRentAmount:         1300,
		InvoiceWaterBill:          270,
		InvoiceElectricityBill:    60,
		InvoiceCommonFee:          25,
		InvoiceAdditionalFeeTotal: 50,
		InvoiceLateFeeAmount:      15,
		InvoiceDiscountTotal:      100,
		InvoiceTotalAmount:        0, // sengaja salah
	}
	RecomputeTotals(&inv)
	assert.Equal(t, 1620.0, inv.InvoiceTotalAmount)
	assert.True(t, TotalsConsistent(&inv))
}

func TestTotalsConsistent_DetectsDrift(t *testing.T) {
	inv := invoiceModel.InvoiceModel{
		InvoiceRentAmount:  1000,
		InvoiceTotalAmount: 999, // drift 1 > epsilon
	}
	assert.False(t, TotalsConsistent(&inv))

	inv.InvoiceTotalAmount = 1000.005 // dalam epsilon
	assert.True(t, TotalsConsistent(&inv))
}

func TestAssembleInvoice(t *testing.T) {
	s := testSettings()
	period := Period{Year: 2026, Month: 9}
	fees := []settingsModel.Rule{
		{Label: "Wifi", CalcType: settingsModel.RuleCalcFixed, Value: 50},
	}
	discounts := []settingsModel.Rule{
		{Label: "Hemat listrik", CalcType: settingsModel.RuleCalcElectricityUnits, Value: 1},
	}

	inv, err := AssembleInvoice(period, s, 1300, UsageInput{Electricity: 30, Water: 15}, fees, discounts)
	require.NoError(t, err)

	assert.Equal(t, invoiceModel.InvoiceStatusPending, inv.InvoiceStatus)
	assert.Equal(t, 1300.0, inv.InvoiceRentAmount)
	assert.Equal(t, 270.0, inv.InvoiceWaterBill)       // 15 × 18 (di atas tier minimum)
	assert.Equal(t, 60.0, inv.InvoiceElectricityBill)  // 30 × 2
	assert.Equal(t, 25.0, inv.InvoiceCommonFee)
	assert.Equal(t, 50.0, inv.InvoiceAdditionalFeeTotal)
	assert.Equal(t, 30.0, inv.InvoiceDiscountTotal) // 30 unit × 1
	assert.Zero(t, inv.InvoiceLateFeeAmount)        // denda diisi reconcile, bukan generate
	assert.Equal(t, 5.0, inv.InvoiceLateFeePerDay)

	// tanggal-tanggal anchor dalam periode
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), inv.InvoiceIssueDate)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), inv.InvoiceDueDate)
	require.NotNil(t, inv.InvoiceLateFeeStartDate)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *inv.InvoiceLateFeeStartDate)
	assert.Equal(t, period.Start(), inv.InvoicePeriodStart)
	assert.Equal(t, period.End(), inv.InvoicePeriodEnd)

	// invariant total
	assert.Equal(t, 1675.0, inv.InvoiceTotalAmount) // 1300+270+60+25+50−30
	assert.True(t, TotalsConsistent(&inv))

	// breakdown tersimpan sebagai JSON dan bisa dibaca balik
	feeLines, err := inv.AdditionalFeeLines()
	require.NoError(t, err)
	require.Len(t, feeLines, 1)
	assert.Equal(t, "Wifi", feeLines[0].Detail)
}

func TestAssembleInvoice_MeterMissing(t *testing.T) {
	// zero usage → utilitas air tetap kena tier minimum, listrik 0
	inv, err := AssembleInvoice(Period{Year: 2026, Month: 9}, testSettings(), 1300, UsageInput{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 180.0, inv.InvoiceWaterBill)
	assert.Zero(t, inv.InvoiceElectricityBill)
	assert.True(t, TotalsConsistent(&inv))
}
