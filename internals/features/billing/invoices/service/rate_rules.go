// file: internals/features/billing/invoices/service/rate_rules.go
package service

import (
	invoiceModel "kosku_backend/internals/features/billing/invoices/model"
	settingsModel "kosku_backend/internals/features/dorm/settings/model"
)

/* =======================================================
   RATE RULE EVALUATOR
   Interpreter kecil untuk rule biaya tambahan & diskon:
   fixed | electricity_units | water_units.
   Fungsi yang sama dipakai dua arah — penambah (fee) dan
   pengurang (diskon); tanda diaplikasikan oleh pemanggil.
======================================================= */

// EvaluateRules mengevaluasi daftar rule terhadap pemakaian listrik & air.
// Urutan output mengikuti urutan rules; deterministik untuk snapshot
// Settings + usage yang sama.
func EvaluateRules(rules []settingsModel.Rule, electricityUsage, waterUsage float64) ([]invoiceModel.BreakdownLine, float64) {
	lines := make([]invoiceModel.BreakdownLine, 0, len(rules))
	var sum float64

	for _, r := range rules {
		unit := 1.0
		switch r.CalcType {
		case settingsModel.RuleCalcElectricityUnits:
			unit = electricityUsage
		case settingsModel.RuleCalcWaterUnits:
			unit = waterUsage
		}
		amount := r.Value * unit

		lines = append(lines, invoiceModel.BreakdownLine{
			Detail:       r.Label,
			CalcType:     string(r.CalcType),
			Unit:         unit,
			PricePerUnit: r.Value,
			TotalAmount:  amount,
		})
		sum += amount
	}

	return lines, sum
}
