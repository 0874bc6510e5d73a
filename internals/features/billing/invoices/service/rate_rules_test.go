// file: internals/features/billing/invoices/service/rate_rules_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	settingsModel "kosku_backend/internals/features/dorm/settings/model"
)

func TestEvaluateRules(t *testing.T) {
	rules := []settingsModel.Rule{
		{Label: "Wifi", CalcType: settingsModel.RuleCalcFixed, Value: 50},
		{Label: "PPJ listrik", CalcType: settingsModel.RuleCalcElectricityUnits, Value: 2},
		{Label: "Retribusi air", CalcType: settingsModel.RuleCalcWaterUnits, Value: 3},
	}

	lines, sum := EvaluateRules(rules, 30, 4)
	require.Len(t, lines, 3)

	// fixed → unit 1
	assert.Equal(t, "Wifi", lines[0].Detail)
	assert.Equal(t, 1.0, lines[0].Unit)
	assert.Equal(t, 50.0, lines[0].TotalAmount)

	// electricity_units → unit = pemakaian listrik
	assert.Equal(t, 30.0, lines[1].Unit)
	assert.Equal(t, 60.0, lines[1].TotalAmount)

	// water_units → unit = pemakaian air
	assert.Equal(t, 4.0, lines[2].Unit)
	assert.Equal(t, 12.0, lines[2].TotalAmount)

	assert.Equal(t, 122.0, sum)
}

func TestEvaluateRules_Empty(t *testing.T) {
	lines, sum := EvaluateRules(nil, 30, 4)
	assert.Empty(t, lines)
	assert.Zero(t, sum)
}

func TestEvaluateRules_OrderPreserved(t *testing.T) {
	rules := []settingsModel.Rule{
		{Label: "B", CalcType: settingsModel.RuleCalcFixed, Value: 1},
		{Label: "A", CalcType: settingsModel.RuleCalcFixed, Value: 2},
	}
	lines, _ := EvaluateRules(rules, 0, 0)
	require.Len(t, lines, 2)
	assert.Equal(t, "B", lines[0].Detail)
	assert.Equal(t, "A", lines[1].Detail)
}
