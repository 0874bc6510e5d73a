// file: internals/features/dorm/settings/model/settings_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampDays(t *testing.T) {
	m := SettingsModel{
		SettingBillingDay:      0,
		SettingDueDay:          31, // tidak ada di Februari → clamp ke 28
		SettingLateFeeStartDay: 15,
	}
	m.ClampDays()
	assert.Equal(t, 1, m.SettingBillingDay)
	assert.Equal(t, 28, m.SettingDueDay)
	assert.Equal(t, 15, m.SettingLateFeeStartDay)
}

func TestDecodeRules_EmptyColumn(t *testing.T) {
	var m SettingsModel
	fees, err := m.AdditionalFees()
	assert.NoError(t, err)
	assert.Nil(t, fees)
}
