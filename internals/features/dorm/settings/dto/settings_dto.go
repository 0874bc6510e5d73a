// file: internals/features/dorm/settings/dto/settings_dto.go
package dto

import (
	settingsModel "kosku_backend/internals/features/dorm/settings/model"
)

// Full-replace: PUT selalu membawa konfigurasi lengkap.
type SettingsUpsertDTO struct {
	SettingWaterRate       float64 `json:"setting_water_rate" validate:"min=0"`
	SettingElectricityRate float64 `json:"setting_electricity_rate" validate:"min=0"`
	SettingCommonFee       float64 `json:"setting_common_fee" validate:"min=0"`

	SettingWaterMinUnits float64 `json:"setting_water_min_units" validate:"min=0"`
	SettingWaterMinPrice float64 `json:"setting_water_min_price" validate:"min=0"`

	SettingBillingDay      int `json:"setting_billing_day" validate:"min=1,max=31"`
	SettingDueDay          int `json:"setting_due_day" validate:"min=1,max=31"`
	SettingLateFeeStartDay int `json:"setting_late_fee_start_day" validate:"min=1,max=31"`

	SettingLateFeePerDay float64 `json:"setting_late_fee_per_day" validate:"min=0"`
	SettingMeterMaxValue float64 `json:"setting_meter_max_value" validate:"min=1"`

	SettingAdditionalFees      []settingsModel.Rule `json:"setting_additional_fees" validate:"dive"`
	SettingAdditionalDiscounts []settingsModel.Rule `json:"setting_additional_discounts" validate:"dive"`
}

func (in SettingsUpsertDTO) Apply(m *settingsModel.SettingsModel) error {
	fees, err := settingsModel.EncodeRules(in.SettingAdditionalFees)
	if err != nil {
		return err
	}
	discounts, err := settingsModel.EncodeRules(in.SettingAdditionalDiscounts)
	if err != nil {
		return err
	}

	m.SettingID = settingsModel.SettingsID
	m.SettingWaterRate = in.SettingWaterRate
	m.SettingElectricityRate = in.SettingElectricityRate
	m.SettingCommonFee = in.SettingCommonFee
	m.SettingWaterMinUnits = in.SettingWaterMinUnits
	m.SettingWaterMinPrice = in.SettingWaterMinPrice
	m.SettingBillingDay = in.SettingBillingDay
	m.SettingDueDay = in.SettingDueDay
	m.SettingLateFeeStartDay = in.SettingLateFeeStartDay
	m.SettingLateFeePerDay = in.SettingLateFeePerDay
	m.SettingMeterMaxValue = in.SettingMeterMaxValue
	m.SettingAdditionalFees = fees
	m.SettingAdditionalDiscounts = discounts
	return nil
}
