// file: internals/features/dorm/settings/model/settings_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — tipe kalkulasi rule
============================== */

type RuleCalcType string

const (
	RuleCalcFixed            RuleCalcType = "fixed"
	RuleCalcElectricityUnits RuleCalcType = "electricity_units"
	RuleCalcWaterUnits       RuleCalcType = "water_units"
)

// Rule: spesifikasi biaya tambahan / diskon yang diinterpretasi saat
// menghitung invoice. Stateless — murni input fungsi.
type Rule struct {
	Label    string       `json:"label" validate:"required,max=100"`
	CalcType RuleCalcType `json:"calc_type" validate:"required,oneof=fixed electricity_units water_units"`
	Value    float64      `json:"value" validate:"min=0"`
}

/* ==============================================
   MODEL — singleton konfigurasi kos
============================================== */

// SettingsID: id tetap — hanya ada satu baris settings.
var SettingsID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type SettingsModel struct {
	// PK (fixed)
	SettingID uuid.UUID `gorm:"column:setting_id;type:uuid;primaryKey" json:"setting_id"`

	// Tarif utilitas
	SettingWaterRate       float64 `gorm:"column:setting_water_rate;type:numeric(12,2);not null;default:0" json:"setting_water_rate"`
	SettingElectricityRate float64 `gorm:"column:setting_electricity_rate;type:numeric(12,2);not null;default:0" json:"setting_electricity_rate"`
	SettingCommonFee       float64 `gorm:"column:setting_common_fee;type:numeric(12,2);not null;default:0" json:"setting_common_fee"`

	// Tier minimum pemakaian air
	SettingWaterMinUnits float64 `gorm:"column:setting_water_min_units;type:numeric(12,2);not null;default:0" json:"setting_water_min_units"`
	SettingWaterMinPrice float64 `gorm:"column:setting_water_min_price;type:numeric(12,2);not null;default:0" json:"setting_water_min_price"`

	// Anchor hari — di-clamp ke [1,28] supaya aman untuk semua panjang bulan
	SettingBillingDay      int `gorm:"column:setting_billing_day;type:int;not null;default:1" json:"setting_billing_day"`
	SettingDueDay          int `gorm:"column:setting_due_day;type:int;not null;default:10" json:"setting_due_day"`
	SettingLateFeeStartDay int `gorm:"column:setting_late_fee_start_day;type:int;not null;default:15" json:"setting_late_fee_start_day"`

	SettingLateFeePerDay float64 `gorm:"column:setting_late_fee_per_day;type:numeric(12,2);not null;default:0" json:"setting_late_fee_per_day"`

	// Plafon angka meteran (wraparound ceiling perangkat)
	SettingMeterMaxValue float64 `gorm:"column:setting_meter_max_value;type:numeric(12,2);not null;default:9999" json:"setting_meter_max_value"`

	// Daftar rule (JSONB, urutan dipertahankan)
	SettingAdditionalFees      datatypes.JSON `gorm:"column:setting_additional_fees;type:jsonb;not null;default:'[]'" json:"setting_additional_fees"`
	SettingAdditionalDiscounts datatypes.JSON `gorm:"column:setting_additional_discounts;type:jsonb;not null;default:'[]'" json:"setting_additional_discounts"`

	// Audit
	SettingCreatedAt time.Time `gorm:"column:setting_created_at;type:timestamptz;not null;autoCreateTime" json:"setting_created_at"`
	SettingUpdatedAt time.Time `gorm:"column:setting_updated_at;type:timestamptz;not null;autoUpdateTime" json:"setting_updated_at"`
}

func (SettingsModel) TableName() string { return "dorm_settings" }

/* ==============================
   HOOKS & ACCESSORS
============================== */

func clampDay(d int) int {
	if d < 1 {
		return 1
	}
	if d > 28 {
		return 28
	}
	return d
}

// ClampDays menegakkan invariant hari anchor ∈ [1,28].
func (m *SettingsModel) ClampDays() {
	m.SettingBillingDay = clampDay(m.SettingBillingDay)
	m.SettingDueDay = clampDay(m.SettingDueDay)
	m.SettingLateFeeStartDay = clampDay(m.SettingLateFeeStartDay)
}

func (m *SettingsModel) BeforeSave(tx *gorm.DB) error {
	if m.SettingID == uuid.Nil {
		m.SettingID = SettingsID
	}
	m.ClampDays()
	return nil
}

func (m *SettingsModel) AdditionalFees() ([]Rule, error) {
	return decodeRules(m.SettingAdditionalFees)
}

func (m *SettingsModel) AdditionalDiscounts() ([]Rule, error) {
	return decodeRules(m.SettingAdditionalDiscounts)
}

func decodeRules(raw datatypes.JSON) ([]Rule, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rules []Rule
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func EncodeRules(rules []Rule) (datatypes.JSON, error) {
	if rules == nil {
		rules = []Rule{}
	}
	b, err := json.Marshal(rules)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
