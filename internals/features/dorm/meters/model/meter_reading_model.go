// file: internals/features/dorm/meters/model/meter_reading_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — satu baris per kamar per bulan tagihan
============================================== */

type MeterReadingModel struct {
	// PK
	MeterReadingID uuid.UUID `gorm:"column:meter_reading_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"meter_reading_id"`

	// FK → rooms(room_id); unik per (kamar, bulan), parsial atas baris
	// hidup — pembacaan yang dihapus tidak memblokir input ulang
	MeterReadingRoomID uuid.UUID `gorm:"column:meter_reading_room_id;type:uuid;not null;index;uniqueIndex:uniq_meter_room_month,priority:1,where:meter_reading_deleted_at IS NULL" json:"meter_reading_room_id"`

	// Bulan pembacaan — selalu tanggal 1
	MeterReadingMonth time.Time `gorm:"column:meter_reading_month;type:date;not null;uniqueIndex:uniq_meter_room_month,priority:2" json:"meter_reading_month"`

	// Listrik
	MeterReadingElectricityPrev  float64 `gorm:"column:meter_reading_electricity_prev;type:numeric(12,2);not null;default:0" json:"meter_reading_electricity_prev"`
	MeterReadingElectricityCurr  float64 `gorm:"column:meter_reading_electricity_curr;type:numeric(12,2);not null;default:0" json:"meter_reading_electricity_curr"`
	MeterReadingElectricityUsage float64 `gorm:"column:meter_reading_electricity_usage;type:numeric(12,2);not null;default:0" json:"meter_reading_electricity_usage"`

	// Air
	MeterReadingWaterPrev  float64 `gorm:"column:meter_reading_water_prev;type:numeric(12,2);not null;default:0" json:"meter_reading_water_prev"`
	MeterReadingWaterCurr  float64 `gorm:"column:meter_reading_water_curr;type:numeric(12,2);not null;default:0" json:"meter_reading_water_curr"`
	MeterReadingWaterUsage float64 `gorm:"column:meter_reading_water_usage;type:numeric(12,2);not null;default:0" json:"meter_reading_water_usage"`

	// Rollover: nil = belum pernah diisi (baris lama) → infer saat hitung.
	// Flag eksplisit selalu menang atas heuristik.
	MeterReadingRollover *bool `gorm:"column:meter_reading_rollover;type:boolean" json:"meter_reading_rollover,omitempty"`

	// Audit
	MeterReadingCreatedAt time.Time      `gorm:"column:meter_reading_created_at;type:timestamptz;not null;autoCreateTime;index" json:"meter_reading_created_at"`
	MeterReadingUpdatedAt time.Time      `gorm:"column:meter_reading_updated_at;type:timestamptz;not null;autoUpdateTime" json:"meter_reading_updated_at"`
	MeterReadingDeletedAt gorm.DeletedAt `gorm:"column:meter_reading_deleted_at;type:timestamptz;index" json:"-"`
}

func (MeterReadingModel) TableName() string { return "meter_readings" }

// NormalizeMonth memaksa bulan pembacaan ke tanggal 1 (UTC).
func (m *MeterReadingModel) NormalizeMonth() {
	y, mo, _ := m.MeterReadingMonth.Date()
	m.MeterReadingMonth = time.Date(y, mo, 1, 0, 0, 0, 0, time.UTC)
}

func (m *MeterReadingModel) BeforeCreate(tx *gorm.DB) error {
	m.NormalizeMonth()
	return nil
}

func (m *MeterReadingModel) BeforeUpdate(tx *gorm.DB) error {
	m.NormalizeMonth()
	return nil
}
