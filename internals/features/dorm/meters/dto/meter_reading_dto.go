// file: internals/features/dorm/meters/dto/meter_reading_dto.go
package dto

import (
	"github.com/google/uuid"

	meterModel "kosku_backend/internals/features/dorm/meters/model"
)

// Upsert per (kamar, bulan). Bulan dikirim "YYYY-MM".
type MeterReadingUpsertDTO struct {
	MeterReadingRoomID uuid.UUID `json:"meter_reading_room_id" validate:"required"`
	MeterReadingMonth  string    `json:"meter_reading_month" validate:"required,len=7"`

	MeterReadingElectricityPrev float64 `json:"meter_reading_electricity_prev" validate:"min=0"`
	MeterReadingElectricityCurr float64 `json:"meter_reading_electricity_curr" validate:"min=0"`
	MeterReadingWaterPrev       float64 `json:"meter_reading_water_prev" validate:"min=0"`
	MeterReadingWaterCurr       float64 `json:"meter_reading_water_curr" validate:"min=0"`

	// nil = infer dari heuristik saat hitung
	MeterReadingRollover *bool `json:"meter_reading_rollover,omitempty"`
}

// MeterReadingResponse menambah flag anomali di atas model mentah.
type MeterReadingResponse struct {
	meterModel.MeterReadingModel

	// true kalau salah satu usage negatif (indikasi salah input, bukan error)
	MeterReadingNegativeUsage bool `json:"meter_reading_negative_usage"`
}

func ToMeterReadingResponse(m meterModel.MeterReadingModel) MeterReadingResponse {
	return MeterReadingResponse{
		MeterReadingModel:         m,
		MeterReadingNegativeUsage: m.MeterReadingElectricityUsage < 0 || m.MeterReadingWaterUsage < 0,
	}
}

func ToMeterReadingResponses(rows []meterModel.MeterReadingModel) []MeterReadingResponse {
	out := make([]MeterReadingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToMeterReadingResponse(r))
	}
	return out
}
