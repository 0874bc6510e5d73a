// file: internals/features/dorm/meters/controller/meter_reading_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	invoiceService "kosku_backend/internals/features/billing/invoices/service"
	"kosku_backend/internals/features/dorm/meters/dto"
	meterModel "kosku_backend/internals/features/dorm/meters/model"
	roomModel "kosku_backend/internals/features/dorm/rooms/model"
	settingsModel "kosku_backend/internals/features/dorm/settings/model"
	helper "kosku_backend/internals/helpers"
)

type MeterReadingHandler struct {
	DB *gorm.DB
}

func NewMeterReadingHandler(db *gorm.DB) *MeterReadingHandler {
	return &MeterReadingHandler{DB: db}
}

func parseMonthParam(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Format bulan harus YYYY-MM")
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

func (h *MeterReadingHandler) meterMaxValue() float64 {
	var s settingsModel.SettingsModel
	if err := h.DB.First(&s, "setting_id = ?", settingsModel.SettingsID).Error; err != nil {
		// settings belum ada → pakai plafon default perangkat 4 digit
		return 9999
	}
	return s.SettingMeterMaxValue
}

/* =======================================================
   UPSERT — satu baris per (kamar, bulan)
   Usage dihitung ulang di sini, bukan di-trust dari klien.
   ======================================================= */

func (h *MeterReadingHandler) UpsertReading(c *fiber.Ctx) error {
	var req dto.MeterReadingUpsertDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	month, err := parseMonthParam(req.MeterReadingMonth)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.(*fiber.Error).Message)
	}

	var room roomModel.RoomModel
	if err := h.DB.First(&room, "room_id = ?", req.MeterReadingRoomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Kamar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kamar")
	}

	maxValue := h.meterMaxValue()

	var m meterModel.MeterReadingModel
	created := false
	err = h.DB.Where(
		"meter_reading_room_id = ? AND meter_reading_month = ?",
		req.MeterReadingRoomID, month,
	).First(&m).Error
	if err == gorm.ErrRecordNotFound {
		created = true
		m = meterModel.MeterReadingModel{
			MeterReadingRoomID: req.MeterReadingRoomID,
			MeterReadingMonth:  month,
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data meteran")
	}

	m.MeterReadingElectricityPrev = req.MeterReadingElectricityPrev
	m.MeterReadingElectricityCurr = req.MeterReadingElectricityCurr
	m.MeterReadingWaterPrev = req.MeterReadingWaterPrev
	m.MeterReadingWaterCurr = req.MeterReadingWaterCurr
	m.MeterReadingRollover = req.MeterReadingRollover

	// Flag eksplisit menang; heuristik hanya untuk baris lama yang sudah
	// punya usage tersimpan — entri baru tanpa flag dianggap non-rollover.
	elecRollover := invoiceService.RolloverForReading(
		req.MeterReadingRollover, created,
		req.MeterReadingElectricityPrev, req.MeterReadingElectricityCurr,
		m.MeterReadingElectricityUsage,
	)
	waterRollover := invoiceService.RolloverForReading(
		req.MeterReadingRollover, created,
		req.MeterReadingWaterPrev, req.MeterReadingWaterCurr,
		m.MeterReadingWaterUsage,
	)
	m.MeterReadingElectricityUsage = invoiceService.NormalizeUsage(
		req.MeterReadingElectricityPrev, req.MeterReadingElectricityCurr, maxValue, elecRollover,
	)
	m.MeterReadingWaterUsage = invoiceService.NormalizeUsage(
		req.MeterReadingWaterPrev, req.MeterReadingWaterCurr, maxValue, waterRollover,
	)

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data meteran")
	}

	resp := dto.ToMeterReadingResponse(m)
	if created {
		return helper.JsonCreated(c, "Pembacaan meteran tersimpan", resp)
	}
	return helper.JsonUpdated(c, "Pembacaan meteran diperbarui", resp)
}

/* =======================================================
   LIST / GET / DELETE
   ======================================================= */

func (h *MeterReadingHandler) ListReadings(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&meterModel.MeterReadingModel{})
	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		month, err := parseMonthParam(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.(*fiber.Error).Message)
		}
		q = q.Where("meter_reading_month = ?", month)
	}
	if roomID := strings.TrimSpace(c.Query("room_id")); roomID != "" {
		id, err := uuid.Parse(roomID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "room_id tidak valid")
		}
		q = q.Where("meter_reading_room_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data meteran")
	}

	var rows []meterModel.MeterReadingModel
	if err := q.Order("meter_reading_month DESC, meter_reading_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data meteran")
	}

	return helper.JsonList(c, "meter readings", dto.ToMeterReadingResponses(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (h *MeterReadingHandler) GetReading(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID meteran tidak valid")
	}
	var m meterModel.MeterReadingModel
	if err := h.DB.First(&m, "meter_reading_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Data meteran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data meteran")
	}
	return helper.JsonOK(c, "OK", dto.ToMeterReadingResponse(m))
}

func (h *MeterReadingHandler) DeleteReading(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID meteran tidak valid")
	}
	res := h.DB.Where("meter_reading_id = ?", id).Delete(&meterModel.MeterReadingModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data meteran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data meteran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Data meteran berhasil dihapus", fiber.Map{"meter_reading_id": id})
}
