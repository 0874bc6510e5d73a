// file: internals/features/dorm/settings/controller/settings_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kosku_backend/internals/features/dorm/settings/dto"
	settingsModel "kosku_backend/internals/features/dorm/settings/model"
	helper "kosku_backend/internals/helpers"
)

type SettingsHandler struct {
	DB *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{DB: db}
}

// GetSettings: 404 sebelum PUT pertama — generate invoice juga akan
// menolak (422) sampai settings diisi.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	var m settingsModel.SettingsModel
	if err := h.DB.First(&m, "setting_id = ?", settingsModel.SettingsID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Settings belum dikonfigurasi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil settings")
	}
	return helper.JsonOK(c, "OK", m)
}

// PutSettings: upsert singleton via ON CONFLICT (setting_id) DO UPDATE.
func (h *SettingsHandler) PutSettings(c *fiber.Ctx) error {
	var req dto.SettingsUpsertDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	var m settingsModel.SettingsModel
	if err := req.Apply(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Rule tidak bisa di-encode")
	}

	if err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_id"}},
		UpdateAll: true,
	}).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan settings")
	}

	return helper.JsonUpdated(c, "Settings berhasil disimpan", m)
}
