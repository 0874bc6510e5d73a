// file: internals/features/dorm/tenants/controller/tenant_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "kosku_backend/internals/features/dorm/rooms/model"
	"kosku_backend/internals/features/dorm/tenants/dto"
	tenantModel "kosku_backend/internals/features/dorm/tenants/model"
	helper "kosku_backend/internals/helpers"
)

type TenantHandler struct {
	DB *gorm.DB
}

func NewTenantHandler(db *gorm.DB) *TenantHandler {
	return &TenantHandler{DB: db}
}

func parseTenantID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID penghuni tidak valid")
	}
	return id, nil
}

/* =======================================================
   CHECK-IN (create tenant + kamar -> occupied)
   ======================================================= */

func (h *TenantHandler) CheckIn(c *fiber.Ctx) error {
	var req dto.TenantCheckInDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	m := req.ToModel()

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var room roomModel.RoomModel
		if err := tx.First(&room, "room_id = ?", req.TenantRoomID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Kamar tidak ditemukan")
			}
			return err
		}
		if room.RoomStatus != roomModel.RoomStatusAvailable {
			return fiber.NewError(fiber.StatusConflict, "Kamar tidak tersedia (status: "+string(room.RoomStatus)+")")
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return tx.Model(&roomModel.RoomModel{}).
			Where("room_id = ?", room.RoomID).
			Update("room_status", roomModel.RoomStatusOccupied).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal check-in penghuni")
	}

	return helper.JsonCreated(c, "Penghuni berhasil check-in", m)
}

/* =======================================================
   LIST / GET
   ======================================================= */

func (h *TenantHandler) ListTenants(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&tenantModel.TenantModel{})
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("tenant_status = ?", st)
	}
	if roomID := strings.TrimSpace(c.Query("room_id")); roomID != "" {
		id, err := uuid.Parse(roomID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "room_id tidak valid")
		}
		q = q.Where("tenant_room_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung penghuni")
	}

	var rows []tenantModel.TenantModel
	if err := q.Order("tenant_created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penghuni")
	}

	return helper.JsonList(c, "tenants", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (h *TenantHandler) GetTenant(c *fiber.Ctx) error {
	id, err := parseTenantID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var m tenantModel.TenantModel
	if err := h.DB.First(&m, "tenant_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Penghuni tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penghuni")
	}
	return helper.JsonOK(c, "OK", m)
}

/* =======================================================
   UPDATE / CHECK-OUT / DELETE
   ======================================================= */

func (h *TenantHandler) UpdateTenant(c *fiber.Ctx) error {
	id, err := parseTenantID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var m tenantModel.TenantModel
	if err := h.DB.First(&m, "tenant_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Penghuni tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penghuni")
	}

	var req dto.TenantUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	dto.ApplyTenantUpdate(&m, req)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui penghuni")
	}
	return helper.JsonUpdated(c, "Penghuni berhasil diperbarui", m)
}

// CheckOut: tenant -> inactive + move_out_date, kamar kembali available.
func (h *TenantHandler) CheckOut(c *fiber.Ctx) error {
	id, err := parseTenantID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.TenantCheckOutDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}
	moveOut := time.Now().UTC()
	if req.TenantMoveOutDate != nil {
		moveOut = *req.TenantMoveOutDate
	}

	var m tenantModel.TenantModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "tenant_id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Penghuni tidak ditemukan")
			}
			return err
		}
		if m.TenantStatus != tenantModel.TenantStatusActive {
			return fiber.NewError(fiber.StatusConflict, "Penghuni sudah tidak aktif")
		}
		m.TenantStatus = tenantModel.TenantStatusInactive
		m.TenantMoveOutDate = &moveOut
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		// Kamar kembali available hanya jika tidak ada penghuni aktif lain.
		var remaining int64
		if err := tx.Model(&tenantModel.TenantModel{}).
			Where("tenant_room_id = ? AND tenant_status = ?", m.TenantRoomID, tenantModel.TenantStatusActive).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			return tx.Model(&roomModel.RoomModel{}).
				Where("room_id = ? AND room_status = ?", m.TenantRoomID, roomModel.RoomStatusOccupied).
				Update("room_status", roomModel.RoomStatusAvailable).Error
		}
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal check-out penghuni")
	}

	return helper.JsonUpdated(c, "Penghuni berhasil check-out", m)
}

func (h *TenantHandler) DeleteTenant(c *fiber.Ctx) error {
	id, err := parseTenantID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := h.DB.Where("tenant_id = ? AND tenant_status = ?", id, tenantModel.TenantStatusInactive).
		Delete(&tenantModel.TenantModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus penghuni")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Penghuni tidak ditemukan atau masih aktif (check-out dulu)")
	}
	return helper.JsonDeleted(c, "Penghuni berhasil dihapus", fiber.Map{"tenant_id": id})
}
