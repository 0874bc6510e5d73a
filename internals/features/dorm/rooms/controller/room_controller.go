// file: internals/features/dorm/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kosku_backend/internals/features/dorm/rooms/dto"
	roomModel "kosku_backend/internals/features/dorm/rooms/model"
	helper "kosku_backend/internals/helpers"
)

type RoomHandler struct {
	DB *gorm.DB
}

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "unique constraint"))
}

// =======================================================
// CREATE
// POST /api/a/rooms
// =======================================================

func (h *RoomHandler) CreateRoom(c *fiber.Ctx) error {
	var in dto.RoomCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	m := in.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "nomor kamar sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "room created", m)
}

// =======================================================
// LIST (filter ?status=)
// GET /api/a/rooms
// =======================================================

func (h *RoomHandler) ListRooms(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&roomModel.RoomModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("room_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rooms []roomModel.RoomModel
	if err := q.Order("room_number ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rooms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "rooms", rooms, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================================================
// DETAIL
// GET /api/a/rooms/:id
// =======================================================

func (h *RoomHandler) GetRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m roomModel.RoomModel
	if err := h.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "room detail", m)
}

// =======================================================
// UPDATE (partial)
// PATCH /api/a/rooms/:id
// =======================================================

func (h *RoomHandler) UpdateRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.RoomUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var m roomModel.RoomModel
	if err := h.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyRoomUpdate(&m, in)

	if err := h.DB.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "nomor kamar sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "room updated", m)
}

// =======================================================
// MAINTENANCE TOGGLE
// POST /api/a/rooms/:id/maintenance  {"enabled": true|false}
// =======================================================

func (h *RoomHandler) SetMaintenance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	var m roomModel.RoomModel
	if err := h.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if in.Enabled {
		if m.RoomStatus == roomModel.RoomStatusOccupied {
			return helper.JsonError(c, fiber.StatusConflict, "kamar masih dihuni; check-out dulu")
		}
		m.RoomStatus = roomModel.RoomStatusMaintenance
	} else {
		if m.RoomStatus != roomModel.RoomStatusMaintenance {
			return helper.JsonError(c, fiber.StatusConflict, "kamar tidak sedang maintenance")
		}
		m.RoomStatus = roomModel.RoomStatusAvailable
	}

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "room status updated", m)
}

// =======================================================
// DELETE (soft)
// DELETE /api/a/rooms/:id
// =======================================================

func (h *RoomHandler) DeleteRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m roomModel.RoomModel
	if err := h.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.RoomStatus == roomModel.RoomStatusOccupied {
		return helper.JsonError(c, fiber.StatusConflict, "kamar masih dihuni; check-out dulu")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "room deleted", fiber.Map{"room_id": id})
}
