package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomController "kosku_backend/internals/features/dorm/rooms/controller"
)

func RoomsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &roomController.RoomHandler{DB: db}

	grp := admin.Group("/rooms")
	{
		grp.Post("", h.CreateRoom)
		grp.Get("", h.ListRooms)
		grp.Get("/:id", h.GetRoom)
		grp.Patch("/:id", h.UpdateRoom)
		grp.Post("/:id/maintenance", h.SetMaintenance)
		grp.Delete("/:id", h.DeleteRoom)
	}
}
