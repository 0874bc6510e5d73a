// file: internals/features/dorm/meters/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	meterController "kosku_backend/internals/features/dorm/meters/controller"
)

func MetersAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := meterController.NewMeterReadingHandler(db)

	grp := admin.Group("/meter-readings")
	grp.Put("", h.UpsertReading)
	grp.Get("", h.ListReadings)
	grp.Get("/:id", h.GetReading)
	grp.Delete("/:id", h.DeleteReading)
}
