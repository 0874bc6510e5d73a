// file: internals/features/dorm/settings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsController "kosku_backend/internals/features/dorm/settings/controller"
)

func SettingsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := settingsController.NewSettingsHandler(db)

	grp := admin.Group("/settings")
	grp.Get("", h.GetSettings)
	grp.Put("", h.PutSettings)
}
