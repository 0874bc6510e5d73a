// file: internals/features/dorm/tenants/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tenantController "kosku_backend/internals/features/dorm/tenants/controller"
)

func TenantsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := tenantController.NewTenantHandler(db)

	grp := admin.Group("/tenants")
	grp.Post("/checkin", h.CheckIn)
	grp.Get("", h.ListTenants)
	grp.Get("/:id", h.GetTenant)
	grp.Patch("/:id", h.UpdateTenant)
	grp.Post("/:id/checkout", h.CheckOut)
	grp.Delete("/:id", h.DeleteTenant)
}
