// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kosku_backend/internals/configs"
	invoiceRoute "kosku_backend/internals/features/billing/invoices/route"
	meterRoute "kosku_backend/internals/features/dorm/meters/route"
	roomRoute "kosku_backend/internals/features/dorm/rooms/route"
	settingsRoute "kosku_backend/internals/features/dorm/settings/route"
	tenantRoute "kosku_backend/internals/features/dorm/tenants/route"
	authMiddleware "kosku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh surface HTTP:
//   - /api/public : akses penghuni via token invoice (tanpa login)
//   - /api/a      : panel pengelola (JWT + role admin)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===== PUBLIC =====
	public := api.Group("/public")
	invoiceRoute.InvoicesPublicRoutes(public, db)

	// ===== ADMIN =====
	admin := api.Group("/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.IsAdmin(),
	)
	roomRoute.RoomsAdminRoutes(admin, db)
	tenantRoute.TenantsAdminRoutes(admin, db)
	meterRoute.MetersAdminRoutes(admin, db)
	settingsRoute.SettingsAdminRoutes(admin, db)
	invoiceRoute.InvoicesAdminRoutes(admin, db)
}
