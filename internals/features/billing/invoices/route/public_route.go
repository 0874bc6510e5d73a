package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceController "kosku_backend/internals/features/billing/invoices/controller"
	"kosku_backend/internals/middlewares"
)

/*
Public routes — akses penyewa via token opaque, tanpa login.
Rate limit lebih ketat supaya token tidak bisa di-enumerate.
*/
func InvoicesPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := invoiceController.NewPublicInvoiceHandler(db)

	grp := public.Group("/invoices", middlewares.PublicInvoiceRateLimiter())
	{
		grp.Get("/:token", h.GetByToken)
		grp.Post("/:token/slip", h.UploadSlip)
	}
}
