package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceController "kosku_backend/internals/features/billing/invoices/controller"
)

/*
Admin routes (billing engine)
Diproteksi AuthJWT + IsAdmin di group /api/a.
*/
func InvoicesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := invoiceController.NewInvoiceHandler(db)

	grp := admin.Group("/invoices")
	{
		// batch generation per periode (idempotent, aman di-rerun)
		grp.Post("/generate", h.GenerateInvoices)

		// preview proration tanpa simpan
		grp.Get("/proration-preview", h.ProrationPreview)

		grp.Get("", h.ListInvoices)
		grp.Get("/:id", h.GetInvoice)
		grp.Patch("/:id", h.UpdateInvoice)
		grp.Delete("/:id", h.DeleteInvoice)

		// aksi
		grp.Post("/:id/status", h.TransitionStatus)
		grp.Post("/:id/send", h.SendInvoice)
		grp.Post("/:id/payment-link", h.CreatePaymentLink)
	}
}
