// file: internals/features/billing/invoices/controller/invoice_public_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "kosku_backend/internals/features/billing/invoices/dto"
	invoiceModel "kosku_backend/internals/features/billing/invoices/model"
	helper "kosku_backend/internals/helpers"
	ossHelper "kosku_backend/internals/helpers/oss"
)

/* =======================================================
   PUBLIC — akses penyewa via token opaque, tanpa login.
   Token tidak bisa ditebak (crypto/rand); endpoint di-rate-limit.
======================================================= */

type PublicInvoiceHandler struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService // nil kalau OSS belum dikonfigurasi
}

func NewPublicInvoiceHandler(db *gorm.DB) *PublicInvoiceHandler {
	svc, err := ossHelper.NewOSSServiceFromEnv("kosku")
	if err != nil {
		log.Printf("[WARN] OSS nonaktif: %v", err)
		svc = nil
	}
	return &PublicInvoiceHandler{DB: db, OSS: svc}
}

func (h *PublicInvoiceHandler) findByToken(token string) (*invoiceModel.InvoiceModel, error) {
	token = strings.TrimSpace(token)
	if token == "" || len(token) > 64 {
		return nil, gorm.ErrRecordNotFound
	}
	var m invoiceModel.InvoiceModel
	if err := h.DB.First(&m, "invoice_public_token = ?", token).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// =======================================================
// DETAIL VIA TOKEN
// GET /api/public/invoices/:token
// =======================================================

func (h *PublicInvoiceHandler) GetByToken(c *fiber.Ctx) error {
	m, err := h.findByToken(c.Params("token"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "invoice detail", dto.ToInvoiceResponse(*m))
}

// =======================================================
// UPLOAD SLIP (multipart field "slip")
// POST /api/public/invoices/:token/slip
// Upload → OSS URL durable → slip_url terisi → verifying.
// =======================================================

func (h *PublicInvoiceHandler) UploadSlip(c *fiber.Ctx) error {
	m, err := h.findByToken(c.Params("token"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	switch m.InvoiceStatus {
	case invoiceModel.InvoiceStatusPending, invoiceModel.InvoiceStatusOverdue, invoiceModel.InvoiceStatusVerifying:
		// verifying boleh re-upload (slip lama diganti)
	default:
		return helper.JsonError(c, fiber.StatusConflict, "invoice tidak menerima slip pada status "+string(m.InvoiceStatus))
	}

	if h.OSS == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "penyimpanan file belum dikonfigurasi")
	}

	fh, err := c.FormFile("slip")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file 'slip' wajib dikirim (multipart)")
	}
	if fh.Size > 5*1024*1024 {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "ukuran slip maksimal 5MB")
	}

	url, _, err := h.OSS.UploadFromFormFile(c.UserContext(), "slips/"+m.InvoiceID.String(), fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "upload gagal: "+err.Error())
	}

	m.InvoiceSlipURL = &url
	// reaksi terhadap field slip — bukan terhadap event upload
	switch m.InvoiceStatus {
	case invoiceModel.InvoiceStatusPending, invoiceModel.InvoiceStatusOverdue:
		m.InvoiceStatus = invoiceModel.InvoiceStatusVerifying
	}

	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "slip uploaded", fiber.Map{
		"invoice_status": m.InvoiceStatus,
		"slip_url":       url,
	})
}
