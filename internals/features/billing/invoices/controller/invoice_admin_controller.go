// file: internals/features/billing/invoices/controller/invoice_admin_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kosku_backend/internals/features/billing/invoices/dto"
	invoiceModel "kosku_backend/internals/features/billing/invoices/model"
	"kosku_backend/internals/features/billing/invoices/service"
	notifyService "kosku_backend/internals/features/billing/notify/service"
	paymentService "kosku_backend/internals/features/billing/payments/service"
	roomModel "kosku_backend/internals/features/dorm/rooms/model"
	tenantModel "kosku_backend/internals/features/dorm/tenants/model"
	helper "kosku_backend/internals/helpers"

	"kosku_backend/internals/configs"
)

// =======================================================
// BOOTSTRAP
// =======================================================

type InvoiceHandler struct {
	DB        *gorm.DB
	Lifecycle *service.LifecycleService
	Gateway   *notifyService.WaGateway
}

func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{
		DB:        db,
		Lifecycle: service.NewLifecycleService(db),
		Gateway:   notifyService.NewWaGateway(configs.WaGatewayBaseURL, configs.WaGatewayToken),
	}
}

// =======================================================
// HELPERS
// =======================================================

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "unique constraint"))
}

func parsePeriodQuery(c *fiber.Ctx) (service.Period, error) {
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil {
		return service.Period{}, errors.New("query ?year= wajib angka")
	}
	month, err := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if err != nil {
		return service.Period{}, errors.New("query ?month= wajib angka")
	}
	p := service.Period{Year: year, Month: month}
	if !p.Valid() {
		return service.Period{}, errors.New("periode tidak valid")
	}
	return p, nil
}

func (h *InvoiceHandler) findInvoice(id uuid.UUID) (*invoiceModel.InvoiceModel, error) {
	var m invoiceModel.InvoiceModel
	if err := h.DB.First(&m, "invoice_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// =======================================================
// GENERATE (batch per periode; aman di-rerun)
// POST /api/a/invoices/generate
// =======================================================

func (h *InvoiceHandler) GenerateInvoices(c *fiber.Ctx) error {
	var in dto.GenerateInvoicesRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	summary, err := h.Lifecycle.GenerateForPeriod(c.UserContext(), in.Period())
	if err != nil {
		if errors.Is(err, service.ErrSettingsMissing) {
			// fatal: tidak ada default aman untuk tarif uang
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "settings kos belum diisi; batch dibatalkan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "invoices generated", summary)
}

// =======================================================
// LIST (reconciliation pass jalan duluan)
// GET /api/a/invoices?year=&month=
// =======================================================

func (h *InvoiceHandler) ListInvoices(c *fiber.Ctx) error {
	period, err := parsePeriodQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	invoices, err := h.Lifecycle.LoadPeriod(c.UserContext(), period, time.Now().UTC())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "invoices for "+period.String(), dto.ToAdminInvoiceResponses(invoices), nil)
}

// =======================================================
// DETAIL
// GET /api/a/invoices/:id
// =======================================================

func (h *InvoiceHandler) GetInvoice(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	m, err := h.findInvoice(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "invoice detail", dto.ToAdminInvoiceResponse(*m))
}

// =======================================================
// UPDATE (edit line item; total SELALU lewat recompute)
// PATCH /api/a/invoices/:id
// =======================================================

func (h *InvoiceHandler) UpdateInvoice(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.InvoiceUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	m, err := h.findInvoice(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.InvoiceStatus.IsTerminal() {
		return helper.JsonError(c, fiber.StatusConflict, "invoice sudah "+string(m.InvoiceStatus)+", tidak bisa diedit")
	}

	if err := dto.ApplyInvoiceUpdate(m, in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Proration periode pertama: eksplisit lewat flag, bukan otomatis.
	if in.ApplyProration {
		var tenant tenantModel.TenantModel
		if err := h.DB.First(&tenant, "tenant_id = ?", m.InvoiceTenantID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "penyewa invoice tidak ditemukan untuk proration")
		}
		var room roomModel.RoomModel
		if err := h.DB.First(&room, "room_id = ?", m.InvoiceRoomID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "kamar invoice tidak ditemukan untuk proration")
		}
		p := service.ProrateRent(room.RoomPriceMonth, tenant.TenantMoveInDate.Day(), m.InvoiceIssueDate.Day())
		m.InvoiceRentAmount = p.Amount
		note := "Proration: " + p.Formula
		if m.InvoiceNotes != nil && *m.InvoiceNotes != "" {
			note = *m.InvoiceNotes + "\n" + note
		}
		m.InvoiceNotes = &note
	}

	// sekali lagi sebelum persist — satu-satunya jalan total berubah
	service.RecomputeTotals(m)

	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "invoice updated", dto.ToAdminInvoiceResponse(*m))
}

// =======================================================
// STATUS (aksi manual admin: paid / cancelled / terbitkan draft)
// POST /api/a/invoices/:id/status
// =======================================================

func (h *InvoiceHandler) TransitionStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.StatusTransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	m, err := h.findInvoice(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := service.ApplyManualTransition(m, in.Status, time.Now().UTC()); err != nil {
		return helper.JsonError(c, fiber.StatusConflict,
			"transisi "+string(m.InvoiceStatus)+" → "+string(in.Status)+" tidak diizinkan")
	}

	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "invoice status updated", dto.ToAdminInvoiceResponse(*m))
}

// =======================================================
// DELETE (soft delete; tidak cascade ke entity lain)
// DELETE /api/a/invoices/:id
// =======================================================

func (h *InvoiceHandler) DeleteInvoice(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.Delete(&invoiceModel.InvoiceModel{}, "invoice_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
	}

	return helper.JsonDeleted(c, "invoice deleted", fiber.Map{"invoice_id": id})
}

// =======================================================
// SEND (kirim tagihan via WA gateway)
// POST /api/a/invoices/:id/send
// =======================================================

func (h *InvoiceHandler) SendInvoice(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	m, err := h.findInvoice(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var tenant tenantModel.TenantModel
	if err := h.DB.First(&tenant, "tenant_id = ?", m.InvoiceTenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "penyewa invoice tidak ditemukan")
	}
	if tenant.TenantPhone == nil || *tenant.TenantPhone == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "penyewa belum punya nomor WA")
	}
	var room roomModel.RoomModel
	if err := h.DB.First(&room, "room_id = ?", m.InvoiceRoomID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "kamar invoice tidak ditemukan")
	}

	msg := notifyService.RenderInvoiceMessage(*m, room.RoomNumber, tenant.TenantName,
		configs.GetEnv("PUBLIC_BASE_URL"))

	result, err := h.Gateway.SendMessage(c.UserContext(), *tenant.TenantPhone, msg)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	if !result.Delivered {
		return helper.JsonError(c, fiber.StatusBadGateway,
			"provider menolak pengiriman: "+result.ProviderReason)
	}

	return helper.JsonOK(c, "invoice sent", result)
}

// =======================================================
// PAYMENT LINK (midtrans Snap)
// POST /api/a/invoices/:id/payment-link
// =======================================================

func (h *InvoiceHandler) CreatePaymentLink(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	m, err := h.findInvoice(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.InvoiceStatus.IsTerminal() {
		return helper.JsonError(c, fiber.StatusConflict, "invoice sudah "+string(m.InvoiceStatus))
	}

	var tenant tenantModel.TenantModel
	if err := h.DB.First(&tenant, "tenant_id = ?", m.InvoiceTenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "penyewa invoice tidak ditemukan")
	}
	phone := ""
	if tenant.TenantPhone != nil {
		phone = *tenant.TenantPhone
	}

	token, redirect, err := paymentService.GenerateSnapToken(*m, tenant.TenantName, phone)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	return helper.JsonOK(c, "payment link created", fiber.Map{
		"snap_token":   token,
		"redirect_url": redirect,
	})
}

// =======================================================
// PRORATION PREVIEW (hitung tanpa simpan)
// GET /api/a/invoices/proration-preview?price=&move_in_day=&billing_day=
// =======================================================

func (h *InvoiceHandler) ProrationPreview(c *fiber.Ctx) error {
	price, err := strconv.ParseFloat(strings.TrimSpace(c.Query("price")), 64)
	if err != nil || price < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "query ?price= wajib angka ≥ 0")
	}
	moveInDay, err := strconv.Atoi(strings.TrimSpace(c.Query("move_in_day")))
	if err != nil || moveInDay < 1 || moveInDay > 31 {
		return helper.JsonError(c, fiber.StatusBadRequest, "query ?move_in_day= wajib 1..31")
	}
	billingDay, err := strconv.Atoi(strings.TrimSpace(c.Query("billing_day")))
	if err != nil || billingDay < 1 || billingDay > 31 {
		return helper.JsonError(c, fiber.StatusBadRequest, "query ?billing_day= wajib 1..31")
	}

	return helper.JsonOK(c, "proration preview", service.ProrateRent(price, moveInDay, billingDay))
}
