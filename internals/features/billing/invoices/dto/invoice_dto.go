// file: internals/features/billing/invoices/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	invoiceModel "kosku_backend/internals/features/billing/invoices/model"
	"kosku_backend/internals/features/billing/invoices/service"
)

/* ==============================
   REQUESTS
============================== */

type GenerateInvoicesRequest struct {
	Year  int `json:"year" validate:"required,min=2000,max=2100"`
	Month int `json:"month" validate:"required,min=1,max=12"`
}

func (r GenerateInvoicesRequest) Period() service.Period {
	return service.Period{Year: r.Year, Month: r.Month}
}

// InvoiceUpdateDTO: edit line item (partial). Setelah apply, total dihitung
// ulang lewat assembler — field total TIDAK bisa diedit langsung.
type InvoiceUpdateDTO struct {
	InvoiceRentAmount      *float64 `json:"invoice_rent_amount,omitempty" validate:"omitempty,min=0"`
	InvoiceWaterBill       *float64 `json:"invoice_water_bill,omitempty" validate:"omitempty,min=0"`
	InvoiceElectricityBill *float64 `json:"invoice_electricity_bill,omitempty" validate:"omitempty,min=0"`
	InvoiceCommonFee       *float64 `json:"invoice_common_fee,omitempty" validate:"omitempty,min=0"`
	InvoiceLateFeePerDay   *float64 `json:"invoice_late_fee_per_day,omitempty" validate:"omitempty,min=0"`

	InvoiceAdditionalFeeItems *[]invoiceModel.BreakdownLine `json:"invoice_additional_fee_items,omitempty"`
	InvoiceDiscountItems      *[]invoiceModel.BreakdownLine `json:"invoice_discount_items,omitempty"`

	InvoiceDueDate *time.Time `json:"invoice_due_date,omitempty"`
	InvoiceNotes   *string    `json:"invoice_notes,omitempty"`

	// true → rent_amount diganti hasil proration periode pertama penyewa
	ApplyProration bool `json:"apply_proration,omitempty"`
}

// ApplyInvoiceUpdate menerapkan edit parsial ke model, lalu menyamakan total
// breakdown dengan itemnya. RecomputeTotals tetap dipanggil sekali lagi oleh
// controller sebelum persist.
func ApplyInvoiceUpdate(m *invoiceModel.InvoiceModel, in InvoiceUpdateDTO) error {
	if in.InvoiceRentAmount != nil {
		m.InvoiceRentAmount = *in.InvoiceRentAmount
	}
	if in.InvoiceWaterBill != nil {
		m.InvoiceWaterBill = *in.InvoiceWaterBill
	}
	if in.InvoiceElectricityBill != nil {
		m.InvoiceElectricityBill = *in.InvoiceElectricityBill
	}
	if in.InvoiceCommonFee != nil {
		m.InvoiceCommonFee = *in.InvoiceCommonFee
	}
	if in.InvoiceLateFeePerDay != nil {
		m.InvoiceLateFeePerDay = *in.InvoiceLateFeePerDay
	}
	if in.InvoiceDueDate != nil {
		m.InvoiceDueDate = *in.InvoiceDueDate
	}
	if in.InvoiceNotes != nil {
		m.InvoiceNotes = in.InvoiceNotes
	}

	if in.InvoiceAdditionalFeeItems != nil {
		items, err := invoiceModel.EncodeLines(*in.InvoiceAdditionalFeeItems)
		if err != nil {
			return err
		}
		m.InvoiceAdditionalFeeItems = items
		m.InvoiceAdditionalFeeTotal = sumLines(*in.InvoiceAdditionalFeeItems)
	}
	if in.InvoiceDiscountItems != nil {
		items, err := invoiceModel.EncodeLines(*in.InvoiceDiscountItems)
		if err != nil {
			return err
		}
		m.InvoiceDiscountItems = items
		m.InvoiceDiscountTotal = sumLines(*in.InvoiceDiscountItems)
	}
	return nil
}

func sumLines(lines []invoiceModel.BreakdownLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.TotalAmount
	}
	return total
}

type StatusTransitionRequest struct {
	Status invoiceModel.InvoiceStatus `json:"status" validate:"required,oneof=pending paid cancelled"`
}

/* ==============================
   RESPONSES
============================== */

type InvoiceResponse struct {
	InvoiceID       uuid.UUID `json:"invoice_id"`
	InvoiceRoomID   uuid.UUID `json:"invoice_room_id"`
	InvoiceTenantID uuid.UUID `json:"invoice_tenant_id"`

	InvoicePeriodStart time.Time `json:"invoice_period_start"`
	InvoicePeriodEnd   time.Time `json:"invoice_period_end"`
	InvoiceIssueDate   time.Time `json:"invoice_issue_date"`
	InvoiceDueDate     time.Time `json:"invoice_due_date"`

	InvoiceRentAmount       float64 `json:"invoice_rent_amount"`
	InvoiceWaterUsage       float64 `json:"invoice_water_usage"`
	InvoiceWaterBill        float64 `json:"invoice_water_bill"`
	InvoiceElectricityUsage float64 `json:"invoice_electricity_usage"`
	InvoiceElectricityBill  float64 `json:"invoice_electricity_bill"`
	InvoiceCommonFee        float64 `json:"invoice_common_fee"`

	InvoiceAdditionalFeeTotal float64                      `json:"invoice_additional_fee_total"`
	InvoiceAdditionalFeeItems []invoiceModel.BreakdownLine `json:"invoice_additional_fee_items"`
	InvoiceDiscountTotal      float64                      `json:"invoice_discount_total"`
	InvoiceDiscountItems      []invoiceModel.BreakdownLine `json:"invoice_discount_items"`

	InvoiceLateFeeAmount    float64    `json:"invoice_late_fee_amount"`
	InvoiceLateFeePerDay    float64    `json:"invoice_late_fee_per_day"`
	InvoiceLateFeeStartDate *time.Time `json:"invoice_late_fee_start_date,omitempty"`

	InvoiceTotalAmount float64 `json:"invoice_total_amount"`

	InvoiceStatus  invoiceModel.InvoiceStatus `json:"invoice_status"`
	InvoicePaidAt  *time.Time                 `json:"invoice_paid_at,omitempty"`
	InvoiceSlipURL *string                    `json:"invoice_slip_url,omitempty"`
	InvoiceNotes   *string                    `json:"invoice_notes,omitempty"`

	InvoiceCreatedAt time.Time `json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time `json:"invoice_updated_at"`
}

// AdminInvoiceResponse menyertakan public token (dipakai admin untuk bagikan
// link ke penyewa). Response publik TIDAK memuat token lagi.
type AdminInvoiceResponse struct {
	InvoiceResponse
	InvoicePublicToken string `json:"invoice_public_token"`
}

func ToInvoiceResponse(m invoiceModel.InvoiceModel) InvoiceResponse {
	feeLines, _ := m.AdditionalFeeLines()
	discLines, _ := m.DiscountLines()
	if feeLines == nil {
		feeLines = []invoiceModel.BreakdownLine{}
	}
	if discLines == nil {
		discLines = []invoiceModel.BreakdownLine{}
	}
	return InvoiceResponse{
		InvoiceID:       m.InvoiceID,
		InvoiceRoomID:   m.InvoiceRoomID,
		InvoiceTenantID: m.InvoiceTenantID,

		InvoicePeriodStart: m.InvoicePeriodStart,
		InvoicePeriodEnd:   m.InvoicePeriodEnd,
		InvoiceIssueDate:   m.InvoiceIssueDate,
		InvoiceDueDate:     m.InvoiceDueDate,

		InvoiceRentAmount:       m.InvoiceRentAmount,
		InvoiceWaterUsage:       m.InvoiceWaterUsage,
		InvoiceWaterBill:        m.InvoiceWaterBill,
		InvoiceElectricityUsage: m.InvoiceElectricityUsage,
		InvoiceElectricityBill:  m.InvoiceElectricityBill,
		InvoiceCommonFee:        m.InvoiceCommonFee,

		InvoiceAdditionalFeeTotal: m.InvoiceAdditionalFeeTotal,
		InvoiceAdditionalFeeItems: feeLines,
		InvoiceDiscountTotal:      m.InvoiceDiscountTotal,
		InvoiceDiscountItems:      discLines,

		InvoiceLateFeeAmount:    m.InvoiceLateFeeAmount,
		InvoiceLateFeePerDay:    m.InvoiceLateFeePerDay,
		InvoiceLateFeeStartDate: m.InvoiceLateFeeStartDate,

		InvoiceTotalAmount: m.InvoiceTotalAmount,

		InvoiceStatus:  m.InvoiceStatus,
		InvoicePaidAt:  m.InvoicePaidAt,
		InvoiceSlipURL: m.InvoiceSlipURL,
		InvoiceNotes:   m.InvoiceNotes,

		InvoiceCreatedAt: m.InvoiceCreatedAt,
		InvoiceUpdatedAt: m.InvoiceUpdatedAt,
	}
}

func ToAdminInvoiceResponse(m invoiceModel.InvoiceModel) AdminInvoiceResponse {
	return AdminInvoiceResponse{
		InvoiceResponse:    ToInvoiceResponse(m),
		InvoicePublicToken: m.InvoicePublicToken,
	}
}

func ToAdminInvoiceResponses(ms []invoiceModel.InvoiceModel) []AdminInvoiceResponse {
	out := make([]AdminInvoiceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToAdminInvoiceResponse(ms[i]))
	}
	return out
}
