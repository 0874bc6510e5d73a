// file: internals/features/billing/invoices/model/invoice_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status invoice
============================== */

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"     // entri manual, belum diterbitkan
	InvoiceStatusPending   InvoiceStatus = "pending"   // terbit, belum dibayar, belum jatuh tempo
	InvoiceStatusOverdue   InvoiceStatus = "overdue"   // belum dibayar lewat jatuh tempo
	InvoiceStatusVerifying InvoiceStatus = "verifying" // slip terlampir, menunggu konfirmasi admin
	InvoiceStatusPaid      InvoiceStatus = "paid"      // terminal
	InvoiceStatusCancelled InvoiceStatus = "cancelled" // terminal, manual only
)

// IsTerminal: paid & cancelled tidak pernah diubah otomatis lagi.
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusCancelled
}

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPending, InvoiceStatusOverdue,
		InvoiceStatusVerifying, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

/* ==============================
   Breakdown line (JSONB item)
============================== */

// BreakdownLine: satu baris rincian biaya tambahan / diskon.
// Disimpan di JSONB supaya total dan rinciannya tidak pernah "drift".
type BreakdownLine struct {
	Detail       string  `json:"detail"`
	CalcType     string  `json:"calc_type"`
	Unit         float64 `json:"unit"`
	PricePerUnit float64 `json:"price_per_unit"`
	TotalAmount  float64 `json:"total_amount"`
}

/* ==============================================
   MODEL — entitas sentral billing
============================================== */

type InvoiceModel struct {
	// PK
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`

	// Referensi kamar & penyewa
	InvoiceRoomID   uuid.UUID `gorm:"column:invoice_room_id;type:uuid;not null;index;uniqueIndex:uniq_invoice_room_period,priority:1,where:invoice_deleted_at IS NULL" json:"invoice_room_id"`
	InvoiceTenantID uuid.UUID `gorm:"column:invoice_tenant_id;type:uuid;not null;index" json:"invoice_tenant_id"`

	// Periode tagihan [start, end) — tepat satu bulan kalender.
	// Unique (room, period_start) = jaminan level storage untuk
	// at-most-one-invoice-per-kamar-per-periode. Index-nya PARSIAL
	// (hanya baris hidup) supaya invoice yang di-soft-delete tidak
	// memblokir generate ulang kamar yang sama.
	InvoicePeriodStart time.Time `gorm:"column:invoice_period_start;type:date;not null;index;uniqueIndex:uniq_invoice_room_period,priority:2" json:"invoice_period_start"`
	InvoicePeriodEnd   time.Time `gorm:"column:invoice_period_end;type:date;not null" json:"invoice_period_end"`

	InvoiceIssueDate time.Time `gorm:"column:invoice_issue_date;type:date;not null" json:"invoice_issue_date"`
	InvoiceDueDate   time.Time `gorm:"column:invoice_due_date;type:date;not null;index" json:"invoice_due_date"`

	// Komponen nominal
	InvoiceRentAmount       float64 `gorm:"column:invoice_rent_amount;type:numeric(14,2);not null;default:0" json:"invoice_rent_amount"`
	InvoiceWaterUsage       float64 `gorm:"column:invoice_water_usage;type:numeric(12,2);not null;default:0" json:"invoice_water_usage"`
	InvoiceWaterBill        float64 `gorm:"column:invoice_water_bill;type:numeric(14,2);not null;default:0" json:"invoice_water_bill"`
	InvoiceElectricityUsage float64 `gorm:"column:invoice_electricity_usage;type:numeric(12,2);not null;default:0" json:"invoice_electricity_usage"`
	InvoiceElectricityBill  float64 `gorm:"column:invoice_electricity_bill;type:numeric(14,2);not null;default:0" json:"invoice_electricity_bill"`
	InvoiceCommonFee        float64 `gorm:"column:invoice_common_fee;type:numeric(14,2);not null;default:0" json:"invoice_common_fee"`

	// Biaya tambahan + rincian
	InvoiceAdditionalFeeTotal float64        `gorm:"column:invoice_additional_fee_total;type:numeric(14,2);not null;default:0" json:"invoice_additional_fee_total"`
	InvoiceAdditionalFeeItems datatypes.JSON `gorm:"column:invoice_additional_fee_items;type:jsonb;not null;default:'[]'" json:"invoice_additional_fee_items"`

	// Diskon + rincian
	InvoiceDiscountTotal float64        `gorm:"column:invoice_discount_total;type:numeric(14,2);not null;default:0" json:"invoice_discount_total"`
	InvoiceDiscountItems datatypes.JSON `gorm:"column:invoice_discount_items;type:jsonb;not null;default:'[]'" json:"invoice_discount_items"`

	// Denda keterlambatan
	InvoiceLateFeeAmount    float64    `gorm:"column:invoice_late_fee_amount;type:numeric(14,2);not null;default:0" json:"invoice_late_fee_amount"`
	InvoiceLateFeePerDay    float64    `gorm:"column:invoice_late_fee_per_day;type:numeric(12,2);not null;default:0" json:"invoice_late_fee_per_day"`
	InvoiceLateFeeStartDate *time.Time `gorm:"column:invoice_late_fee_start_date;type:date" json:"invoice_late_fee_start_date,omitempty"`

	// Invariant: total = rent + water + electricity + common_fee +
	// additional_fees + late_fee − discount. Jaga lewat RecomputeTotals,
	// jangan pernah set manual.
	InvoiceTotalAmount float64 `gorm:"column:invoice_total_amount;type:numeric(14,2);not null;default:0" json:"invoice_total_amount"`

	// Status & pembayaran
	InvoiceStatus InvoiceStatus `gorm:"column:invoice_status;type:varchar(20);not null;default:'pending';index" json:"invoice_status"`
	InvoicePaidAt *time.Time    `gorm:"column:invoice_paid_at;type:timestamptz" json:"invoice_paid_at,omitempty"`

	// Slip transfer (diisi oleh upload publik; engine hanya bereaksi pada field ini)
	InvoiceSlipURL *string `gorm:"column:invoice_slip_url;type:text" json:"invoice_slip_url,omitempty"`

	// Token opaque untuk akses penyewa tanpa login
	InvoicePublicToken string `gorm:"column:invoice_public_token;type:varchar(64);not null;uniqueIndex:uniq_invoice_public_token" json:"-"`

	InvoiceNotes *string `gorm:"column:invoice_notes;type:text" json:"invoice_notes,omitempty"`

	// Audit
	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;type:timestamptz;not null;autoCreateTime;index" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;type:timestamptz;not null;autoUpdateTime" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;type:timestamptz;index" json:"-"`
}

func (InvoiceModel) TableName() string { return "invoices" }

/* ==============================
   ACCESSORS — breakdown JSONB
============================== */

func (m *InvoiceModel) AdditionalFeeLines() ([]BreakdownLine, error) {
	return decodeLines(m.InvoiceAdditionalFeeItems)
}

func (m *InvoiceModel) DiscountLines() ([]BreakdownLine, error) {
	return decodeLines(m.InvoiceDiscountItems)
}

func decodeLines(raw datatypes.JSON) ([]BreakdownLine, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var lines []BreakdownLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func EncodeLines(lines []BreakdownLine) (datatypes.JSON, error) {
	if lines == nil {
		lines = []BreakdownLine{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
