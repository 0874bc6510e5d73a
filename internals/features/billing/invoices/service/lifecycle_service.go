// file: internals/features/billing/invoices/service/lifecycle_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	invoiceModel "kosku_backend/internals/features/billing/invoices/model"
	meterModel "kosku_backend/internals/features/dorm/meters/model"
	roomModel "kosku_backend/internals/features/dorm/rooms/model"
	settingsModel "kosku_backend/internals/features/dorm/settings/model"
	tenantModel "kosku_backend/internals/features/dorm/tenants/model"
	helper "kosku_backend/internals/helpers"
)

/* =======================================================
   INVOICE LIFECYCLE MANAGER (sisi persistence)
   Planner & policy murni ada di generator.go/reconcile.go;
   layer ini cuma load snapshot, insert, dan persist koreksi.
======================================================= */

type LifecycleService struct {
	DB *gorm.DB
}

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{DB: db}
}

func (s *LifecycleService) loadSettings(tx *gorm.DB) (*settingsModel.SettingsModel, error) {
	var st settingsModel.SettingsModel
	if err := tx.First(&st, "setting_id = ?", settingsModel.SettingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

// GenerateForPeriod: batch generation, aman di-rerun & aman terhadap trigger
// ganda. Snapshot "invoice yang sudah ada" diambil dalam transaksi yang sama
// dengan insert, dan insert memakai ON CONFLICT (room, period_start) DO
// NOTHING — race dua run paralel ditutup oleh unique index, bukan cuma
// existence check aplikasi.
func (s *LifecycleService) GenerateForPeriod(ctx context.Context, period Period) (GenerationSummary, error) {
	var summary GenerationSummary

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 2) settings — hilang = fatal, batch batal
		settings, err := s.loadSettings(tx)
		if err != nil {
			return err
		}
		if settings == nil {
			return ErrSettingsMissing
		}

		// 3) kamar terisi
		var rooms []roomModel.RoomModel
		if err := tx.Where("room_status = ?", roomModel.RoomStatusOccupied).
			Order("room_number ASC").Find(&rooms).Error; err != nil {
			return err
		}

		roomIDs := make([]uuid.UUID, 0, len(rooms))
		for i := range rooms {
			roomIDs = append(roomIDs, rooms[i].RoomID)
		}

		// 4) penyewa aktif pada kamar-kamar itu
		var tenants []tenantModel.TenantModel
		if len(roomIDs) > 0 {
			if err := tx.Where("tenant_status = ? AND tenant_room_id IN ?", tenantModel.TenantStatusActive, roomIDs).
				Order("tenant_created_at ASC").Find(&tenants).Error; err != nil {
				return err
			}
		}

		// 5) invoice yang sudah ada untuk periode ini
		var existing []invoiceModel.InvoiceModel
		if err := tx.Select("invoice_room_id").
			Where("invoice_period_start = ?", period.Start()).
			Find(&existing).Error; err != nil {
			return err
		}
		existingRoomIDs := make(map[uuid.UUID]bool, len(existing))
		for i := range existing {
			existingRoomIDs[existing[i].InvoiceRoomID] = true
		}

		// 6) meteran periode ini; created_at desc supaya duplikat resolve
		//    ke baris paling baru
		var readings []meterModel.MeterReadingModel
		if len(roomIDs) > 0 {
			if err := tx.Where("meter_reading_month = ? AND meter_reading_room_id IN ?", period.Start(), roomIDs).
				Order("meter_reading_created_at DESC").Find(&readings).Error; err != nil {
				return err
			}
		}

		// 7) plan murni
		invoices, sum, err := PlanGeneration(GenerationInput{
			Period:          period,
			Settings:        settings,
			Rooms:           rooms,
			Tenants:         tenants,
			Readings:        readings,
			ExistingRoomIDs: existingRoomIDs,
		})
		if err != nil {
			return err
		}

		inserted := 0
		for i := range invoices {
			token, err := helper.GeneratePublicToken()
			if err != nil {
				return fmt.Errorf("generate public token: %w", err)
			}
			invoices[i].InvoicePublicToken = token

			// target conflict harus menyebut predikat index parsialnya
			if err := tx.Clauses(clause.OnConflict{
				Columns:     []clause.Column{{Name: "invoice_room_id"}, {Name: "invoice_period_start"}},
				TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "invoice_deleted_at IS NULL"}}},
				DoNothing:   true,
			}).Create(&invoices[i]).Error; err != nil {
				return err
			}
			if invoices[i].InvoiceID != uuid.Nil {
				inserted++
			}
		}

		// run paralel bisa menyerobot sebagian insert; hitung realita
		sum.SkippedExisting += sum.Generated - inserted
		sum.Generated = inserted
		summary = sum
		return nil
	})

	return summary, err
}

// LoadPeriod: "list invoice untuk periode" + reconciliation pass di depannya.
// Kegagalan persist satu baris di-log dan di-skip — tidak membatalkan
// rekonsiliasi baris lain (last-write-wins terhadap edit admin paralel;
// didokumentasikan sebagai trade-off yang diterima).
func (s *LifecycleService) LoadPeriod(ctx context.Context, period Period, today time.Time) ([]invoiceModel.InvoiceModel, error) {
	db := s.DB.WithContext(ctx)

	settings, err := s.loadSettings(db)
	if err != nil {
		return nil, err
	}
	var discounts []settingsModel.Rule
	resyncEnabled := false
	if settings != nil {
		if discounts, err = settings.AdditionalDiscounts(); err != nil {
			return nil, err
		}
		resyncEnabled = true
	}

	var invoices []invoiceModel.InvoiceModel
	if err := db.Where("invoice_period_start = ?", period.Start()).
		Order("invoice_created_at ASC").Find(&invoices).Error; err != nil {
		return nil, err
	}

	for i := range invoices {
		inv := &invoices[i]

		var changed bool
		if resyncEnabled {
			changed, err = ReconcileInvoice(inv, discounts, today)
		} else {
			// tanpa settings tidak ada basis resync diskon; status tetap jalan
			changed = ApplySlipPolicy(inv)
			if ApplyDueDatePolicy(inv, today) {
				changed = true
			}
			err = nil
		}
		if err != nil {
			log.Printf("[WARN] reconcile invoice %s: %v", inv.InvoiceID, err)
			continue
		}
		if !changed {
			continue
		}
		if err := db.Save(inv).Error; err != nil {
			log.Printf("[WARN] persist reconcile invoice %s: %v", inv.InvoiceID, err)
		}
	}

	return invoices, nil
}

/* =======================================================
   Transisi status manual (aksi admin)
======================================================= */

var ErrInvalidTransition = errors.New("invalid status transition")

// ApplyManualTransition: paid/cancelled dari status non-terminal mana pun;
// draft boleh diterbitkan jadi pending. Selain itu ditolak.
func ApplyManualTransition(inv *invoiceModel.InvoiceModel, target invoiceModel.InvoiceStatus, now time.Time) error {
	if !target.Valid() {
		return ErrInvalidTransition
	}
	if inv.InvoiceStatus.IsTerminal() {
		return ErrInvalidTransition
	}

	switch target {
	case invoiceModel.InvoiceStatusPaid:
		inv.InvoiceStatus = invoiceModel.InvoiceStatusPaid
		inv.InvoicePaidAt = &now
		return nil
	case invoiceModel.InvoiceStatusCancelled:
		inv.InvoiceStatus = invoiceModel.InvoiceStatusCancelled
		return nil
	case invoiceModel.InvoiceStatusPending:
		if inv.InvoiceStatus == invoiceModel.InvoiceStatusDraft {
			inv.InvoiceStatus = invoiceModel.InvoiceStatusPending
			return nil
		}
	}
	return ErrInvalidTransition
}
