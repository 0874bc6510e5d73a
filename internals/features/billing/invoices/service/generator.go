// file: internals/features/billing/invoices/service/generator.go
package service

import (
	"errors"

	"github.com/google/uuid"

	invoiceModel "kosku_backend/internals/features/billing/invoices/model"
	meterModel "kosku_backend/internals/features/dorm/meters/model"
	roomModel "kosku_backend/internals/features/dorm/rooms/model"
	settingsModel "kosku_backend/internals/features/dorm/settings/model"
	tenantModel "kosku_backend/internals/features/dorm/tenants/model"
)

// ErrSettingsMissing: tidak ada baris settings → batch HARUS batal.
// Tidak ada default yang aman untuk tarif uang.
var ErrSettingsMissing = errors.New("dorm settings not found; aborting generation")

/* =======================================================
   BATCH GENERATION — planner murni
   Semua keputusan "kamar mana dapat invoice apa" dihitung
   di sini tanpa DB; layer gorm tinggal load + insert.
======================================================= */

type GenerationInput struct {
	Period   Period
	Settings *settingsModel.SettingsModel
	Rooms    []roomModel.RoomModel          // hanya status occupied
	Tenants  []tenantModel.TenantModel      // hanya status active
	Readings []meterModel.MeterReadingModel // periode ini, urut created_at desc
	// Set kamar yang SUDAH punya invoice periode ini — generate adalah
	// set-difference terhadap ini, bukan blind insert.
	ExistingRoomIDs map[uuid.UUID]bool
}

// GenerationSummary: hasil audit batch. Anomali dilaporkan, tidak fatal.
type GenerationSummary struct {
	Period             string   `json:"period"`
	Generated          int      `json:"generated"`
	SkippedExisting    int      `json:"skipped_existing"`
	RoomsWithoutTenant []string `json:"rooms_without_tenant,omitempty"` // occupied tapi tanpa penyewa aktif
	RoomsWithoutMeter  []string `json:"rooms_without_meter,omitempty"`  // tagihan jalan dengan pemakaian 0
	RoomsDoubleTenant  []string `json:"rooms_double_tenant,omitempty"`  // >1 penyewa aktif; dipakai yang pertama
	RoomsStillUnbilled []string `json:"rooms_still_unbilled,omitempty"` // harus kosong kalau sukses
}

// PlanGeneration menjalankan step 4–7 dari algoritma batch secara murni.
// Sewa = harga bulanan penuh; proration hanya lewat jalur edit/preview
// eksplisit (lihat DESIGN.md).
func PlanGeneration(in GenerationInput) ([]invoiceModel.InvoiceModel, GenerationSummary, error) {
	summary := GenerationSummary{Period: in.Period.String()}

	if in.Settings == nil {
		return nil, summary, ErrSettingsMissing
	}

	fees, err := in.Settings.AdditionalFees()
	if err != nil {
		return nil, summary, err
	}
	discounts, err := in.Settings.AdditionalDiscounts()
	if err != nil {
		return nil, summary, err
	}

	// room → tenant aktif; duplikat → pakai match pertama, laporkan anomali
	tenantByRoom := make(map[uuid.UUID]*tenantModel.TenantModel, len(in.Tenants))
	doubled := map[uuid.UUID]bool{}
	for i := range in.Tenants {
		t := &in.Tenants[i]
		if _, ok := tenantByRoom[t.TenantRoomID]; ok {
			doubled[t.TenantRoomID] = true
			continue
		}
		tenantByRoom[t.TenantRoomID] = t
	}

	// room → reading; input sudah urut created_at desc, jadi baris pertama
	// per kamar = baris paling otoritatif kalau ada duplikat
	readingByRoom := make(map[uuid.UUID]*meterModel.MeterReadingModel, len(in.Readings))
	for i := range in.Readings {
		r := &in.Readings[i]
		if _, ok := readingByRoom[r.MeterReadingRoomID]; !ok {
			readingByRoom[r.MeterReadingRoomID] = r
		}
	}

	invoices := make([]invoiceModel.InvoiceModel, 0, len(in.Rooms))

	for i := range in.Rooms {
		room := &in.Rooms[i]

		if doubled[room.RoomID] {
			summary.RoomsDoubleTenant = append(summary.RoomsDoubleTenant, room.RoomNumber)
		}

		if in.ExistingRoomIDs[room.RoomID] {
			summary.SkippedExisting++
			continue
		}

		tenant, ok := tenantByRoom[room.RoomID]
		if !ok {
			summary.RoomsWithoutTenant = append(summary.RoomsWithoutTenant, room.RoomNumber)
			continue
		}

		// meteran hilang → utilitas 0, tagihan tetap jalan
		usage := UsageInput{}
		if reading, ok := readingByRoom[room.RoomID]; ok {
			usage.Electricity = reading.MeterReadingElectricityUsage
			usage.Water = reading.MeterReadingWaterUsage
		} else {
			summary.RoomsWithoutMeter = append(summary.RoomsWithoutMeter, room.RoomNumber)
		}

		inv, err := AssembleInvoice(in.Period, in.Settings, room.RoomPriceMonth, usage, fees, discounts)
		if err != nil {
			return nil, summary, err
		}
		inv.InvoiceRoomID = room.RoomID
		inv.InvoiceTenantID = tenant.TenantID

		invoices = append(invoices, inv)
		summary.Generated++
	}

	// audit akhir: occupied room yang tetap tak tertagih setelah pass ini
	for i := range in.Rooms {
		room := &in.Rooms[i]
		if in.ExistingRoomIDs[room.RoomID] {
			continue
		}
		if _, ok := tenantByRoom[room.RoomID]; !ok {
			summary.RoomsStillUnbilled = append(summary.RoomsStillUnbilled, room.RoomNumber)
		}
	}

	return invoices, summary, nil
}
