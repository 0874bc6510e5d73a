// file: internals/features/billing/invoices/service/generator_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	meterModel "kosku_backend/internals/features/dorm/meters/model"
	roomModel "kosku_backend/internals/features/dorm/rooms/model"
	tenantModel "kosku_backend/internals/features/dorm/tenants/model"
)

func testRoom(number string, price float64) roomModel.RoomModel {
	return roomModel.RoomModel{
		RoomID:         uuid.New(),
		RoomNumber:     number,
		RoomStatus:     roomModel.RoomStatusOccupied,
		RoomPriceMonth: price,
	}
}

func testTenant(roomID uuid.UUID, name string) tenantModel.TenantModel {
	return tenantModel.TenantModel{
		TenantID:     uuid.New(),
		TenantRoomID: roomID,
		TenantName:   name,
		TenantStatus: tenantModel.TenantStatusActive,
	}
}

func TestPlanGeneration_SettingsMissing(t *testing.T) {
	_, _, err := PlanGeneration(GenerationInput{
		Period:   Period{Year: 2026, Month: 9},
		Settings: nil,
	})
	require.ErrorIs(t, err, ErrSettingsMissing)
}

func TestPlanGeneration_HappyPath(t *testing.T) {
	roomA := testRoom("A1", 1300)
	roomB := testRoom("A2", 1500)
	tenantA := testTenant(roomA.RoomID, "Budi")
	tenantB := testTenant(roomB.RoomID, "Sari")

	in := GenerationInput{
		Period:   Period{Year: 2026, Month: 9},
		Settings: testSettings(),
		Rooms:    []roomModel.RoomModel{roomA, roomB},
		Tenants:  []tenantModel.TenantModel{tenantA, tenantB},
		Readings: []meterModel.MeterReadingModel{
			{MeterReadingRoomID: roomA.RoomID, MeterReadingElectricityUsage: 30, MeterReadingWaterUsage: 15},
			{MeterReadingRoomID: roomB.RoomID, MeterReadingElectricityUsage: 20, MeterReadingWaterUsage: 8},
		},
		ExistingRoomIDs: map[uuid.UUID]bool{},
	}

	invoices, summary, err := PlanGeneration(in)
	require.NoError(t, err)
	require.Len(t, invoices, 2)

	assert.Equal(t, 2, summary.Generated)
	assert.Zero(t, summary.SkippedExisting)
	assert.Empty(t, summary.RoomsWithoutTenant)
	assert.Empty(t, summary.RoomsWithoutMeter)
	assert.Empty(t, summary.RoomsStillUnbilled)
	assert.Equal(t, "2026-09", summary.Period)

	// tiap invoice terikat ke kamar + penyewa yang benar, sewa bulanan PENUH
	assert.Equal(t, roomA.RoomID, invoices[0].InvoiceRoomID)
	assert.Equal(t, tenantA.TenantID, invoices[0].InvoiceTenantID)
	assert.Equal(t, 1300.0, invoices[0].InvoiceRentAmount)
	assert.Equal(t, 1500.0, invoices[1].InvoiceRentAmount)

	for i := range invoices {
		assert.True(t, TotalsConsistent(&invoices[i]))
	}
}

func TestPlanGeneration_SkipsExisting(t *testing.T) {
	roomA := testRoom("A1", 1300)
	roomB := testRoom("A2", 1500)

	in := GenerationInput{
		Period:   Period{Year: 2026, Month: 9},
		Settings: testSettings(),
		Rooms:    []roomModel.RoomModel{roomA, roomB},
		Tenants: []tenantModel.TenantModel{
			testTenant(roomA.RoomID, "Budi"),
			testTenant(roomB.RoomID, "Sari"),
		},
		ExistingRoomIDs: map[uuid.UUID]bool{roomA.RoomID: true},
	}

	invoices, summary, err := PlanGeneration(in)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, roomB.RoomID, invoices[0].InvoiceRoomID)
	assert.Equal(t, 1, summary.Generated)
	assert.Equal(t, 1, summary.SkippedExisting)
}

// Rerun penuh: semua kamar sudah punya invoice → nol baru. Inilah yang
// membuat generate aman dipanggil berulang.
func TestPlanGeneration_RerunIsNoop(t *testing.T) {
	roomA := testRoom("A1", 1300)
	roomB := testRoom("A2", 1500)

	in := GenerationInput{
		Period:   Period{Year: 2026, Month: 9},
		Settings: testSettings(),
		Rooms:    []roomModel.RoomModel{roomA, roomB},
		Tenants: []tenantModel.TenantModel{
			testTenant(roomA.RoomID, "Budi"),
			testTenant(roomB.RoomID, "Sari"),
		},
		ExistingRoomIDs: map[uuid.UUID]bool{roomA.RoomID: true, roomB.RoomID: true},
	}

	invoices, summary, err := PlanGeneration(in)
	require.NoError(t, err)
	assert.Empty(t, invoices)
	assert.Zero(t, summary.Generated)
	assert.Equal(t, 2, summary.SkippedExisting)
}

func TestPlanGeneration_RoomWithoutTenant(t *testing.T) {
	roomA := testRoom("A1", 1300)

	invoices, summary, err := PlanGeneration(GenerationInput{
		Period:          Period{Year: 2026, Month: 9},
		Settings:        testSettings(),
		Rooms:           []roomModel.RoomModel{roomA},
		ExistingRoomIDs: map[uuid.UUID]bool{},
	})
	require.NoError(t, err)

	// tanpa penyewa aktif → tidak ada invoice, anomali dilaporkan dua kali
	// (skip + audit akhir unbilled)
	assert.Empty(t, invoices)
	assert.Equal(t, []string{"A1"}, summary.RoomsWithoutTenant)
	assert.Equal(t, []string{"A1"}, summary.RoomsStillUnbilled)
}

func TestPlanGeneration_RoomWithoutMeter(t *testing.T) {
	roomA := testRoom("A1", 1300)

	invoices, summary, err := PlanGeneration(GenerationInput{
		Period:          Period{Year: 2026, Month: 9},
		Settings:        testSettings(),
		Rooms:           []roomModel.RoomModel{roomA},
		Tenants:         []tenantModel.TenantModel{testTenant(roomA.RoomID, "Budi")},
		ExistingRoomIDs: map[uuid.UUID]bool{},
	})
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	// meteran hilang → degradasi, bukan fatal: utilitas 0, sewa tetap jalan
	assert.Equal(t, []string{"A1"}, summary.RoomsWithoutMeter)
	assert.Zero(t, invoices[0].InvoiceElectricityBill)
	assert.Zero(t, invoices[0].InvoiceElectricityUsage)
	assert.Equal(t, 1300.0, invoices[0].InvoiceRentAmount)
}

func TestPlanGeneration_DoubleTenant(t *testing.T) {
	roomA := testRoom("A1", 1300)
	first := testTenant(roomA.RoomID, "Budi")
	second := testTenant(roomA.RoomID, "Sari")

	invoices, summary, err := PlanGeneration(GenerationInput{
		Period:          Period{Year: 2026, Month: 9},
		Settings:        testSettings(),
		Rooms:           []roomModel.RoomModel{roomA},
		Tenants:         []tenantModel.TenantModel{first, second},
		ExistingRoomIDs: map[uuid.UUID]bool{},
	})
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	// match pertama yang dipakai, anomali tetap dicatat
	assert.Equal(t, first.TenantID, invoices[0].InvoiceTenantID)
	assert.Equal(t, []string{"A1"}, summary.RoomsDoubleTenant)
}

func TestPlanGeneration_DuplicateReadings_NewestWins(t *testing.T) {
	roomA := testRoom("A1", 1300)

	// input urut created_at DESC → baris pertama per kamar yang dipakai
	invoices, _, err := PlanGeneration(GenerationInput{
		Period:   Period{Year: 2026, Month: 9},
		Settings: testSettings(),
		Rooms:    []roomModel.RoomModel{roomA},
		Tenants:  []tenantModel.TenantModel{testTenant(roomA.RoomID, "Budi")},
		Readings: []meterModel.MeterReadingModel{
			{MeterReadingRoomID: roomA.RoomID, MeterReadingElectricityUsage: 40, MeterReadingWaterUsage: 12},
			{MeterReadingRoomID: roomA.RoomID, MeterReadingElectricityUsage: 30, MeterReadingWaterUsage: 15},
		},
		ExistingRoomIDs: map[uuid.UUID]bool{},
	})
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, 40.0, invoices[0].InvoiceElectricityUsage)
	assert.Equal(t, 12.0, invoices[0].InvoiceWaterUsage)
}
