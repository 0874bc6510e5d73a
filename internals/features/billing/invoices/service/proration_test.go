// file: internals/features/billing/invoices/service/proration_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProrateRent_Basic(t *testing.T) {
	// masuk tanggal 5, anchor tagihan tanggal 20 → 16 hari
	p := ProrateRent(3000, 5, 20)
	assert.Equal(t, 100.0, p.DailyRate)
	assert.Equal(t, 16, p.OccupiedDays)
	assert.Equal(t, 1600.0, p.Amount)
	assert.Equal(t, "floor(3000 / 30) = 100 × 16 hari = 1600", p.Formula)
}

func TestProrateRent_WrapToNextAnchor(t *testing.T) {
	// masuk SETELAH anchor → jendela maju ke anchor bulan berikutnya:
	// (30 − 25 + 1) + 10 = 16 hari
	p := ProrateRent(3000, 25, 10)
	assert.Equal(t, 16, p.OccupiedDays)
	assert.Equal(t, 1600.0, p.Amount)
}

func TestProrateRent_DailyRateFloored(t *testing.T) {
	// 1000/30 = 33.33… → floor ke 33 (berpihak ke penyewa), BUKAN round
	p := ProrateRent(1000, 1, 30)
	assert.Equal(t, 33.0, p.DailyRate)
	assert.InDelta(t, 33.333, p.RawDailyRate, 0.001)
	assert.Equal(t, 30, p.OccupiedDays)
	assert.Equal(t, 990.0, p.Amount) // bukan 1000 — artefak floor yang disengaja
}

func TestProrateRent_DayClamping(t *testing.T) {
	// hari di luar [1,30] di-clamp
	low := ProrateRent(3000, 0, 20)
	ref := ProrateRent(3000, 1, 20)
	assert.Equal(t, ref.OccupiedDays, low.OccupiedDays)

	high := ProrateRent(3000, 5, 35)
	ref2 := ProrateRent(3000, 5, 30)
	assert.Equal(t, ref2.OccupiedDays, high.OccupiedDays)
}

func TestProrateRent_SameDay(t *testing.T) {
	// masuk pas di anchor → 1 hari
	p := ProrateRent(3000, 20, 20)
	assert.Equal(t, 1, p.OccupiedDays)
	assert.Equal(t, 100.0, p.Amount)
}

func TestIsProrated(t *testing.T) {
	assert.True(t, IsProrated(1600, 3000, 5, 20))
	assert.False(t, IsProrated(3000, 3000, 5, 20))
}
