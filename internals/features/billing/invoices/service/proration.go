// file: internals/features/billing/invoices/service/proration.go
package service

import (
	"fmt"
	"math"
)

/* =======================================================
   RENT PRORATION CALCULATOR
   Sewa parsial periode pertama, model bulan fixed 30 hari.
======================================================= */

type ProrationResult struct {
	RawDailyRate float64 `json:"raw_daily_rate"` // monthly/30 sebelum floor
	DailyRate    float64 `json:"daily_rate"`     // floor(monthly/30)
	OccupiedDays int     `json:"occupied_days"`
	Amount       float64 `json:"amount"`
	Formula      string  `json:"formula"` // untuk ditampilkan di kuitansi
}

// ProrateRent menghitung sewa periode pertama penyewa.
//
// Bulan dianggap 30 hari flat (bukan panjang kalender). Tarif harian
// dibulatkan ke bawah — aturan pembulatan yang berpihak ke penyewa dan
// HARUS direproduksi persis (bukan round-half-up) supaya paritas dengan
// invoice lama terjaga.
//
// Jendela huni: moveInDay ≤ billingDay → (billingDay − moveInDay + 1) hari;
// kalau masuk setelah anchor, jendela wrap maju ke anchor bulan berikutnya:
// (30 − moveInDay + 1) + billingDay.
func ProrateRent(monthlyRent float64, moveInDay, billingDay int) ProrationResult {
	if moveInDay < 1 {
		moveInDay = 1
	}
	if moveInDay > 30 {
		moveInDay = 30
	}
	if billingDay < 1 {
		billingDay = 1
	}
	if billingDay > 30 {
		billingDay = 30
	}

	raw := monthlyRent / 30.0
	daily := math.Floor(raw)

	var days int
	if moveInDay <= billingDay {
		days = billingDay - moveInDay + 1
	} else {
		days = (30 - moveInDay + 1) + billingDay
	}

	amount := daily * float64(days)

	return ProrationResult{
		RawDailyRate: raw,
		DailyRate:    daily,
		OccupiedDays: days,
		Amount:       amount,
		Formula: fmt.Sprintf("floor(%s / 30) = %s × %d hari = %s",
			trimZeros(monthlyRent), trimZeros(daily), days, trimZeros(amount)),
	}
}

// IsProrated: deteksi apakah rent_amount tersimpan adalah hasil proration
// (dibanding terhadap hitungan proration dalam epsilon kecil).
func IsProrated(storedRent, monthlyRent float64, moveInDay, billingDay int) bool {
	p := ProrateRent(monthlyRent, moveInDay, billingDay)
	return math.Abs(storedRent-p.Amount) < MoneyEpsilon
}

func trimZeros(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
