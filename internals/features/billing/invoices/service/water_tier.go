// file: internals/features/billing/invoices/service/water_tier.go
package service

/* =======================================================
   TIERED WATER PRICING
   Tier minimum + linear di atas threshold.
======================================================= */

// TieredWaterBill menghitung tagihan air.
//
// usage ≤ minUnits → penyewa tetap bayar minimal yang TERBESAR antara
// minPrice terkonfigurasi dan harga minUnits pada tarif normal:
// max(usageBill, max(minPrice, minUnits×rate)).
//
// usage > minUnits → usage×rate polos, tanpa floor. Diskontinuitas tepat
// di threshold dipertahankan (tidak di-smooth) — konsisten dengan cara
// komponen pendapatan lain dihitung.
func TieredWaterBill(usage, rate, minUnits, minPrice float64) float64 {
	usageBill := usage * rate
	if usage > minUnits {
		return usageBill
	}

	floor := minUnits * rate
	if minPrice > floor {
		floor = minPrice
	}
	if usageBill > floor {
		return usageBill
	}
	return floor
}
