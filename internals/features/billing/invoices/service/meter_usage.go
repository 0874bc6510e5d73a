// file: internals/features/billing/invoices/service/meter_usage.go
package service

/* =======================================================
   METER USAGE NORMALIZER
   Ubah angka meteran prev/curr jadi pemakaian, dengan
   koreksi rollover (counter wrap melewati angka maksimum).
======================================================= */

// NormalizeUsage menghitung pemakaian satu periode.
//   - rollover=false → curr − prev apa adanya; hasil negatif TIDAK di-clamp,
//     sengaja di-surface supaya operator bisa lihat salah input.
//   - rollover=true  & curr ≥ prev → tidak ada wrap di periode ini.
//   - rollover=true  & curr < prev → (ceiling − prev) + curr, dengan ceiling
//     dilebarkan minimal sebesar nilai ekstrem yang terobservasi; maxValue
//     yang salah konfigurasi tidak akan pernah menghasilkan pemakaian negatif.
func NormalizeUsage(prev, curr, maxValue float64, rollover bool) float64 {
	if !rollover {
		return curr - prev
	}
	if curr >= prev {
		return curr - prev
	}
	ceiling := maxValue
	if prev > ceiling {
		ceiling = prev
	}
	if curr > ceiling {
		ceiling = curr
	}
	return (ceiling - prev) + curr
}

// InferRollover: heuristik untuk baris lama yang belum punya flag rollover.
// Anggap wrap kalau angka turun DAN usage tersimpan sebelumnya non-negatif
// (usage non-negatif dipakai sebagai korooborasi). Flag eksplisit di baris
// meteran selalu menang atas heuristik ini.
func InferRollover(prev, curr, storedUsage float64) bool {
	return curr < prev && storedUsage >= 0
}

// EffectiveRollover memilih antara flag eksplisit dan heuristik.
func EffectiveRollover(explicit *bool, prev, curr, storedUsage float64) bool {
	if explicit != nil {
		return *explicit
	}
	return InferRollover(prev, curr, storedUsage)
}

// RolloverForReading: keputusan rollover saat MENYIMPAN pembacaan.
// Baris baru tanpa flag tidak punya usage historis — zero value model
// bukan korooborasi, jadi heuristik tidak boleh jalan: salah ketik
// curr < prev pada entri pertama harus muncul sebagai usage negatif,
// bukan jadi pemakaian wrap raksasa. Heuristik hanya untuk baris lama.
func RolloverForReading(explicit *bool, isNew bool, prev, curr, storedUsage float64) bool {
	if explicit != nil {
		return *explicit
	}
	if isNew {
		return false
	}
	return InferRollover(prev, curr, storedUsage)
}
