// file: internals/features/billing/invoices/service/meter_usage_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUsage_NoRollover(t *testing.T) {
	// normal: curr − prev
	assert.Equal(t, 35.0, NormalizeUsage(100, 135, 9999, false))

	// angka turun tanpa rollover → negatif DIBIARKAN (indikasi salah input)
	assert.Equal(t, -25.0, NormalizeUsage(120, 95, 9999, false))
}

func TestNormalizeUsage_Rollover(t *testing.T) {
	// wrap melewati plafon 4 digit: (9999 − 9990) + 50 = 59
	assert.Equal(t, 59.0, NormalizeUsage(9990, 50, 9999, true))

	// flag rollover tapi angka tidak turun → diff biasa
	assert.Equal(t, 40.0, NormalizeUsage(100, 140, 9999, true))
}

func TestNormalizeUsage_CeilingWidened(t *testing.T) {
	// maxValue salah konfigurasi (prev > plafon) → ceiling dilebarkan,
	// hasil tidak pernah negatif
	got := NormalizeUsage(12000, 100, 9999, true)
	assert.Equal(t, 100.0, got)
	assert.GreaterOrEqual(t, got, 0.0)
}

func TestInferRollover(t *testing.T) {
	// turun + usage tersimpan non-negatif → anggap wrap
	assert.True(t, InferRollover(9990, 50, 0))
	assert.True(t, InferRollover(9990, 50, 42))

	// turun tapi usage tersimpan negatif → jangan tebak wrap
	assert.False(t, InferRollover(9990, 50, -3))

	// tidak turun → bukan wrap
	assert.False(t, InferRollover(100, 140, 0))
}

func TestEffectiveRollover_ExplicitWins(t *testing.T) {
	yes, no := true, false

	// heuristik bilang wrap, flag eksplisit false → false
	assert.False(t, EffectiveRollover(&no, 9990, 50, 0))

	// heuristik bilang bukan wrap, flag eksplisit true → true
	assert.True(t, EffectiveRollover(&yes, 100, 140, 0))

	// tanpa flag → jatuh ke heuristik
	assert.True(t, EffectiveRollover(nil, 9990, 50, 0))
	assert.False(t, EffectiveRollover(nil, 100, 140, 0))
}

func TestRolloverForReading_NewRowNeverGuesses(t *testing.T) {
	// entri PERTAMA tanpa flag: usage tersimpan masih zero value, itu bukan
	// korooborasi — salah ketik curr < prev harus jadi usage negatif,
	// bukan wrap
	assert.False(t, RolloverForReading(nil, true, 120, 95, 0))
	assert.Equal(t, -25.0, NormalizeUsage(120, 95, 9999,
		RolloverForReading(nil, true, 120, 95, 0)))

	// baris lama dengan usage historis → heuristik boleh jalan
	assert.True(t, RolloverForReading(nil, false, 9990, 50, 42))
	assert.False(t, RolloverForReading(nil, false, 9990, 50, -3))

	// flag eksplisit tetap menang, baru ataupun lama
	yes, no := true, false
	assert.True(t, RolloverForReading(&yes, true, 9990, 50, 0))
	assert.False(t, RolloverForReading(&no, false, 9990, 50, 42))
}
