// file: internals/features/billing/invoices/service/water_tier_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTieredWaterBill(t *testing.T) {
	const (
		rate     = 18.0
		minUnits = 10.0
		minPrice = 180.0
	)

	// di bawah minimum → bayar floor tier
	assert.Equal(t, 180.0, TieredWaterBill(8, rate, minUnits, minPrice))

	// tepat di threshold → masih tier minimum
	assert.Equal(t, 180.0, TieredWaterBill(10, rate, minUnits, minPrice))

	// di atas minimum → linear polos
	assert.Equal(t, 270.0, TieredWaterBill(15, rate, minUnits, minPrice))

	// pemakaian 0 → tetap kena minimum
	assert.Equal(t, 180.0, TieredWaterBill(0, rate, minUnits, minPrice))
}

func TestTieredWaterBill_MinPriceAboveRateFloor(t *testing.T) {
	// minPrice lebih besar dari minUnits×rate → minPrice yang menang
	assert.Equal(t, 250.0, TieredWaterBill(8, 18, 10, 250))

	// di atas threshold minPrice tidak berlaku — diskontinuitas disengaja:
	// 11 unit bisa lebih murah dari floor tier
	assert.Equal(t, 198.0, TieredWaterBill(11, 18, 10, 250))
}
