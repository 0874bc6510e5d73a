// file: internals/features/billing/invoices/service/period_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod(t *testing.T) {
	p := Period{Year: 2026, Month: 2}

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), p.Start())
	// end eksklusif = tanggal 1 bulan berikutnya, aman untuk Februari
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), p.End())
	assert.Equal(t, "2026-02", p.String())
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), p.DayInPeriod(28))
}

func TestPeriodValid(t *testing.T) {
	assert.True(t, Period{Year: 2026, Month: 12}.Valid())
	assert.False(t, Period{Year: 2026, Month: 0}.Valid())
	assert.False(t, Period{Year: 2026, Month: 13}.Valid())
	assert.False(t, Period{Year: 1999, Month: 5}.Valid())
}
