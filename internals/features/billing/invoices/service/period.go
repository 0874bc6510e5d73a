// file: internals/features/billing/invoices/service/period.go
package service

import (
	"fmt"
	"time"
)

// Period: value object periode tagihan (satu bulan kalender).
// Selalu dipass eksplisit ke setiap operasi — tidak ada state
// "periode aktif" global.
type Period struct {
	Year  int `json:"year" validate:"required,min=2000,max=2100"`
	Month int `json:"month" validate:"required,min=1,max=12"`
}

// Start: tanggal 1 bulan tersebut (UTC).
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End: eksklusif — tanggal 1 bulan berikutnya.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

func (p Period) Valid() bool {
	return p.Year >= 2000 && p.Year <= 2100 && p.Month >= 1 && p.Month <= 12
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// DayInPeriod: tanggal `day` pada bulan periode; day sudah di-clamp [1,28]
// di settings sehingga selalu valid untuk semua panjang bulan.
func (p Period) DayInPeriod(day int) time.Time {
	return time.Date(p.Year, time.Month(p.Month), day, 0, 0, 0, 0, time.UTC)
}
