// file: internals/features/dorm/meters/model/meter_reading_model_test.go
package model

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Unique (room, month) parsial atas baris hidup — pembacaan yang dihapus
// tidak boleh bikin input ulang bulan yang sama gagal unique violation.
func TestMeterUniqueIndexIgnoresSoftDeleted(t *testing.T) {
	f, ok := reflect.TypeOf(MeterReadingModel{}).FieldByName("MeterReadingRoomID")
	require.True(t, ok)

	tag := f.Tag.Get("gorm")
	assert.Contains(t, tag, "uniqueIndex:uniq_meter_room_month")
	assert.Contains(t, tag, "where:meter_reading_deleted_at IS NULL")
}

func TestNormalizeMonth(t *testing.T) {
	m := MeterReadingModel{
		MeterReadingMonth: time.Date(2026, 9, 17, 13, 45, 0, 0, time.FixedZone("WIB", 7*3600)),
	}
	m.NormalizeMonth()
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), m.MeterReadingMonth)
}
