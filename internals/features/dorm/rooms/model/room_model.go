// file: internals/features/dorm/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status kamar
============================== */

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

/* ==============================
   MODEL
============================== */

type RoomModel struct {
	// PK
	RoomID uuid.UUID `gorm:"column:room_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"room_id"`

	// Identitas kamar
	RoomNumber string `gorm:"column:room_number;type:varchar(20);not null;uniqueIndex:uniq_room_number" json:"room_number"`
	RoomFloor  *int   `gorm:"column:room_floor;type:int" json:"room_floor,omitempty"`

	// Status diubah sebagai efek samping check-in/check-out penyewa,
	// bukan oleh modul billing.
	RoomStatus RoomStatus `gorm:"column:room_status;type:varchar(20);not null;default:'available';index" json:"room_status"`

	// Harga sewa bulanan
	RoomPriceMonth float64 `gorm:"column:room_price_month;type:numeric(14,2);not null;default:0;check:room_price_month>=0" json:"room_price_month"`

	RoomNotes *string `gorm:"column:room_notes;type:text" json:"room_notes,omitempty"`

	// Audit
	RoomCreatedAt time.Time      `gorm:"column:room_created_at;type:timestamptz;not null;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt time.Time      `gorm:"column:room_updated_at;type:timestamptz;not null;autoUpdateTime" json:"room_updated_at"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;type:timestamptz;index" json:"-"`
}

func (RoomModel) TableName() string { return "rooms" }
