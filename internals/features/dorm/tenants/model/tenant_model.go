// file: internals/features/dorm/tenants/model/tenant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status penyewa
============================== */

type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "active"
	TenantStatusInactive TenantStatus = "inactive"
)

/* ==============================
   MODEL
============================== */

type TenantModel struct {
	// PK
	TenantID uuid.UUID `gorm:"column:tenant_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"tenant_id"`

	// FK → rooms(room_id)
	TenantRoomID uuid.UUID `gorm:"column:tenant_room_id;type:uuid;not null;index" json:"tenant_room_id"`

	// Identitas
	TenantName  string  `gorm:"column:tenant_name;type:varchar(100);not null" json:"tenant_name"`
	TenantPhone *string `gorm:"column:tenant_phone;type:varchar(30)" json:"tenant_phone,omitempty"`

	// Status & masa huni.
	// Asumsi generator: tepat satu penyewa aktif per kamar terisi;
	// pelanggaran dilaporkan sebagai anomali, bukan error fatal.
	TenantStatus      TenantStatus `gorm:"column:tenant_status;type:varchar(20);not null;default:'active';index" json:"tenant_status"`
	TenantMoveInDate  time.Time    `gorm:"column:tenant_move_in_date;type:date;not null" json:"tenant_move_in_date"`
	TenantMoveOutDate *time.Time   `gorm:"column:tenant_move_out_date;type:date" json:"tenant_move_out_date,omitempty"`

	TenantNotes *string `gorm:"column:tenant_notes;type:text" json:"tenant_notes,omitempty"`

	// Audit
	TenantCreatedAt time.Time      `gorm:"column:tenant_created_at;type:timestamptz;not null;autoCreateTime" json:"tenant_created_at"`
	TenantUpdatedAt time.Time      `gorm:"column:tenant_updated_at;type:timestamptz;not null;autoUpdateTime" json:"tenant_updated_at"`
	TenantDeletedAt gorm.DeletedAt `gorm:"column:tenant_deleted_at;type:timestamptz;index" json:"-"`
}

func (TenantModel) TableName() string { return "tenants" }
