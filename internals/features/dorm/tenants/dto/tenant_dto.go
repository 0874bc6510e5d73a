// file: internals/features/dorm/tenants/dto/tenant_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	tenantModel "kosku_backend/internals/features/dorm/tenants/model"
)

// Check-in = create tenant aktif + kamar jadi occupied (satu transaksi).
type TenantCheckInDTO struct {
	TenantRoomID     uuid.UUID `json:"tenant_room_id" validate:"required"`
	TenantName       string    `json:"tenant_name" validate:"required,max=100"`
	TenantPhone      *string   `json:"tenant_phone,omitempty" validate:"omitempty,max=30"`
	TenantMoveInDate time.Time `json:"tenant_move_in_date" validate:"required"`
	TenantNotes      *string   `json:"tenant_notes,omitempty"`
}

func (in TenantCheckInDTO) ToModel() tenantModel.TenantModel {
	return tenantModel.TenantModel{
		TenantRoomID:     in.TenantRoomID,
		TenantName:       strings.TrimSpace(in.TenantName),
		TenantPhone:      in.TenantPhone,
		TenantStatus:     tenantModel.TenantStatusActive,
		TenantMoveInDate: in.TenantMoveInDate,
		TenantNotes:      in.TenantNotes,
	}
}

type TenantUpdateDTO struct {
	TenantName       *string    `json:"tenant_name,omitempty" validate:"omitempty,max=100"`
	TenantPhone      *string    `json:"tenant_phone,omitempty" validate:"omitempty,max=30"`
	TenantMoveInDate *time.Time `json:"tenant_move_in_date,omitempty"`
	TenantNotes      *string    `json:"tenant_notes,omitempty"`
}

func ApplyTenantUpdate(m *tenantModel.TenantModel, in TenantUpdateDTO) {
	if in.TenantName != nil {
		m.TenantName = strings.TrimSpace(*in.TenantName)
	}
	if in.TenantPhone != nil {
		m.TenantPhone = in.TenantPhone
	}
	if in.TenantMoveInDate != nil {
		m.TenantMoveInDate = *in.TenantMoveInDate
	}
	if in.TenantNotes != nil {
		m.TenantNotes = in.TenantNotes
	}
}

type TenantCheckOutDTO struct {
	TenantMoveOutDate *time.Time `json:"tenant_move_out_date,omitempty"` // default hari ini
}
