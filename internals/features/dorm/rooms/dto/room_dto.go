// file: internals/features/dorm/rooms/dto/room_dto.go
package dto

import (
	"strings"

	roomModel "kosku_backend/internals/features/dorm/rooms/model"
)

type RoomCreateDTO struct {
	RoomNumber     string  `json:"room_number" validate:"required,max=20"`
	RoomFloor      *int    `json:"room_floor,omitempty"`
	RoomPriceMonth float64 `json:"room_price_month" validate:"min=0"`
	RoomNotes      *string `json:"room_notes,omitempty"`
}

func (in RoomCreateDTO) ToModel() roomModel.RoomModel {
	return roomModel.RoomModel{
		RoomNumber:     strings.TrimSpace(in.RoomNumber),
		RoomFloor:      in.RoomFloor,
		RoomStatus:     roomModel.RoomStatusAvailable,
		RoomPriceMonth: in.RoomPriceMonth,
		RoomNotes:      in.RoomNotes,
	}
}

// Update (partial). Status TIDAK ada di sini — occupied/available berubah
// lewat check-in/check-out penyewa; maintenance lewat endpoint khusus.
type RoomUpdateDTO struct {
	RoomNumber     *string  `json:"room_number,omitempty" validate:"omitempty,max=20"`
	RoomFloor      *int     `json:"room_floor,omitempty"`
	RoomPriceMonth *float64 `json:"room_price_month,omitempty" validate:"omitempty,min=0"`
	RoomNotes      *string  `json:"room_notes,omitempty"`
}

func ApplyRoomUpdate(m *roomModel.RoomModel, in RoomUpdateDTO) {
	if in.RoomNumber != nil {
		m.RoomNumber = strings.TrimSpace(*in.RoomNumber)
	}
	if in.RoomFloor != nil {
		m.RoomFloor = in.RoomFloor
	}
	if in.RoomPriceMonth != nil {
		m.RoomPriceMonth = *in.RoomPriceMonth
	}
	if in.RoomNotes != nil {
		m.RoomNotes = in.RoomNotes
	}
}
