package dto

import (
	"lodge/internal/domains/room/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber    string  `json:"room_number"     validate:"required,max=20"`
	Type          string  `json:"type"            validate:"required,oneof=standard deluxe suite dormitory"`
	Capacity      int     `json:"capacity"        validate:"required,gt=0"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:            uuid.NewString(),
		RoomNumber:    c.RoomNumber,
		Type:          c.Type,
		Capacity:      c.Capacity,
		PricePerNight: c.PricePerNight,
		Status:        constant.RoomStatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber    string  `db:"room_number"     json:"room_number"     validate:"omitempty,max=20"`
	Type          string  `db:"type"            json:"type"            validate:"omitempty,oneof=standard deluxe suite dormitory"`
	Capacity      int     `db:"capacity"        json:"capacity"        validate:"omitempty,gt=0"`
	PricePerNight float64 `db:"price_per_night" json:"price_per_night" validate:"omitempty,gt=0"`
	Status        string  `db:"status"          json:"status"          validate:"omitempty,oneof=available occupied maintenance"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	RoomNumber    string  `json:"room_number"`
	Type          string  `json:"type"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"price_per_night"`
	Status        string  `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Type = model.Type
	r.Capacity = model.Capacity
	r.PricePerNight = model.PricePerNight
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
