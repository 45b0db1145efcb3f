package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldType          = "type"
	FieldCapacity      = "capacity"
	FieldPricePerNight = "price_per_night"
	FieldStatus        = "status"
)

type Room struct {
	ID            string  `db:"id"`
	RoomNumber    string  `db:"room_number"`
	Type          string  `db:"type"`
	Capacity      int     `db:"capacity"`
	PricePerNight float64 `db:"price_per_night"`
	Status        string  `db:"status"`
	model.Metadata
}
