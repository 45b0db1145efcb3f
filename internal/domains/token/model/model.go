package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "room_tokens"
	EntityName = "room_token"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldRoomID    = "room_id"
	FieldToken     = "token"
	FieldIsActive  = "is_active"
	FieldExpiresAt = "expires_at"
	FieldIssuedAt  = "issued_at"
)

// RoomToken is the per-stay credential gating the guest ordering page.
// It is issued at check-in and deactivated at checkout or cancellation.
type RoomToken struct {
	ID        string     `db:"id"`
	BookingID string     `db:"booking_id"`
	RoomID    string     `db:"room_id"`
	Token     string     `db:"token"`
	IsActive  bool       `db:"is_active"`
	IssuedAt  time.Time  `db:"issued_at"`
	ExpiresAt *time.Time `db:"expires_at"`
	model.Metadata
}
