package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldAmount    = "amount"
	FieldMethod    = "method"
	FieldStatus    = "status"
	FieldNotes     = "notes"
)

// Payment is a money record against a booking. The checkout payment carries
// the serialized invoice snapshot in Notes; manual payments leave it free-form.
type Payment struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	Amount    float64 `db:"amount"`
	Method    string  `db:"method"`
	Status    string  `db:"status"`
	Notes     string  `db:"notes"`
	model.Metadata
}
