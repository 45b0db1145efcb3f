package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldGuestID         = "guest_id"
	FieldRoomID          = "room_id"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldCheckInTime     = "check_in_time"
	FieldCheckOutTime    = "check_out_time"
	FieldNumberOfGuests  = "number_of_guests"
	FieldNightlyRate     = "nightly_rate"
	FieldTotalAmount     = "total_amount"
	FieldPaymentStatus   = "payment_status"
	FieldBookingStatus   = "booking_status"
	FieldSpecialRequests = "special_requests"
)

// Booking is a stay. NightlyRate freezes the room price at creation time so
// later price changes never move an existing booking's bill.
type Booking struct {
	ID              string    `db:"id"`
	GuestID         string    `db:"guest_id"`
	RoomID          string    `db:"room_id"`
	CheckInDate     time.Time `db:"check_in_date"`
	CheckOutDate    time.Time `db:"check_out_date"`
	CheckInTime     string    `db:"check_in_time"`
	CheckOutTime    string    `db:"check_out_time"`
	NumberOfGuests  int       `db:"number_of_guests"`
	NightlyRate     float64   `db:"nightly_rate"`
	TotalAmount     float64   `db:"total_amount"`
	PaymentStatus   string    `db:"payment_status"`
	BookingStatus   string    `db:"booking_status"`
	SpecialRequests string    `db:"special_requests"`

	GuestName  string `db:"guest_name"  table:"guests" column:"name"`
	GuestPhone string `db:"guest_phone" table:"guests" column:"phone"`
	RoomNumber string `db:"room_number" table:"rooms"`
	RoomType   string `db:"room_type"   table:"rooms"  column:"type"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN guests ON bookings.guest_id = guests.id LEFT JOIN rooms ON bookings.room_id = rooms.id"
}
