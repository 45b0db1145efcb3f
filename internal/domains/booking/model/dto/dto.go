package dto

import (
	"time"

	"lodge/internal/domains/booking/model"
	guestDto "lodge/internal/domains/guest/model/dto"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestID         string                           `json:"guest_id"         validate:"required"`
	RoomID          string                           `json:"room_id"          validate:"required"`
	CheckInDate     string                           `json:"check_in_date"    validate:"required"`
	CheckOutDate    string                           `json:"check_out_date"   validate:"required"`
	NumberOfGuests  int                              `json:"number_of_guests" validate:"required,gt=0"`
	SpecialRequests string                           `json:"special_requests" validate:"omitempty,max=500"`
	SecondaryGuests []guestDto.SecondaryGuestRequest `json:"secondary_guests" validate:"omitempty,dive"`
}

func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

// ToModel builds the booking row with the room's price frozen as NightlyRate.
func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, nightlyRate float64) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		GuestID:         c.GuestID,
		RoomID:          c.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  c.NumberOfGuests,
		NightlyRate:     nightlyRate,
		PaymentStatus:   constant.PaymentStatusPending,
		BookingStatus:   constant.BookingStatusConfirmed,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateBookingRequest is a partial field merge. BookingStatus carries no db
// tag: status transitions run through the transactional paths, never through
// the generic column merge.
type UpdateBookingRequest struct {
	CheckInDate     string  `json:"check_in_date"  validate:"omitempty"`
	CheckOutDate    string  `json:"check_out_date" validate:"omitempty"`
	NumberOfGuests  int     `db:"number_of_guests" json:"number_of_guests" validate:"omitempty,gt=0"`
	TotalAmount     float64 `db:"total_amount"     json:"total_amount"     validate:"omitempty,gte=0"`
	PaymentStatus   string  `db:"payment_status"   json:"payment_status"   validate:"omitempty,oneof=pending partial paid"`
	BookingStatus   string  `json:"booking_status" validate:"omitempty,oneof=confirmed checked_in checked_out cancelled"`
	SpecialRequests string  `db:"special_requests" json:"special_requests" validate:"omitempty,max=500"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	GuestID         string  `json:"guest_id"`
	RoomID          string  `json:"room_id"`
	GuestName       string  `json:"guest_name"`
	GuestPhone      string  `json:"guest_phone"`
	RoomNumber      string  `json:"room_number"`
	RoomType        string  `json:"room_type"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	CheckInTime     string  `json:"check_in_time"`
	CheckOutTime    string  `json:"check_out_time"`
	NumberOfGuests  int     `json:"number_of_guests"`
	NightlyRate     float64 `json:"nightly_rate"`
	TotalAmount     float64 `json:"total_amount"`
	PaymentStatus   string  `json:"payment_status"`
	BookingStatus   string  `json:"booking_status"`
	SpecialRequests string  `json:"special_requests"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.GuestName = model.GuestName
	r.GuestPhone = model.GuestPhone
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.CheckInTime = model.CheckInTime
	r.CheckOutTime = model.CheckOutTime
	r.NumberOfGuests = model.NumberOfGuests
	r.NightlyRate = model.NightlyRate
	r.TotalAmount = model.TotalAmount
	r.PaymentStatus = model.PaymentStatus
	r.BookingStatus = model.BookingStatus
	r.SpecialRequests = model.SpecialRequests
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// InvoiceLine is one priced row on a checkout invoice.
type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// Invoice is the computed bill for a stay, serialized into the checkout
// payment's notes so it can be reread later without recomputing.
type Invoice struct {
	InvoiceNumber       string        `json:"invoice_number"`
	BookingID           string        `json:"booking_id"`
	GuestName           string        `json:"guest_name"`
	GuestPhone          string        `json:"guest_phone"`
	RoomNumber          string        `json:"room_number"`
	RoomType            string        `json:"room_type"`
	CheckInDate         string        `json:"check_in_date"`
	CheckOutDate        string        `json:"check_out_date"`
	Nights              int           `json:"nights"`
	NightlyRate         float64       `json:"nightly_rate"`
	RoomCharges         float64       `json:"room_charges"`
	ServiceLines        []InvoiceLine `json:"service_lines"`
	TotalServiceCharges float64       `json:"total_service_charges"`
	TotalAmount         float64       `json:"total_amount"`
	IssuedAt            string        `json:"issued_at"`
}

type CheckoutResponse struct {
	Message string  `json:"message"`
	Invoice Invoice `json:"invoice"`
}
