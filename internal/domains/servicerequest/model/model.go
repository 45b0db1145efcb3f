package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"lodge/shared/model"
)

const (
	TableName  = "service_requests"
	EntityName = "service_request"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldBookingID   = "booking_id"
	FieldType        = "type"
	FieldItems       = "items"
	FieldTotalAmount = "total_amount"
	FieldStatus      = "status"
)

// Item is a single ordered line inside a service request.
type Item struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Items maps to a JSONB column.
type Items []Item

func (i Items) Value() (driver.Value, error) {
	if i == nil {
		return "[]", nil
	}

	data, err := json.Marshal(i)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal service request items: %w", err)
	}

	return data, nil
}

func (i *Items) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, i) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(value), i) //nolint:wrapcheck
	case nil:
		*i = nil

		return nil
	default:
		return errors.New("unsupported source type for service request items")
	}
}

// Total sums quantity times unit price over all items.
func (i Items) Total() float64 {
	total := 0.0
	for _, item := range i {
		total += float64(item.Quantity) * item.Price
	}

	return total
}

type ServiceRequest struct {
	ID          string  `db:"id"`
	RoomID      string  `db:"room_id"`
	BookingID   *string `db:"booking_id"`
	Type        string  `db:"type"`
	Items       Items   `db:"items"`
	Description string  `db:"description"`
	TotalAmount float64 `db:"total_amount"`
	Status      string  `db:"status"`
	model.Metadata
}
