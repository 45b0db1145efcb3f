package dto

import (
	"lodge/internal/domains/servicerequest/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type ItemRequest struct {
	Name     string  `json:"name"     validate:"required,max=100"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
}

type CreateServiceRequestRequest struct {
	RoomID      string        `json:"room_id"      validate:"required"`
	BookingID   string        `json:"booking_id"   validate:"omitempty"`
	Type        string        `json:"type"         validate:"required,oneof=food room_service"`
	Items       []ItemRequest `json:"items"        validate:"omitempty,dive"`
	Description string        `json:"description"  validate:"omitempty,max=500"`
	TotalAmount float64       `json:"total_amount" validate:"omitempty,gte=0"`
}

// ToModel builds the row; when items are present the total is derived from
// them and the submitted total_amount is ignored.
func (c *CreateServiceRequestRequest) ToModel(user string) model.ServiceRequest {
	items := make(model.Items, len(c.Items))
	for i, item := range c.Items {
		items[i] = model.Item{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	total := c.TotalAmount
	if len(items) > 0 {
		total = items.Total()
	}

	var bookingID *string
	if c.BookingID != constant.Empty {
		bookingID = &c.BookingID
	}

	return model.ServiceRequest{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		BookingID:   bookingID,
		Type:        c.Type,
		Items:       items,
		Description: c.Description,
		TotalAmount: total,
		Status:      constant.ServiceRequestStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequestRequest struct {
	Status      string  `db:"status"       json:"status"      validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Description string  `db:"description"  json:"description" validate:"omitempty,max=500"`
	TotalAmount float64 `db:"total_amount" json:"total_amount" validate:"omitempty,gte=0"`
}

type ItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Amount   float64 `json:"amount"`
}

type ServiceRequestResponse struct {
	ID          string         `json:"id"`
	RoomID      string         `json:"room_id"`
	BookingID   string         `json:"booking_id,omitempty"`
	Type        string         `json:"type"`
	Items       []ItemResponse `json:"items"`
	Description string         `json:"description"`
	TotalAmount float64        `json:"total_amount"`
	Status      string         `json:"status"`
	gDto.Metadata
}

func (r *ServiceRequestResponse) FromModel(model model.ServiceRequest) {
	r.ID = model.ID
	r.RoomID = model.RoomID

	if model.BookingID != nil {
		r.BookingID = *model.BookingID
	}

	r.Type = model.Type
	r.Items = make([]ItemResponse, len(model.Items))

	for i, item := range model.Items {
		r.Items[i] = ItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Amount:   float64(item.Quantity) * item.Price,
		}
	}

	r.Description = model.Description
	r.TotalAmount = model.TotalAmount
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetServiceRequestsResponse struct {
	ServiceRequests []ServiceRequestResponse `json:"service_requests"`
	TotalPage       int                      `json:"total_page"`
	TotalData       int                      `json:"total_data"`
}

func (r *GetServiceRequestsResponse) FromModels(models []model.ServiceRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ServiceRequests = make([]ServiceRequestResponse, len(models))
	for i, mod := range models {
		r.ServiceRequests[i].FromModel(mod)
	}
}
