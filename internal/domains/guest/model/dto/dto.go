package dto

import (
	"lodge/internal/domains/guest/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name          string `json:"name"            validate:"required,max=100"`
	Email         string `json:"email"           validate:"omitempty,email,max=100"`
	Phone         string `json:"phone"           validate:"required,max=20"`
	Address       string `json:"address"         validate:"omitempty,max=255"`
	IDProofType   string `json:"id_proof_type"   validate:"omitempty,max=50"`
	IDProofNumber string `json:"id_proof_number" validate:"omitempty,max=50"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		IDProofType:   c.IDProofType,
		IDProofNumber: c.IDProofNumber,
		Status:        constant.GuestStatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	Name          string `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Email         string `db:"email"           json:"email"           validate:"omitempty,email,max=100"`
	Phone         string `db:"phone"           json:"phone"           validate:"omitempty,max=20"`
	Address       string `db:"address"         json:"address"         validate:"omitempty,max=255"`
	IDProofType   string `db:"id_proof_type"   json:"id_proof_type"   validate:"omitempty,max=50"`
	IDProofNumber string `db:"id_proof_number" json:"id_proof_number" validate:"omitempty,max=50"`
	Status        string `db:"status"          json:"status"          validate:"omitempty,oneof=active checked_out"`
}

type SecondaryGuestRequest struct {
	Name          string `json:"name"            validate:"required,max=100"`
	Phone         string `json:"phone"           validate:"omitempty,max=20"`
	IDProofType   string `json:"id_proof_type"   validate:"omitempty,max=50"`
	IDProofNumber string `json:"id_proof_number" validate:"omitempty,max=50"`
}

func (c *SecondaryGuestRequest) ToModel(guestID, user string) model.SecondaryGuest {
	return model.SecondaryGuest{
		ID:            uuid.NewString(),
		GuestID:       guestID,
		Name:          c.Name,
		Phone:         c.Phone,
		IDProofType:   c.IDProofType,
		IDProofNumber: c.IDProofNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SecondaryGuestResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	IDProofType   string `json:"id_proof_type"`
	IDProofNumber string `json:"id_proof_number"`
}

func (r *SecondaryGuestResponse) FromModel(model model.SecondaryGuest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.IDProofType = model.IDProofType
	r.IDProofNumber = model.IDProofNumber
}

type GuestResponse struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Email           string                   `json:"email"`
	Phone           string                   `json:"phone"`
	Address         string                   `json:"address"`
	IDProofType     string                   `json:"id_proof_type"`
	IDProofNumber   string                   `json:"id_proof_number"`
	Status          string                   `json:"status"`
	SecondaryGuests []SecondaryGuestResponse `json:"secondary_guests,omitempty"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.IDProofType = model.IDProofType
	r.IDProofNumber = model.IDProofNumber
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

func (r *GuestResponse) WithSecondaryGuests(models []model.SecondaryGuest) {
	r.SecondaryGuests = make([]SecondaryGuestResponse, len(models))
	for i, mod := range models {
		r.SecondaryGuests[i].FromModel(mod)
	}
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
