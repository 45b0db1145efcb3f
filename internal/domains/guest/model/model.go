package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID     = "id"
	FieldName   = "name"
	FieldEmail  = "email"
	FieldPhone  = "phone"
	FieldStatus = "status"
)

const (
	SecondaryTableName  = "secondary_guests"
	SecondaryEntityName = "secondary_guest"

	FieldGuestID = "guest_id"
)

type Guest struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	Address       string `db:"address"`
	IDProofType   string `db:"id_proof_type"`
	IDProofNumber string `db:"id_proof_number"`
	Status        string `db:"status"`
	model.Metadata
}

// SecondaryGuest is a co-occupant registered under a primary guest.
type SecondaryGuest struct {
	ID            string `db:"id"`
	GuestID       string `db:"guest_id"`
	Name          string `db:"name"`
	Phone         string `db:"phone"`
	IDProofType   string `db:"id_proof_type"`
	IDProofNumber string `db:"id_proof_number"`
	model.Metadata
}
