package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "menu_items"
	EntityName = "menu_item"

	FieldID        = "id"
	FieldName      = "name"
	FieldCategory  = "category"
	FieldPrice     = "price"
	FieldAvailable = "available"
)

type MenuItem struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	Category  string  `db:"category"`
	Price     float64 `db:"price"`
	Available bool    `db:"available"`
	model.Metadata
}
