package model

import "palmera/shared/model"

const (
	TableName  = "menu_items"
	EntityName = "menu_item"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldAvailable   = "available"
	FieldImageURL    = "image_url"
)

type MenuItem struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Category    string  `db:"category"`
	Available   bool    `db:"available"`
	ImageURL    string  `db:"image_url"`
	model.Metadata
}
