package model

import (
	"palmera/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID           = "id"
	FieldName         = "name"
	FieldSlug         = "slug"
	FieldDescription  = "description"
	FieldBasePrice    = "base_price"
	FieldMaxOccupancy = "max_occupancy"
	FieldAmenities    = "amenities"
	FieldImageURL     = "image_url"
)

type RoomType struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Slug         string         `db:"slug"`
	Description  string         `db:"description"`
	BasePrice    float64        `db:"base_price"`
	MaxOccupancy int            `db:"max_occupancy"`
	Amenities    pq.StringArray `db:"amenities"`
	ImageURL     string         `db:"image_url"`
	model.Metadata
}
