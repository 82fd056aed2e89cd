package model

import "palmera/shared/model"

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID        = "id"
	FieldGuestName = "guest_name"
	FieldQuote     = "quote"
	FieldRating    = "rating"
	FieldPublished = "published"
)

type Testimonial struct {
	ID        string `db:"id"`
	GuestName string `db:"guest_name"`
	Quote     string `db:"quote"`
	Rating    int    `db:"rating"`
	Published bool   `db:"published"`
	model.Metadata
}
