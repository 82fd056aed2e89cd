package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"palmera/internal/domains/roomtype/model/dto"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple name", in: "Deluxe Suite", want: "deluxe-suite"},
		{name: "punctuation collapses", in: "Ocean View -- King!", want: "ocean-view-king"},
		{name: "leading and trailing separators trimmed", in: "  Garden Room  ", want: "garden-room"},
		{name: "digits preserved", in: "Suite 21", want: "suite-21"},
		{name: "already a slug", in: "standard-double", want: "standard-double"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.Slugify(tt.in))
		})
	}
}

func TestCreateRoomTypeRequest_ToModel(t *testing.T) {
	req := dto.CreateRoomTypeRequest{
		Name:         "Deluxe Suite",
		Description:  "A big room",
		BasePrice:    250,
		MaxOccupancy: 3,
		Amenities:    []string{"wifi", "minibar"},
	}

	mod := req.ToModel("test-user", "https://cdn.example.com/room.png")

	assert.NotEmpty(t, mod.ID)
	assert.Equal(t, "deluxe-suite", mod.Slug)
	assert.Equal(t, "https://cdn.example.com/room.png", mod.ImageURL)
	assert.Len(t, mod.Amenities, 2)
	assert.Equal(t, "test-user", mod.CreatedBy)
}
