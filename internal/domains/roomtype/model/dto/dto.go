package dto

import (
	"strings"

	"palmera/internal/domains/roomtype/model"
	"palmera/shared"
	gDto "palmera/shared/dto"
	gModel "palmera/shared/model"
	"palmera/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRoomTypeRequest struct {
	Name         string   `json:"name" validate:"required,notblank,min=3,max=100"`
	Description  string   `json:"description" validate:"max=2000"`
	BasePrice    float64  `json:"base_price" validate:"required,gt=0"`
	MaxOccupancy int      `json:"max_occupancy" validate:"required,min=1,max=10"`
	Amenities    []string `json:"amenities" validate:"omitempty,dive,notblank,max=50"`
	Image        string   `json:"image" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
}

func (c *CreateRoomTypeRequest) ToModel(user, imageURL string) model.RoomType {
	return model.RoomType{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Slug:         Slugify(c.Name),
		Description:  c.Description,
		BasePrice:    c.BasePrice,
		MaxOccupancy: c.MaxOccupancy,
		Amenities:    pq.StringArray(c.Amenities),
		ImageURL:     imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name         string   `db:"name"          json:"name"          validate:"omitempty,notblank,min=3,max=100"`
	Description  string   `db:"description"   json:"description"   validate:"omitempty,max=2000"`
	BasePrice    float64  `db:"base_price"    json:"base_price"    validate:"omitempty,gt=0"`
	MaxOccupancy int      `db:"max_occupancy" json:"max_occupancy" validate:"omitempty,min=1,max=10"`
	Amenities    []string `db:"amenities"     json:"amenities"     validate:"omitempty,dive,notblank,max=50"`
	Image        string   `json:"image" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
}

type RoomTypeResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	BasePrice    float64  `json:"base_price"`
	MaxOccupancy int      `json:"max_occupancy"`
	Amenities    []string `json:"amenities"`
	ImageURL     string   `json:"image_url"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Description = model.Description
	r.BasePrice = model.BasePrice
	r.MaxOccupancy = model.MaxOccupancy
	r.Amenities = model.Amenities
	r.ImageURL = model.ImageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, m := range models {
		r.RoomTypes[i].FromModel(m)
	}
}

// Slugify lowercases the name and collapses every non-alphanumeric run
// into a single hyphen.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
