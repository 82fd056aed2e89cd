package dto

import (
	"palmera/internal/domains/testimonial/model"
	"palmera/shared"
	gDto "palmera/shared/dto"
	gModel "palmera/shared/model"
	"palmera/shared/timezone"

	"github.com/google/uuid"
)

type CreateTestimonialRequest struct {
	GuestName string `json:"guest_name" validate:"required,notblank,max=100"`
	Quote     string `json:"quote"      validate:"required,notblank,max=1000"`
	Rating    int    `json:"rating"     validate:"required,min=1,max=5"`
	Published bool   `json:"published"`
}

func (c *CreateTestimonialRequest) ToModel(user string) model.Testimonial {
	return model.Testimonial{
		ID:        uuid.NewString(),
		GuestName: c.GuestName,
		Quote:     c.Quote,
		Rating:    c.Rating,
		Published: c.Published,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTestimonialRequest struct {
	GuestName string `db:"guest_name" json:"guest_name" validate:"omitempty,notblank,max=100"`
	Quote     string `db:"quote"      json:"quote"      validate:"omitempty,notblank,max=1000"`
	Rating    int    `db:"rating"     json:"rating"     validate:"omitempty,min=1,max=5"`
	Published *bool  `db:"published"  json:"published"  validate:"omitempty"`
}

type TestimonialResponse struct {
	ID        string `json:"id"`
	GuestName string `json:"guest_name"`
	Quote     string `json:"quote"`
	Rating    int    `json:"rating"`
	Published bool   `json:"published"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(mod model.Testimonial) {
	r.ID = mod.ID
	r.GuestName = mod.GuestName
	r.Quote = mod.Quote
	r.Rating = mod.Rating
	r.Published = mod.Published
	r.Metadata.FromModel(mod.Metadata)
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTestimonialsResponse) FromModels(models []model.Testimonial, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, mod := range models {
		r.Testimonials[i].FromModel(mod)
	}
}
