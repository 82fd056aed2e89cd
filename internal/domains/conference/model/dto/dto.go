package dto

import (
	"palmera/internal/domains/conference/model"
	"palmera/shared"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/failure"
	gModel "palmera/shared/model"
	"palmera/shared/timezone"

	"github.com/google/uuid"
)

type CreateConferenceBookingRequest struct {
	ContactName  string `json:"contact_name"  validate:"required,notblank,max=100"`
	ContactEmail string `json:"contact_email" validate:"required,email,max=100"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,phone"`
	Company      string `json:"company"       validate:"omitempty,max=100"`
	EventDate    string `json:"event_date"    validate:"required"`
	StartTime    string `json:"start_time"    validate:"required,datetime=15:04"`
	EndTime      string `json:"end_time"      validate:"required,datetime=15:04"`
	Attendees    int    `json:"attendees"     validate:"required,min=1,max=500"`
	EventType    string `json:"event_type"    validate:"omitempty,max=50"`
	Notes        string `json:"notes"         validate:"omitempty,max=1000"`
}

func (c *CreateConferenceBookingRequest) ToModel(user string) (model.ConferenceBooking, error) {
	eventDate, err := timezone.Parse(constant.DateOnlyFormat, c.EventDate)
	if err != nil {
		return model.ConferenceBooking{}, failure.BadRequestFromString("event_date must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	if c.EndTime <= c.StartTime {
		return model.ConferenceBooking{}, failure.BadRequestFromString("end_time must be after start_time") //nolint:wrapcheck
	}

	now := timezone.Now()

	return model.ConferenceBooking{
		ID:           uuid.NewString(),
		Reference:    model.NewReference(now),
		ContactName:  c.ContactName,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		Company:      c.Company,
		EventDate:    eventDate,
		StartTime:    c.StartTime,
		EndTime:      c.EndTime,
		Attendees:    c.Attendees,
		EventType:    c.EventType,
		Notes:        c.Notes,
		Status:       model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type CreateConferenceBookingResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
}

// ConflictingEvent is attached to a rejected reservation so the caller
// can show which window already holds the space.
type ConflictingEvent struct {
	Reference string `json:"reference"`
	EventDate string `json:"event_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

func (c *ConflictingEvent) FromModel(mod model.ConferenceBooking) {
	c.Reference = mod.Reference
	c.EventDate = mod.EventDate.Format(constant.DateOnlyFormat)
	c.StartTime = mod.StartTime
	c.EndTime = mod.EndTime
	c.Status = mod.Status
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled expired"`
}

type ConferenceBookingResponse struct {
	ID           string `json:"id"`
	Reference    string `json:"reference"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Company      string `json:"company,omitempty"`
	EventDate    string `json:"event_date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Attendees    int    `json:"attendees"`
	EventType    string `json:"event_type,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Status       string `json:"status"`
	gDto.Metadata
}

func (r *ConferenceBookingResponse) FromModel(mod model.ConferenceBooking) {
	r.ID = mod.ID
	r.Reference = mod.Reference
	r.ContactName = mod.ContactName
	r.ContactEmail = mod.ContactEmail
	r.ContactPhone = mod.ContactPhone
	r.Company = mod.Company
	r.EventDate = mod.EventDate.Format(constant.DateOnlyFormat)
	r.StartTime = mod.StartTime
	r.EndTime = mod.EndTime
	r.Attendees = mod.Attendees
	r.EventType = mod.EventType
	r.Notes = mod.Notes
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetConferenceBookingsResponse struct {
	ConferenceBookings []ConferenceBookingResponse `json:"conference_bookings"`
	TotalPage          int                         `json:"total_page"`
	TotalData          int                         `json:"total_data"`
}

func (r *GetConferenceBookingsResponse) FromModels(models []model.ConferenceBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ConferenceBookings = make([]ConferenceBookingResponse, len(models))
	for i, mod := range models {
		r.ConferenceBookings[i].FromModel(mod)
	}
}
