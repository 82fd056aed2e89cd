package dto

import (
	"database/sql"
	"palmera/internal/domains/booking/model"
	"palmera/shared"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/failure"
	gModel "palmera/shared/model"
	"palmera/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomTypeID       string  `json:"room_type_id"       validate:"required"`
	GuestName        string  `json:"guest_name"         validate:"required,notblank,max=100"`
	GuestEmail       string  `json:"guest_email"        validate:"required,email,max=100"`
	GuestPhone       string  `json:"guest_phone"        validate:"omitempty,phone"`
	CheckIn          string  `json:"check_in"           validate:"required"`
	CheckOut         string  `json:"check_out"          validate:"required"`
	Adults           int     `json:"adults"             validate:"required,min=1,max=10"`
	Children         int     `json:"children"           validate:"omitempty,min=0,max=10"`
	TotalPrice       float64 `json:"total_price"        validate:"omitempty,min=0"`
	SpecialRequests  string  `json:"special_requests"   validate:"omitempty,max=1000"`
	PaymentSessionID string  `json:"payment_session_id" validate:"omitempty,max=200"`

	// Direct marks the direct-booking path that skips the hosted
	// checkout; the booking is created confirmed instead of pending.
	Direct bool `json:"direct"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("check_in must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("check_out must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return model.Booking{}, failure.BadRequestFromString("check_out must be after check_in") //nolint:wrapcheck
	}

	status := model.StatusPending
	if c.Direct {
		status = model.StatusConfirmed
	}

	paymentSession := sql.NullString{}
	paymentStatus := sql.NullString{}

	if c.PaymentSessionID != "" {
		paymentSession = sql.NullString{String: c.PaymentSessionID, Valid: true}
		paymentStatus = sql.NullString{String: model.PaymentStatusPending, Valid: true}
	}

	now := timezone.Now()

	return model.Booking{
		ID:               uuid.NewString(),
		Reference:        model.NewReference(now),
		RoomTypeID:       c.RoomTypeID,
		GuestName:        c.GuestName,
		GuestEmail:       c.GuestEmail,
		GuestPhone:       c.GuestPhone,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Adults:           c.Adults,
		Children:         c.Children,
		TotalPrice:       c.TotalPrice,
		SpecialRequests:  c.SpecialRequests,
		Status:           status,
		PaymentSessionID: paymentSession,
		PaymentStatus:    paymentStatus,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type CreateBookingResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
}

// ConflictingBooking is the payload attached to a duplicate-booking
// rejection so the caller can render a specific message.
type ConflictingBooking struct {
	Reference  string  `json:"reference"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
	NextAction string  `json:"next_action"`
}

func (c *ConflictingBooking) FromModel(mod model.Booking) {
	c.Reference = mod.Reference
	c.CheckIn = mod.CheckIn.Format(constant.DateOnlyFormat)
	c.CheckOut = mod.CheckOut.Format(constant.DateOnlyFormat)
	c.Status = mod.Status
	c.TotalPrice = mod.TotalPrice

	switch mod.Status {
	case model.StatusConfirmed:
		c.NextAction = "A booking for these dates is already confirmed."
	default:
		c.NextAction = "A booking for these dates is already pending. Complete its payment instead of booking again."
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled expired"`
}

type BulkStatusRequest struct {
	IDs    []string `json:"ids"    validate:"required,min=1,dive,required"`
	Status string   `json:"status" validate:"required,oneof=pending confirmed cancelled expired"`
}

type BulkStatusResult struct {
	ID      string `json:"id"`
	Updated bool   `json:"updated"`
	Error   string `json:"error,omitempty"`
}

type BulkStatusResponse struct {
	Updated int                `json:"updated"`
	Failed  int                `json:"failed"`
	Results []BulkStatusResult `json:"results"`
}

type ReconcilePaymentRequest struct {
	SessionID string `json:"session_id" validate:"required,max=200"`
}

type ReconcilePaymentResponse struct {
	Status           string `json:"status"`
	BookingConfirmed bool   `json:"booking_confirmed"`
}

type DuplicateCluster struct {
	GuestEmail string            `json:"guest_email"`
	CheckIn    string            `json:"check_in"`
	CheckOut   string            `json:"check_out"`
	Bookings   []BookingResponse `json:"bookings"`
}

type DuplicateClustersResponse struct {
	Clusters []DuplicateCluster `json:"clusters"`
}

type BookingResponse struct {
	ID               string  `json:"id"`
	Reference        string  `json:"reference"`
	RoomTypeID       string  `json:"room_type_id"`
	GuestName        string  `json:"guest_name"`
	GuestEmail       string  `json:"guest_email"`
	GuestPhone       string  `json:"guest_phone,omitempty"`
	CheckIn          string  `json:"check_in"`
	CheckOut         string  `json:"check_out"`
	Adults           int     `json:"adults"`
	Children         int     `json:"children"`
	TotalPrice       float64 `json:"total_price"`
	SpecialRequests  string  `json:"special_requests,omitempty"`
	Status           string  `json:"status"`
	PaymentSessionID string  `json:"payment_session_id,omitempty"`
	PaymentStatus    string  `json:"payment_status,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.Reference = mod.Reference
	r.RoomTypeID = mod.RoomTypeID
	r.GuestName = mod.GuestName
	r.GuestEmail = mod.GuestEmail
	r.GuestPhone = mod.GuestPhone
	r.CheckIn = mod.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = mod.CheckOut.Format(constant.DateOnlyFormat)
	r.Adults = mod.Adults
	r.Children = mod.Children
	r.TotalPrice = mod.TotalPrice
	r.SpecialRequests = mod.SpecialRequests
	r.Status = mod.Status
	r.PaymentSessionID = mod.PaymentSessionID.String
	r.PaymentStatus = mod.PaymentStatus.String
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
