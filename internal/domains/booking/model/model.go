package model

import (
	"database/sql"
	"palmera/shared/model"
	"strconv"
	"strings"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldReference        = "reference"
	FieldRoomTypeID       = "room_type_id"
	FieldGuestName        = "guest_name"
	FieldGuestEmail       = "guest_email"
	FieldGuestPhone       = "guest_phone"
	FieldCheckIn          = "check_in"
	FieldCheckOut         = "check_out"
	FieldAdults           = "adults"
	FieldChildren         = "children"
	FieldTotalPrice       = "total_price"
	FieldSpecialRequests  = "special_requests"
	FieldStatus           = "status"
	FieldPaymentSessionID = "payment_session_id"
	FieldPaymentStatus    = "payment_status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

type Booking struct {
	ID               string         `db:"id"`
	Reference        string         `db:"reference"`
	RoomTypeID       string         `db:"room_type_id"`
	GuestName        string         `db:"guest_name"`
	GuestEmail       string         `db:"guest_email"`
	GuestPhone       string         `db:"guest_phone"`
	CheckIn          time.Time      `db:"check_in"`
	CheckOut         time.Time      `db:"check_out"`
	Adults           int            `db:"adults"`
	Children         int            `db:"children"`
	TotalPrice       float64        `db:"total_price"`
	SpecialRequests  string         `db:"special_requests"`
	Status           string         `db:"status"`
	PaymentSessionID sql.NullString `db:"payment_session_id"`
	PaymentStatus    sql.NullString `db:"payment_status"`
	model.Metadata
}

// ActiveStatuses are the states that hold a room for the guest; only
// these participate in conflict detection.
func ActiveStatuses() []string {
	return []string{StatusPending, StatusConfirmed}
}

// Overlaps reports whether the half-open stay ranges [inA, outA) and
// [inB, outB) intersect. A check-out on another stay's check-in day is a
// back-to-back stay, not a conflict.
func Overlaps(inA, outA, inB, outB time.Time) bool {
	return inA.Before(outB) && inB.Before(outA)
}

// NewReference derives the short human-readable booking code from the
// creation timestamp.
func NewReference(t time.Time) string {
	return "BK" + strings.ToUpper(strconv.FormatInt(t.UnixNano(), 36))
}
