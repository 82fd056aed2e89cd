package model

import (
	"palmera/shared/model"
	"strconv"
	"strings"
	"time"
)

const (
	TableName  = "conference_bookings"
	EntityName = "conference_booking"

	FieldID           = "id"
	FieldReference    = "reference"
	FieldContactName  = "contact_name"
	FieldContactEmail = "contact_email"
	FieldContactPhone = "contact_phone"
	FieldCompany      = "company"
	FieldEventDate    = "event_date"
	FieldStartTime    = "start_time"
	FieldEndTime      = "end_time"
	FieldAttendees    = "attendees"
	FieldEventType    = "event_type"
	FieldNotes        = "notes"
	FieldStatus       = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)

// ConferenceBooking reserves the event space for a time window on a
// single day. Start and end are wall-clock "HH:MM" strings; the fixed
// width keeps lexicographic comparison equal to chronological order.
type ConferenceBooking struct {
	ID           string    `db:"id"`
	Reference    string    `db:"reference"`
	ContactName  string    `db:"contact_name"`
	ContactEmail string    `db:"contact_email"`
	ContactPhone string    `db:"contact_phone"`
	Company      string    `db:"company"`
	EventDate    time.Time `db:"event_date"`
	StartTime    string    `db:"start_time"`
	EndTime      string    `db:"end_time"`
	Attendees    int       `db:"attendees"`
	EventType    string    `db:"event_type"`
	Notes        string    `db:"notes"`
	Status       string    `db:"status"`
	model.Metadata
}

// ActiveStatuses are the states that hold the event space.
func ActiveStatuses() []string {
	return []string{StatusPending, StatusConfirmed}
}

// Overlaps reports whether the half-open windows [startA, endA) and
// [startB, endB) intersect on the same day.
func Overlaps(startA, endA, startB, endB string) bool {
	return startA < endB && startB < endA
}

// NewReference derives the short human-readable event code from the
// creation timestamp.
func NewReference(t time.Time) string {
	return "CF" + strings.ToUpper(strconv.FormatInt(t.UnixNano(), 36))
}
