package dto_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"palmera/internal/domains/booking/model"
	"palmera/internal/domains/booking/model/dto"
	"palmera/shared/failure"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		wantErr    bool
		wantStatus string
	}{
		{
			name: "valid request",
			req: dto.CreateBookingRequest{
				RoomTypeID: "room-type-id",
				GuestName:  "Test Guest",
				GuestEmail: "guest@example.com",
				CheckIn:    "2026-09-10",
				CheckOut:   "2026-09-14",
				Adults:     2,
			},
			wantStatus: model.StatusPending,
		},
		{
			name: "direct booking is created confirmed",
			req: dto.CreateBookingRequest{
				RoomTypeID: "room-type-id",
				GuestName:  "Test Guest",
				GuestEmail: "guest@example.com",
				CheckIn:    "2026-09-10",
				CheckOut:   "2026-09-14",
				Adults:     2,
				Direct:     true,
			},
			wantStatus: model.StatusConfirmed,
		},
		{
			name: "malformed check_in",
			req: dto.CreateBookingRequest{
				CheckIn:  "10-09-2026",
				CheckOut: "2026-09-14",
			},
			wantErr: true,
		},
		{
			name: "check_out equal to check_in",
			req: dto.CreateBookingRequest{
				CheckIn:  "2026-09-10",
				CheckOut: "2026-09-10",
			},
			wantErr: true,
		},
		{
			name: "check_out before check_in",
			req: dto.CreateBookingRequest{
				CheckIn:  "2026-09-14",
				CheckOut: "2026-09-10",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := tt.req.ToModel("test-user")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, booking.ID)
			assert.NotEmpty(t, booking.Reference)
			assert.Equal(t, tt.wantStatus, booking.Status)
			assert.Equal(t, "test-user", booking.CreatedBy)
			assert.False(t, booking.PaymentSessionID.Valid)
		})
	}
}

func TestCreateBookingRequest_ToModelPaymentSession(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomTypeID:       "room-type-id",
		GuestName:        "Test Guest",
		GuestEmail:       "guest@example.com",
		CheckIn:          "2026-09-10",
		CheckOut:         "2026-09-14",
		Adults:           2,
		PaymentSessionID: "cs_test_session",
	}

	booking, err := req.ToModel("test-user")

	assert.NoError(t, err)
	assert.True(t, booking.PaymentSessionID.Valid)
	assert.Equal(t, "cs_test_session", booking.PaymentSessionID.String)
	assert.Equal(t, model.PaymentStatusPending, booking.PaymentStatus.String)
}

func TestConflictingBooking_FromModel(t *testing.T) {
	booking := model.Booking{
		Reference:  "BKTEST",
		Status:     model.StatusPending,
		TotalPrice: 450,
	}

	var details dto.ConflictingBooking
	details.FromModel(booking)

	assert.Equal(t, "BKTEST", details.Reference)
	assert.Contains(t, details.NextAction, "pending")

	booking.Status = model.StatusConfirmed
	details.FromModel(booking)

	assert.Contains(t, details.NextAction, "confirmed")
}
