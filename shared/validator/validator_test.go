package validator_test

import (
	"palmera/shared/validator"
	"strings"
	"testing"
)

type createBookingBody struct {
	GuestName  string `json:"guest_name"  validate:"required,notblank,max=100"`
	GuestEmail string `json:"guest_email" validate:"required,email"`
	GuestPhone string `json:"guest_phone" validate:"omitempty,phone"`
	Adults     int    `json:"adults"      validate:"required,min=1,max=10"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid body",
			body:    `{"guest_name":"Test Guest","guest_email":"guest@example.com","guest_phone":"+62 811 234 567","adults":2}`,
			wantErr: false,
		},
		{
			name:    "malformed json",
			body:    `{"guest_name":`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"guest_email":"guest@example.com","adults":2}`,
			wantErr: true,
		},
		{
			name:    "blank name rejected by notblank",
			body:    `{"guest_name":"   ","guest_email":"guest@example.com","adults":2}`,
			wantErr: true,
		},
		{
			name:    "invalid email",
			body:    `{"guest_name":"Test Guest","guest_email":"not-an-email","adults":2}`,
			wantErr: true,
		},
		{
			name:    "invalid phone",
			body:    `{"guest_name":"Test Guest","guest_email":"guest@example.com","guest_phone":"abc","adults":2}`,
			wantErr: true,
		},
		{
			name:    "adults out of range",
			body:    `{"guest_name":"Test Guest","guest_email":"guest@example.com","adults":11}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data createBookingBody

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.wantErr && err == nil {
				t.Error("expected an error")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2026-09-10", "datetime=2006-01-02"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateVar("10-09-2026", "datetime=2006-01-02"); err == nil {
		t.Error("expected an error for a malformed date")
	}

	if err := validator.ValidateVar("09:00", "datetime=15:04"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPhoneValidation(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "international format", phone: "+628112345678", wantErr: false},
		{name: "spaces and dashes", phone: "0811-234-5678", wantErr: false},
		{name: "too short", phone: "12345", wantErr: true},
		{name: "letters rejected", phone: "phone-number", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.phone, "phone")

			if tt.wantErr && err == nil {
				t.Error("expected an error")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
