package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"palmera/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
		},
		{
			name:    "ResourceRestrictedError",
			failure: failure.ResourceRestrictedError,
			code:    http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}

			if tt.failure.Message == "" {
				t.Error("expected a message")
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("validation failed")), code: http.StatusBadRequest},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad input"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("missing token"), code: http.StatusUnauthorized},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
		{name: "Upstream", err: failure.Upstream("payment processor unavailable"), code: http.StatusBadGateway},
		{name: "NotFound", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("already exists"), code: http.StatusConflict},
		{name: "Forbidden", err: failure.Forbidden("not yours"), code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestBadRequestNil(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode_UnknownError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected fallback code 500, got %d", got)
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", failure.NotFound("booking not found"))

	if got := failure.GetCode(wrapped); got != http.StatusNotFound {
		t.Errorf("expected wrapped failure code to surface, got %d", got)
	}
}

func TestGetDetails(t *testing.T) {
	details := map[string]string{"reference": "BKTEST"}
	err := failure.ConflictWithDetails("an overlapping booking for these dates already exists", details)

	got, ok := failure.GetDetails(err).(map[string]string)
	if !ok {
		t.Fatal("expected details to round-trip")
	}

	if got["reference"] != "BKTEST" {
		t.Errorf("unexpected details: %v", got)
	}

	if failure.GetDetails(errors.New("plain")) != nil {
		t.Error("plain errors carry no details")
	}
}
