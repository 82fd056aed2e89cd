package base64_test

import (
	"palmera/shared/base64"
	"testing"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid image png",
			input:    "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg==",
			expected: "image/png",
		},
		{
			name:     "valid image jpeg",
			input:    "data:image/jpeg;base64,/9j/4AAQSkZJRg==",
			expected: "image/jpeg",
		},
		{
			name:     "valid text plain",
			input:    "data:text/plain;base64,SGVsbG8gV29ybGQ=",
			expected: "text/plain",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no base64 marker",
			input:    "data:image/png,iVBORw0KGgo=",
			expected: "",
		},
		{
			name:     "only data prefix",
			input:    "data:",
			expected: "",
		},
		{
			name:     "empty content type",
			input:    "data:;base64,",
			expected: "",
		},
		{
			name:     "content type with charset",
			input:    "data:image/svg+xml;charset=utf-8;base64,PHN2Zz48L3N2Zz4=",
			expected: "image/svg+xml;charset=utf-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := base64.GetContentType(tt.input)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	data, err := base64.Decode("data:text/plain;base64,SGVsbG8gV29ybGQ=")
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	if string(data) != "Hello World" {
		t.Errorf("expected %q, got %q", "Hello World", string(data))
	}

	data, err = base64.Decode("SGVsbG8=")
	if err != nil {
		t.Fatalf("Decode() without prefix failed: %v", err)
	}

	if string(data) != "Hello" {
		t.Errorf("expected %q, got %q", "Hello", string(data))
	}

	if _, err = base64.Decode("data:text/plain;base64,!!!"); err == nil {
		t.Error("expected error for invalid payload")
	}
}
