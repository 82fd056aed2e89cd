package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"palmera/internal/domains/booking/model"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)

	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		inA  string
		outA string
		inB  string
		outB string
		want bool
	}{
		{
			name: "partial overlap at the front",
			inA:  "2026-09-10", outA: "2026-09-14",
			inB: "2026-09-12", outB: "2026-09-16",
			want: true,
		},
		{
			name: "one range contains the other",
			inA:  "2026-09-10", outA: "2026-09-20",
			inB: "2026-09-12", outB: "2026-09-14",
			want: true,
		},
		{
			name: "identical ranges",
			inA:  "2026-09-10", outA: "2026-09-14",
			inB: "2026-09-10", outB: "2026-09-14",
			want: true,
		},
		{
			name: "back to back stays do not overlap",
			inA:  "2026-09-10", outA: "2026-09-14",
			inB: "2026-09-14", outB: "2026-09-18",
			want: false,
		},
		{
			name: "disjoint ranges",
			inA:  "2026-09-10", outA: "2026-09-12",
			inB: "2026-09-20", outB: "2026-09-22",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Overlaps(date(tt.inA), date(tt.outA), date(tt.inB), date(tt.outB))
			assert.Equal(t, tt.want, got)

			// Overlap is symmetric.
			assert.Equal(t, tt.want, model.Overlaps(date(tt.inB), date(tt.outB), date(tt.inA), date(tt.outA)))
		})
	}
}

func TestNewReference(t *testing.T) {
	ref := model.NewReference(time.Now())

	assert.True(t, strings.HasPrefix(ref, "BK"))
	assert.Equal(t, ref, strings.ToUpper(ref))
	assert.Greater(t, len(ref), 2)
}

func TestActiveStatuses(t *testing.T) {
	statuses := model.ActiveStatuses()

	assert.Contains(t, statuses, model.StatusPending)
	assert.Contains(t, statuses, model.StatusConfirmed)
	assert.NotContains(t, statuses, model.StatusCancelled)
	assert.NotContains(t, statuses, model.StatusExpired)
}
