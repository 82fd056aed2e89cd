package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"palmera/internal/domains/conference/model"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		startA string
		endA   string
		startB string
		endB   string
		want   bool
	}{
		{
			name:   "partial overlap",
			startA: "09:00", endA: "12:00",
			startB: "11:00", endB: "14:00",
			want: true,
		},
		{
			name:   "contained window",
			startA: "09:00", endA: "17:00",
			startB: "10:00", endB: "11:00",
			want: true,
		},
		{
			name:   "back to back windows do not overlap",
			startA: "09:00", endA: "12:00",
			startB: "12:00", endB: "15:00",
			want: false,
		},
		{
			name:   "disjoint windows",
			startA: "09:00", endA: "10:00",
			startB: "14:00", endB: "16:00",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Overlaps(tt.startA, tt.endA, tt.startB, tt.endB)
			assert.Equal(t, tt.want, got)

			assert.Equal(t, tt.want, model.Overlaps(tt.startB, tt.endB, tt.startA, tt.endA))
		})
	}
}

func TestNewReference(t *testing.T) {
	ref := model.NewReference(time.Now())

	assert.True(t, strings.HasPrefix(ref, "CF"))
	assert.Equal(t, ref, strings.ToUpper(ref))
}
