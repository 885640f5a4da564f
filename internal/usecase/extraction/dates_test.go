package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDueDate(t *testing.T) {
	// Wednesday
	today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want *time.Time
	}{
		{
			name: "iso date passes through",
			raw:  "2026-03-20",
			want: timePtr(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)),
		},
		{
			name: "today",
			raw:  "today",
			want: &today,
		},
		{
			name: "tomorrow",
			raw:  "Tomorrow",
			want: timePtr(today.AddDate(0, 0, 1)),
		},
		{
			name: "next week",
			raw:  "sometime next week",
			want: timePtr(today.AddDate(0, 0, 7)),
		},
		{
			name: "future weekday",
			raw:  "Friday",
			want: timePtr(time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)),
		},
		{
			name: "same weekday means next week",
			raw:  "wednesday",
			want: timePtr(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)),
		},
		{
			name: "past weekday rolls forward",
			raw:  "monday",
			want: timePtr(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)),
		},
		{
			name: "empty string",
			raw:  "",
			want: nil,
		},
		{
			name: "unparseable phrase",
			raw:  "when the stars align",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeDueDate(tt.raw, today)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %s, got %s", tt.want, got)
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
