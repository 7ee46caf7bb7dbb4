package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{in: "14:30", hour: 14, minute: 30},
		{in: "00:00", hour: 0, minute: 0},
		{in: "23:59", hour: 23, minute: 59},
		{in: "9:05", hour: 9, minute: 5},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "-1:30", wantErr: true},
		{in: "1430", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			hour, minute, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
		})
	}
}

func TestDayStart(t *testing.T) {
	morning := time.Date(2024, 1, 5, 9, 15, 42, 123, time.Local)
	evening := time.Date(2024, 1, 5, 22, 1, 0, 0, time.Local)

	assert.True(t, DayStart(morning).Equal(DayStart(evening)))

	start := DayStart(morning)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, 0, start.Second())
	assert.Equal(t, 5, start.Day())
}

func TestAtClock(t *testing.T) {
	// any time of day works as the date reference
	day := time.Date(2024, 1, 5, 18, 45, 30, 999, time.Local)

	ts := AtClock(day, 14, 30)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, time.January, ts.Month())
	assert.Equal(t, 5, ts.Day())
	assert.Equal(t, 14, ts.Hour())
	assert.Equal(t, 30, ts.Minute())
	assert.Equal(t, 0, ts.Second())
	assert.Equal(t, 0, ts.Nanosecond())
}
