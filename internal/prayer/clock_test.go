package prayer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"midnight", 0, "12:00 AM"},
		{"noon", 12, "12:00 PM"},
		{"afternoon half hour", 13.5, "01:30 PM"},
		{"quarter past five", 5.25, "05:15 AM"},
		{"partial minute rounds up", 5.01, "05:01 AM"},
		{"minute carries into hour", 5.999, "06:00 AM"},
		{"carry past noon", 11.9999, "12:00 PM"},
		{"carry past midnight wraps", 23.999, "12:00 AM"},
		{"negative wraps to previous evening", -0.5, "11:30 PM"},
		{"beyond 24 wraps to early morning", 25.25, "01:15 AM"},
		{"late evening", 19.1, "07:06 PM"},
		{"NaN", math.NaN(), "--:--"},
		{"infinity", math.Inf(1), "--:--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(tt.in))
		})
	}
}

func TestClockMinutes(t *testing.T) {
	assert.Equal(t, 0, ClockMinutes(0))
	assert.Equal(t, 315, ClockMinutes(5.25))
	assert.Equal(t, 316, ClockMinutes(5.251))
	assert.Equal(t, 1410, ClockMinutes(-0.5))
	assert.Equal(t, 75, ClockMinutes(25.25))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in         string
		wantHour   int
		wantMinute int
	}{
		{"12:00 AM", 0, 0},
		{"12:30 PM", 12, 30},
		{"01:05 PM", 13, 5},
		{"11:59 pm", 23, 59},
		{" 05:17 AM ", 5, 17},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, err := ParseClock(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, h)
			assert.Equal(t, tt.wantMinute, m)
		})
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "bad", "13:00 PM", "00:10 AM", "10:61 AM", "10:00 XM", "10:00"} {
		_, _, err := ParseClock(in)
		assert.Error(t, err, "ParseClock(%q)", in)
	}
}

func TestFormatClock_RoundTrip(t *testing.T) {
	for minute := 0; minute < 24*60; minute++ {
		s := FormatClock(float64(minute) / 60)
		h, m, err := ParseClock(s)
		require.NoError(t, err, s)
		if h*60+m != minute {
			t.Fatalf("minute %d formatted as %q parsed back as %02d:%02d", minute, s, h, m)
		}
	}
}
