package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name  string
		civil CivilTime
		tz    float64
		want  float64
	}{
		{"J2000 epoch", CivilTime{2000, 1, 1, 12, 0, 0}, 0, 2451545.0},
		{"Sputnik launch", CivilTime{1957, 10, 4, 19, 26, 24}, 0, 2436116.31},
		{"leap day midnight", CivilTime{2024, 2, 29, 0, 0, 0}, 0, 2460369.5},
		{"January shift", CivilTime{2024, 1, 1, 0, 0, 0}, 0, 2460310.5},
		{"eastern offset", CivilTime{2000, 1, 1, 15, 0, 0}, 3, 2451545.0},
		{"western offset", CivilTime{2000, 1, 1, 7, 0, 0}, -5, 2451545.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, JulianDay(tt.civil, tt.tz), 1e-6)
		})
	}
}

func TestJulianDay_ConsecutiveDays(t *testing.T) {
	// Crossing a month and a year boundary must still advance by exactly one day.
	dec31 := JulianDay(CivilTime{2023, 12, 31, 0, 0, 0}, 0)
	jan1 := JulianDay(CivilTime{2024, 1, 1, 0, 0, 0}, 0)
	assert.InDelta(t, 1.0, jan1-dec31, 1e-9)

	feb28 := JulianDay(CivilTime{2023, 2, 28, 0, 0, 0}, 0)
	mar1 := JulianDay(CivilTime{2023, 3, 1, 0, 0, 0}, 0)
	assert.InDelta(t, 1.0, mar1-feb28, 1e-9)
}

func TestCivilTime_DayFraction(t *testing.T) {
	assert.InDelta(t, 0.75, CivilTime{Hour: 18}.DayFraction(), 1e-12)
	assert.InDelta(t, 0.5+30.0/1440+30.0/86400, CivilTime{Hour: 12, Minute: 30, Second: 30}.DayFraction(), 1e-12)
	assert.Equal(t, 0.0, CivilTime{}.DayFraction())
}

func TestFromTime(t *testing.T) {
	loc := time.FixedZone("AST", 3*3600)
	got := FromTime(time.Date(2026, 2, 28, 13, 45, 10, 0, loc))

	assert.Equal(t, CivilTime{2026, 2, 28, 13, 45, 10}, got)
}
