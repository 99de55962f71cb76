package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/prayer-calc/internal/astro"
	"github.com/smokyabdulrahman/prayer-calc/internal/cache"
	"github.com/smokyabdulrahman/prayer-calc/internal/config"
	"github.com/smokyabdulrahman/prayer-calc/internal/prayer"
)

// calcSettings is everything a command needs to compute and print a day.
type calcSettings struct {
	Config    *config.Config
	Location  resolvedLocation
	Method    prayer.Method
	FajrAngle float64
	IshaAngle float64
	School    int
	Shadow    float64
	Layout    string // Go time layout from time_format
}

// dayResult is one computed calendar day.
type dayResult struct {
	Date     time.Time // noon on the day, in the location's zone
	Schedule *prayer.Schedule
	Prayers  []prayer.Prayer // all six, Events order
}

// loadSettings merges config, resolves the location and the angles.
func loadSettings(cmd *cobra.Command) (*calcSettings, error) {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return nil, err
	}

	// Cache init failure is non-fatal; we just skip caching.
	c, err := cache.New(cfg.CacheDir)
	if err != nil {
		c = nil
		log.Warnw("cache disabled", "error", err)
	} else {
		c = c.WithClock(clock)
	}

	loc, err := resolveLocation(cfg, c)
	if err != nil {
		return nil, err
	}

	fajr, isha, err := cfg.Angles()
	if err != nil {
		return nil, err
	}
	method, _ := prayer.MethodByID(cfg.MethodOrDefault(prayer.DefaultMethodID))
	school := cfg.SchoolOrDefault(0)

	return &calcSettings{
		Config:    cfg,
		Location:  loc,
		Method:    method,
		FajrAngle: fajr,
		IshaAngle: isha,
		School:    school,
		Shadow:    prayer.ShadowFactor(school),
		Layout:    prayer.TimeLayout(cfg.TimeFormat),
	}, nil
}

// now returns the current instant in the location's zone.
func (s *calcSettings) now() time.Time {
	return clock.Now().In(s.Location.Zone)
}

// prayerLocation builds the calculation input for the instant t.
func (s *calcSettings) prayerLocation(t time.Time) prayer.Location {
	t = t.In(s.Location.Zone)
	return prayer.Location{
		Latitude:     s.Location.Lat,
		Longitude:    s.Location.Lon,
		Elevation:    s.Location.Elevation,
		Timezone:     s.Location.OffsetHours(t),
		FajrAngle:    s.FajrAngle,
		IshaAngle:    s.IshaAngle,
		ShadowFactor: s.Shadow,
		Date:         astro.FromTime(t),
	}
}

// computeDay computes the schedule for the calendar day containing t.
// The calculation instant is local noon so that the declination is the
// day's midpoint value regardless of the time the command runs.
func (s *calcSettings) computeDay(t time.Time) (*dayResult, error) {
	t = t.In(s.Location.Zone)
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, s.Location.Zone)
	return s.computeAt(noon)
}

// computeAt runs the calculation for the exact instant t.
func (s *calcSettings) computeAt(t time.Time) (*dayResult, error) {
	sched, err := prayer.Compute(s.prayerLocation(t))
	if err != nil {
		return nil, fmt.Errorf("computing prayer times for %s: %w", t.Format("2006-01-02"), err)
	}

	log.Debugw("computed schedule",
		"date", t.Format("2006-01-02"),
		"jd", sched.JulianDay,
		"declination", sched.Declination,
		"eot", sched.EquationOfTime,
		"transit", sched.Transit,
	)
	if clamped := sched.ClampedEvents(); len(clamped) > 0 {
		names := make([]string, len(clamped))
		for i, e := range clamped {
			names[i] = e.String()
		}
		log.Warnw("sun does not reach the required altitude; times pinned to the nearest boundary",
			"date", t.Format("2006-01-02"),
			"events", names,
		)
	}

	return &dayResult{
		Date:     t,
		Schedule: sched,
		Prayers:  sched.Prayers(t),
	}, nil
}

// computeDays computes n consecutive days starting with the day of start.
func (s *calcSettings) computeDays(start time.Time, n int) ([]*dayResult, error) {
	start = start.In(s.Location.Zone)
	days := make([]*dayResult, 0, n)
	for i := 0; i < n; i++ {
		d, err := s.computeDay(start.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// selectedNames returns the prayer names to show: override if non-empty,
// else the config's prayers list, else all six.
func (s *calcSettings) selectedNames(override string) []string {
	if override != "" {
		return prayer.SplitNames(override)
	}
	return prayer.SplitNames(s.Config.Prayers)
}

// dateKey is the calendar-day identity used for highlighting today.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
