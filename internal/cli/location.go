package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/smokyabdulrahman/prayer-calc/internal/cache"
	"github.com/smokyabdulrahman/prayer-calc/internal/config"
	"github.com/smokyabdulrahman/prayer-calc/internal/geo"
)

// locationSource records where the coordinates came from.
type locationSource string

const (
	sourceConfig locationSource = "config"
	sourceCache  locationSource = "cache"
	sourceIP     locationSource = "ip"
)

// resolvedLocation holds the result of location resolution.
type resolvedLocation struct {
	Source    locationSource
	Lat, Lon  float64
	Elevation float64
	Label     string
	// Zone anchors calendar days and "now". The UTC offset fed to the
	// calculation is read from it per day, so named zones follow DST.
	Zone *time.Location
}

// OffsetHours returns the UTC offset in hours in effect at t.
func (r resolvedLocation) OffsetHours(t time.Time) float64 {
	_, off := t.In(r.Zone).Zone()
	return float64(off) / 3600
}

// resolveLocation determines the effective location based on user flags, config, or auto-detection.
// Priority: CLI flags/env/config > cached geolocation > IP auto-detect.
// The zone follows: explicit timezone > detected zone > system local zone.
func resolveLocation(cfg *config.Config, c *cache.Cache) (resolvedLocation, error) {
	var (
		loc      resolvedLocation
		detected *geo.Location
	)

	switch {
	case cfg.HasCoordinates():
		loc = resolvedLocation{
			Source: sourceConfig,
			Lat:    *cfg.Latitude,
			Lon:    *cfg.Longitude,
			Label:  fmt.Sprintf("%.4f, %.4f", *cfg.Latitude, *cfg.Longitude),
		}
	case cfg.Latitude != nil || cfg.Longitude != nil:
		return resolvedLocation{}, fmt.Errorf("both latitude and longitude are required")
	default:
		// Try cached geolocation first.
		if c != nil {
			detected = c.LoadGeo()
			if detected != nil {
				loc.Source = sourceCache
			}
		}

		// Fall back to IP-based geolocation.
		if detected == nil {
			d, err := geo.DetectLocation()
			if err != nil {
				return resolvedLocation{}, fmt.Errorf("no location specified and auto-detection failed: %w", err)
			}
			detected = d
			loc.Source = sourceIP

			if c != nil {
				if err := c.SaveGeo(detected); err != nil {
					log.Warnw("could not cache geolocation", "error", err)
				}
			}
		}

		loc.Lat, loc.Lon = detected.Latitude, detected.Longitude
		loc.Label = detected.Label()
	}

	loc.Elevation = cfg.Elevation
	loc.Zone = resolveZone(cfg, detected)

	log.Debugw("resolved location",
		"source", loc.Source,
		"lat", loc.Lat,
		"lon", loc.Lon,
		"zone", loc.Zone.String(),
	)

	return loc, nil
}

// resolveZone picks the zone for a location.
func resolveZone(cfg *config.Config, detected *geo.Location) *time.Location {
	if cfg.Timezone != nil {
		return fixedZone(*cfg.Timezone)
	}
	if detected != nil {
		if detected.Timezone != "" {
			if z, err := time.LoadLocation(detected.Timezone); err == nil {
				return z
			}
		}
		return fixedZone(detected.OffsetHours())
	}
	return time.Local
}

// fixedZone returns a zone with a constant UTC offset of hours.
func fixedZone(hours float64) *time.Location {
	secs := int(math.Round(hours * 3600))
	return time.FixedZone(offsetLabel(secs), secs)
}

// offsetLabel renders an offset in seconds as "UTC+03:00".
func offsetLabel(secs int) string {
	sign := '+'
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, secs/3600, secs%3600/60)
}
