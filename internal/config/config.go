// Package config provides persistent configuration for the prayer-calc CLI.
//
// Configuration is stored as JSON at ~/.config/prayer-calc/config.json
// (XDG-compliant). The merge priority is: CLI flags > environment
// (PRAYER_CALC_*) > config file > defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/smokyabdulrahman/prayer-calc/internal/prayer"
)

const (
	configDirName  = "prayer-calc"
	configFileName = "config.json"
)

// ValidKeys lists all config keys that can be set via `config set`.
var ValidKeys = []string{
	"latitude", "longitude", "elevation",
	"timezone",
	"method", "school",
	"fajr_angle", "isha_angle",
	"time_format",
	"prayers",
	"cache_dir",
}

// Config holds all user-configurable settings.
// Nil pointers and empty strings mean "not set" (use defaults or auto-detect).
type Config struct {
	Latitude   *float64 `json:"latitude,omitempty"` // pointer: 0 is a real coordinate
	Longitude  *float64 `json:"longitude,omitempty"`
	Elevation  float64  `json:"elevation,omitempty"` // meters
	Timezone   *float64 `json:"timezone,omitempty"`  // UTC offset in hours
	Method     *int     `json:"method,omitempty"`    // pointer so we can distinguish "not set" from 0
	School     *int     `json:"school,omitempty"`
	FajrAngle  *float64 `json:"fajr_angle,omitempty"` // overrides the method's angle
	IshaAngle  *float64 `json:"isha_angle,omitempty"`
	TimeFormat string   `json:"time_format,omitempty"` // "12h" or "24h"
	Prayers    string   `json:"prayers,omitempty"`     // comma-separated list
	CacheDir   string   `json:"cache_dir,omitempty"`
}

// Defaults returns a Config with all default values applied.
func Defaults() Config {
	method := prayer.DefaultMethodID
	school := 0
	return Config{
		Method:     &method,
		School:     &school,
		TimeFormat: "24h",
	}
}

// Dir returns the config directory path.
// It respects $XDG_CONFIG_HOME if set, otherwise uses ~/.config/.
func Dir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file from disk.
// If the file does not exist, it returns an empty Config (not an error).
// If the file exists but is invalid JSON, it returns an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	return LoadFrom(path)
}

// LoadFrom reads the config from a specific file path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	return c.SaveTo(path)
}

// SaveTo writes the config to a specific file path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reset deletes the config file.
func Reset() error {
	path, err := Path()
	if err != nil {
		return err
	}

	return ResetAt(path)
}

// ResetAt deletes the config file at a specific path.
func ResetAt(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete config file: %w", err)
	}
	return nil
}

// Set sets a config key to the given value.
// It validates the key name and parses the value into the correct type.
func (c *Config) Set(key, value string) error {
	switch key {
	case "latitude":
		v, err := parseRange(key, value, -90, 90)
		if err != nil {
			return err
		}
		c.Latitude = &v
	case "longitude":
		v, err := parseRange(key, value, -180, 180)
		if err != nil {
			return err
		}
		c.Longitude = &v
	case "elevation":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid elevation %q: must be a number", value)
		}
		if v < 0 {
			return fmt.Errorf("invalid elevation %q: must not be negative", value)
		}
		c.Elevation = v
	case "timezone":
		v, err := parseRange(key, value, -12, 14)
		if err != nil {
			return err
		}
		c.Timezone = &v
	case "method":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid method %q: must be an integer", value)
		}
		if _, ok := prayer.MethodByID(v); !ok {
			return fmt.Errorf("invalid method %q: run `prayer-calc methods` for the list", value)
		}
		c.Method = &v
	case "school":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid school %q: must be an integer", value)
		}
		if v != 0 && v != 1 {
			return fmt.Errorf("invalid school %q: must be 0 (Shafi) or 1 (Hanafi)", value)
		}
		c.School = &v
	case "fajr_angle":
		v, err := parseRange(key, value, 0, 30)
		if err != nil {
			return err
		}
		c.FajrAngle = &v
	case "isha_angle":
		v, err := parseRange(key, value, 0, 30)
		if err != nil {
			return err
		}
		c.IshaAngle = &v
	case "time_format":
		if value != "12h" && value != "24h" {
			return fmt.Errorf("invalid time_format %q: must be \"12h\" or \"24h\"", value)
		}
		c.TimeFormat = value
	case "prayers":
		for _, n := range strings.Split(value, ",") {
			n = strings.TrimSpace(n)
			if _, ok := prayer.ParseEvent(n); !ok {
				return fmt.Errorf("invalid prayer name %q in prayers list", n)
			}
		}
		c.Prayers = value
	case "cache_dir":
		c.CacheDir = value
	default:
		return fmt.Errorf("unknown config key %q; valid keys: %s", key, strings.Join(ValidKeys, ", "))
	}

	return nil
}

func parseRange(key, value string, lo, hi float64) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", key, value)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("invalid %s %q: must be between %g and %g", key, value, lo, hi)
	}
	return v, nil
}

// Get returns the string value of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "latitude":
		return formatFloatPtr(c.Latitude), nil
	case "longitude":
		return formatFloatPtr(c.Longitude), nil
	case "elevation":
		if c.Elevation == 0 {
			return "", nil
		}
		return strconv.FormatFloat(c.Elevation, 'f', -1, 64), nil
	case "timezone":
		return formatFloatPtr(c.Timezone), nil
	case "method":
		if c.Method == nil {
			return "", nil
		}
		return strconv.Itoa(*c.Method), nil
	case "school":
		if c.School == nil {
			return "", nil
		}
		return strconv.Itoa(*c.School), nil
	case "fajr_angle":
		return formatFloatPtr(c.FajrAngle), nil
	case "isha_angle":
		return formatFloatPtr(c.IshaAngle), nil
	case "time_format":
		return c.TimeFormat, nil
	case "prayers":
		return c.Prayers, nil
	case "cache_dir":
		return c.CacheDir, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// HasCoordinates reports whether both latitude and longitude are set.
func (c *Config) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// MethodOrDefault returns the method value, falling back to the given default.
func (c *Config) MethodOrDefault(def int) int {
	if c.Method != nil {
		return *c.Method
	}
	return def
}

// SchoolOrDefault returns the school value, falling back to the given default.
func (c *Config) SchoolOrDefault(def int) int {
	if c.School != nil {
		return *c.School
	}
	return def
}

// Angles resolves the Fajr and Isha twilight angles: the method's preset,
// with explicit fajr_angle / isha_angle taking precedence.
func (c *Config) Angles() (fajr, isha float64, err error) {
	id := c.MethodOrDefault(prayer.DefaultMethodID)
	m, ok := prayer.MethodByID(id)
	if !ok {
		return 0, 0, fmt.Errorf("unknown calculation method %d", id)
	}

	fajr, isha = m.FajrAngle, m.IshaAngle
	if c.FajrAngle != nil {
		fajr = *c.FajrAngle
	}
	if c.IshaAngle != nil {
		isha = *c.IshaAngle
	}
	return fajr, isha, nil
}
