package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces environment overrides: latitude is read from
// PRAYER_CALC_LATITUDE, time_format from PRAYER_CALC_TIME_FORMAT.
const EnvPrefix = "PRAYER_CALC_"

// EnvKey returns the environment variable name for a config key.
func EnvKey(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

// LoadEnvFile loads variables from the given .env files into the process
// environment. Missing files are skipped. Variables already present in the
// environment are not overwritten.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overlays PRAYER_CALC_* environment variables onto c, using the
// same validation as Set. Empty variables are ignored.
func (c *Config) ApplyEnv() error {
	for _, key := range ValidKeys {
		name := EnvKey(key)
		v := strings.TrimSpace(os.Getenv(name))
		if v == "" {
			continue
		}
		if err := c.Set(key, v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
