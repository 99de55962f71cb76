package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/smokyabdulrahman/prayer-calc/internal/config"
	"github.com/smokyabdulrahman/prayer-calc/internal/display"
	"github.com/smokyabdulrahman/prayer-calc/internal/logging"
	"github.com/smokyabdulrahman/prayer-calc/internal/prayer"
)

// Global flags shared across all subcommands.
var (
	FlagLatitude   float64
	FlagLongitude  float64
	FlagElevation  float64
	FlagTimezone   float64
	FlagMethod     int
	FlagSchool     int
	FlagFajrAngle  float64
	FlagIshaAngle  float64
	FlagJSON       bool
	FlagCacheDir   string
	FlagTimeFormat string
	FlagEnvFile    string
	FlagVerbose    bool
)

// flagKeys maps persistent flag names to the config keys they override.
// Flag values go through config.Set so they get the same validation.
var flagKeys = []struct{ flag, key string }{
	{"latitude", "latitude"},
	{"longitude", "longitude"},
	{"elevation", "elevation"},
	{"timezone", "timezone"},
	{"method", "method"},
	{"school", "school"},
	{"fajr-angle", "fajr_angle"},
	{"isha-angle", "isha_angle"},
	{"cache-dir", "cache_dir"},
	{"time-format", "time_format"},
}

// loadedConfig holds the config (file plus environment) loaded during
// PersistentPreRunE. Available to all subcommand handlers.
var loadedConfig *config.Config

// log is the CLI logger. It discards everything until PersistentPreRunE
// builds the real one from --verbose.
var log = logging.Nop().Sugar()

// NewRootCmd creates the root command for the prayer-calc CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "prayer-calc",
		Short:   "Islamic prayer times, computed locally",
		Long:    "Compute the six daily prayer times (Fajr, Sunrise, Zuhr, Asr, Maghrib, Isha)\nfrom solar position astronomy. No network access is needed once a location is known.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log = logging.New(FlagVerbose, cmd.ErrOrStderr()).Sugar()
			if FlagJSON && display.Enabled() {
				display.SetEnabled(false)
			}

			if err := config.LoadEnvFile(FlagEnvFile); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.ApplyEnv(); err != nil {
				return fmt.Errorf("invalid environment override: %w", err)
			}
			loadedConfig = cfg
			return nil
		},
		// Default action: show today's prayer schedule.
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Register global persistent flags.
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&FlagLatitude, "latitude", 0, "Override latitude in degrees, north positive")
	pf.Float64Var(&FlagLongitude, "longitude", 0, "Override longitude in degrees, east positive")
	pf.Float64Var(&FlagElevation, "elevation", 0, "Elevation above sea level in meters")
	pf.Float64Var(&FlagTimezone, "timezone", 0, "UTC offset in hours, e.g. 3 or -3.5 (default: detected)")
	pf.IntVar(&FlagMethod, "method", prayer.DefaultMethodID, "Calculation method (see `prayer-calc methods`)")
	pf.IntVar(&FlagSchool, "school", 0, "Asr school (0=Shafi, 1=Hanafi)")
	pf.Float64Var(&FlagFajrAngle, "fajr-angle", 0, "Fajr twilight angle in degrees (overrides method)")
	pf.Float64Var(&FlagIshaAngle, "isha-angle", 0, "Isha twilight angle in degrees (overrides method)")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON (where supported)")
	pf.StringVar(&FlagCacheDir, "cache-dir", "", "Cache directory (default: ~/.cache/prayer-calc/)")
	pf.StringVar(&FlagTimeFormat, "time-format", "", "Time format: 12h or 24h (overrides config)")
	pf.StringVar(&FlagEnvFile, "env-file", ".env", "Load PRAYER_CALC_* variables from this file if it exists")
	pf.BoolVarP(&FlagVerbose, "verbose", "v", false, "Log calculation details to stderr")

	// Register subcommands.
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newWeekCmd())
	rootCmd.AddCommand(newMonthCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newTimesCmd())
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCacheCmd())
	rootCmd.AddCommand(newMethodsCmd())

	return rootCmd
}

// PrintVersion prints the version string in the expected format.
func PrintVersion(version string) string {
	return fmt.Sprintf("prayer-calc %s\n", version)
}

// effectiveConfig returns the merged configuration values,
// applying the priority: CLI flags > environment > config file > defaults.
// It uses cobra's Changed() to detect whether a flag was explicitly set.
func effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if loadedConfig != nil {
		cfg = *loadedConfig
	}

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	for _, fk := range flagKeys {
		f := lookupSetFlag(flags, root, fk.flag)
		if f == nil {
			continue
		}
		if err := cfg.Set(fk.key, f.Value.String()); err != nil {
			return nil, fmt.Errorf("--%s: %w", fk.flag, err)
		}
	}

	// Apply defaults for values still unset.
	defaults := config.Defaults()
	if cfg.Method == nil {
		cfg.Method = defaults.Method
	}
	if cfg.School == nil {
		cfg.School = defaults.School
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = defaults.TimeFormat
	}

	log.Debugw("effective config",
		zap.Any("latitude", cfg.Latitude),
		zap.Any("longitude", cfg.Longitude),
		zap.Float64("elevation", cfg.Elevation),
		zap.Any("timezone", cfg.Timezone),
		zap.Int("method", *cfg.Method),
		zap.Int("school", *cfg.School),
	)

	return &cfg, nil
}

// flagWasSet checks if a flag was explicitly set on either the local or persistent flag set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	return lookupSetFlag(local, persistent, name) != nil
}

// lookupSetFlag returns the named flag if it was explicitly set.
func lookupSetFlag(local, persistent *pflag.FlagSet, name string) *pflag.Flag {
	if f := local.Lookup(name); f != nil && f.Changed {
		return f
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return f
	}
	return nil
}
