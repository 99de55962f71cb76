package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/prayer-calc/internal/prayer"
)

var (
	flagFormat  string
	flagPrayers string
)

func newNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		Long:  "Display the next upcoming prayer time with a countdown.\nOutput has no trailing newline so it can be embedded in status lines.",
		RunE:  runNext,
	}

	cmd.Flags().StringVar(&flagFormat, "format", prayer.FormatFull, "Display format: time-remaining, next-prayer-time, name-and-time, name-and-remaining, short-name-and-time, short-name-and-remaining, full, or a custom Go template")
	cmd.Flags().StringVar(&flagPrayers, "prayers", "", "Comma-separated list of prayers to track (overrides config)")

	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// Priority: --prayers flag > config > defaults.
	override := ""
	if flagWasSet(cmd.Flags(), cmd.Root().PersistentFlags(), "prayers") {
		override = flagPrayers
	}
	names := s.selectedNames(override)

	now := s.now()
	today, err := s.computeDay(now)
	if err != nil {
		return err
	}

	prayers, err := prayer.Select(today.Prayers, names)
	if err != nil {
		return err
	}

	next := prayer.NextPrayer(prayers, now)

	// If all today's prayers have passed, roll over to tomorrow's first one.
	if next == nil {
		tomorrow, err := s.computeDay(now.AddDate(0, 0, 1))
		if err != nil {
			return err
		}

		tomorrowPrayers, err := prayer.Select(tomorrow.Prayers, names)
		if err != nil {
			return err
		}

		if len(tomorrowPrayers) > 0 {
			next = &tomorrowPrayers[0]
		}
	}

	if next == nil {
		return fmt.Errorf("could not determine next prayer")
	}

	fmt.Fprint(cmd.OutOrStdout(), prayer.FormatOutput(*next, now, flagFormat, s.Layout))
	return nil
}
