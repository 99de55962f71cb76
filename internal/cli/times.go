package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/prayer-calc/internal/prayer"
)

var flagTimesDate string

// dateLayouts are accepted by --date, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func newTimesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "times",
		Short: "Print the six raw prayer times",
		Long: `Print Fajr, Sunrise, Zuhr, Asr, Maghrib and Isha as "HH:MM AM" strings,
one per line, in that fixed order.

The calculation uses the current date and time unless --date is given.
A date without a time of day means local noon.`,
		Args: cobra.NoArgs,
		RunE: runTimes,
	}

	cmd.Flags().StringVar(&flagTimesDate, "date", "", "Date (YYYY-MM-DD) or date-time (YYYY-MM-DD HH:MM[:SS], RFC 3339) to compute for")

	return cmd
}

// parseDate interprets v in zone. An empty value means now; a bare date
// means noon on that date.
func parseDate(v string, zone *time.Location, now time.Time) (time.Time, error) {
	if v == "" {
		return now.In(zone), nil
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, v, zone)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			t = t.Add(12 * time.Hour)
		}
		return t.In(zone), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or YYYY-MM-DD HH:MM", v)
}

func runTimes(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	at, err := parseDate(flagTimesDate, s.Location.Zone, s.now())
	if err != nil {
		return err
	}

	day, err := s.computeAt(at)
	if err != nil {
		return err
	}

	return printTimes(cmd.OutOrStdout(), day)
}

type timesJSON struct {
	Date    string   `json:"date"`
	Times   []string `json:"times"`
	Clamped []string `json:"clamped,omitempty"`
}

func printTimes(out io.Writer, day *dayResult) error {
	times := day.Schedule.Formatted()

	if FlagJSON {
		res := timesJSON{
			Date:  day.Date.Format(time.RFC3339),
			Times: times,
		}
		for _, e := range day.Schedule.ClampedEvents() {
			res.Clamped = append(res.Clamped, strings.ToLower(e.String()))
		}
		return writeJSON(out, res)
	}

	for _, e := range prayer.Events {
		fmt.Fprintln(out, times[e])
	}
	return nil
}
