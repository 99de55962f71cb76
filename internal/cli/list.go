package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/prayer-calc/internal/display"
	"github.com/smokyabdulrahman/prayer-calc/internal/prayer"
)

// runList is the handler for the list subcommand.
func runList(cmd *cobra.Command, args []string, defaultDays int) error {
	days := defaultDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid number of days: %q (must be a positive integer)", args[0])
		}
		days = n
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	names := s.selectedNames("")
	now := s.now()

	daysList, err := s.computeDays(now, days)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if FlagJSON {
		return printListJSON(out, s, daysList, names)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", display.Boldf("Prayer Times (%d days)", days))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", s.Location.Label)
	fmt.Fprintf(out, "  %s\n", display.Gray(methodLabel(s)))
	fmt.Fprintln(out)

	headers := append([]string{"Date"}, names...)
	tbl := display.NewTable(headers)

	todayStr := dateKey(now)
	clamped := false
	for i, dd := range daysList {
		parsed, err := prayer.Select(dd.Prayers, names)
		if err != nil {
			return err
		}

		row := []string{dd.Date.Format("Mon 02 Jan")}
		for _, p := range parsed {
			row = append(row, prayer.FormatTime(p, s.Layout))
			clamped = clamped || p.Clamped
		}
		tbl.AddRow(row)

		// Highlight today's row.
		if dateKey(dd.Date) == todayStr {
			tbl.SetHighlightRow(i)
		}
	}

	fmt.Fprint(out, tbl.Render())
	if clamped {
		fmt.Fprintf(out, "\n  %s\n", display.Yellow(prayer.ClampedMarker+" nearest boundary; the sun does not reach the required altitude"))
	}
	fmt.Fprintln(out)
	return nil
}

// listJSONOutput is the JSON structure for the list command.
type listJSONOutput struct {
	Location todayJSONLocation `json:"location"`
	Method   todayJSONMethod   `json:"method"`
	Days     []listJSONDay     `json:"days"`
}

type listJSONDay struct {
	Date    string            `json:"date"`
	Timings map[string]string `json:"timings"`
	Clamped []string          `json:"clamped,omitempty"`
}

func printListJSON(out io.Writer, s *calcSettings, daysList []*dayResult, names []string) error {
	res := listJSONOutput{
		Location: jsonLocation(s, firstDate(daysList)),
		Method:   jsonMethod(s),
	}

	for _, dd := range daysList {
		parsed, err := prayer.Select(dd.Prayers, names)
		if err != nil {
			return err
		}

		timings, clamped := jsonTimings(parsed, s.Layout)
		res.Days = append(res.Days, listJSONDay{
			Date:    dd.Date.Format("2006-01-02"),
			Timings: timings,
			Clamped: clamped,
		})
	}

	return writeJSON(out, res)
}

func firstDate(days []*dayResult) time.Time {
	if len(days) == 0 {
		return clock.Now()
	}
	return days[0].Date
}
