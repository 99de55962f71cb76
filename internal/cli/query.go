package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/prayer-calc/internal/display"
	"github.com/smokyabdulrahman/prayer-calc/internal/prayer"
)

var flagQueryDays string

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <prayer>",
		Short: "Query a specific prayer time",
		Long:  "Query a specific prayer time for today, or across multiple days with --days.\n\nValid prayer names: Fajr, Sunrise, Zuhr (or Dhuhr), Asr, Maghrib, Isha",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuery,
	}

	cmd.Flags().StringVar(&flagQueryDays, "days", "", "Number of days to show (or 'week'/'month')")

	return cmd
}

// parseDays accepts a positive integer, "week" or "month".
func parseDays(v string) (int, error) {
	switch v {
	case "":
		return 1, nil
	case "week":
		return 7, nil
	case "month":
		return 30, nil
	}

	var days int
	n, err := fmt.Sscanf(v, "%d", &days)
	if err != nil || n != 1 || days < 1 {
		return 0, fmt.Errorf("invalid --days value %q: must be a positive integer, 'week', or 'month'", v)
	}
	return days, nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	event, ok := prayer.ParseEvent(args[0])
	if !ok {
		names := make([]string, len(prayer.Events))
		for i, e := range prayer.Events {
			names[i] = e.String()
		}
		return fmt.Errorf("unknown prayer %q; valid names: %s", args[0], strings.Join(names, ", "))
	}

	days, err := parseDays(flagQueryDays)
	if err != nil {
		return err
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	now := s.now()
	daysList, err := s.computeDays(now, days)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if days == 1 {
		return printQuerySingleDay(out, s, event, daysList[0])
	}
	return printQueryMultiDay(out, s, event, daysList, dateKey(now))
}

func printQuerySingleDay(out io.Writer, s *calcSettings, event prayer.Event, day *dayResult) error {
	p := day.Prayers[event]

	if FlagJSON {
		return writeJSON(out, queryJSONSingle{
			Prayer:  strings.ToLower(p.Name),
			Time:    p.Time.Format(s.Layout),
			Date:    day.Date.Format("2006-01-02"),
			Clamped: p.Clamped,
		})
	}

	fmt.Fprintf(out, "%s %s\n", p.Name, prayer.FormatTime(p, s.Layout))
	return nil
}

func printQueryMultiDay(out io.Writer, s *calcSettings, event prayer.Event, daysList []*dayResult, todayStr string) error {
	if FlagJSON {
		return printQueryJSON(out, s, event, daysList)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", display.Boldf("%s Times (%d days)", event, len(daysList)))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", s.Location.Label)
	fmt.Fprintln(out)

	tbl := display.NewTable([]string{"Date", event.String()})

	for i, dd := range daysList {
		tbl.AddRow([]string{dd.Date.Format("Mon 02 Jan"), prayer.FormatTime(dd.Prayers[event], s.Layout)})

		if dateKey(dd.Date) == todayStr {
			tbl.SetHighlightRow(i)
		}
	}

	fmt.Fprint(out, tbl.Render())
	fmt.Fprintln(out)
	return nil
}

type queryJSONSingle struct {
	Prayer  string `json:"prayer"`
	Time    string `json:"time"`
	Date    string `json:"date"`
	Clamped bool   `json:"clamped,omitempty"`
}

type queryJSONMulti struct {
	Location todayJSONLocation `json:"location"`
	Prayer   string            `json:"prayer"`
	Days     []queryJSONDay    `json:"days"`
}

type queryJSONDay struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Clamped bool   `json:"clamped,omitempty"`
}

func printQueryJSON(out io.Writer, s *calcSettings, event prayer.Event, daysList []*dayResult) error {
	res := queryJSONMulti{
		Location: jsonLocation(s, firstDate(daysList)),
		Prayer:   strings.ToLower(event.String()),
	}

	for _, dd := range daysList {
		p := dd.Prayers[event]
		res.Days = append(res.Days, queryJSONDay{
			Date:    dd.Date.Format("2006-01-02"),
			Time:    p.Time.Format(s.Layout),
			Clamped: p.Clamped,
		})
	}

	return writeJSON(out, res)
}
