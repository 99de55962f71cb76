package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/prayer-calc/internal/display"
	"github.com/smokyabdulrahman/prayer-calc/internal/prayer"
)

func runToday(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	now := s.now()
	day, err := s.computeDay(now)
	if err != nil {
		return err
	}

	prayers, err := prayer.Select(day.Prayers, s.selectedNames(""))
	if err != nil {
		return err
	}

	// Find current and next prayers.
	current := prayer.CurrentPrayer(prayers, now)
	next := prayer.NextPrayer(prayers, now)

	out := cmd.OutOrStdout()
	if FlagJSON {
		return printTodayJSON(out, s, prayers, current, next, now)
	}

	printTodayRich(out, s, prayers, current, next, now)
	return nil
}

// methodLabel describes the angles in use, naming the method when the
// angles are its presets.
func methodLabel(s *calcSettings) string {
	school := "Shafi"
	if s.School == 1 {
		school = "Hanafi"
	}
	if s.FajrAngle == s.Method.FajrAngle && s.IshaAngle == s.Method.IshaAngle {
		return fmt.Sprintf("%s, %s", s.Method.Name, school)
	}
	return fmt.Sprintf("Fajr %g°, Isha %g°, %s", s.FajrAngle, s.IshaAngle, school)
}

// printTodayRich renders the colored terminal output for today's prayer schedule.
func printTodayRich(out io.Writer, s *calcSettings, prayers []prayer.Prayer, current, next *prayer.Prayer, now time.Time) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", display.Bold("Prayer Times"))
	fmt.Fprintln(out)

	// Location and date info.
	fmt.Fprintf(out, "  %s\n", s.Location.Label)
	fmt.Fprintf(out, "  %s\n", display.Gray(s.Location.Zone.String()))
	fmt.Fprintf(out, "  %s\n", formatGregorianDate(now))
	fmt.Fprintf(out, "  %s\n", display.Gray(methodLabel(s)))
	fmt.Fprintln(out)

	// Find the max prayer name length for alignment.
	maxNameLen := 0
	for _, p := range prayers {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	clamped := false
	for _, p := range prayers {
		timeStr := prayer.FormatTime(p, s.Layout)
		line := fmt.Sprintf("  %s  %s", padRight(p.Name, maxNameLen), timeStr)
		clamped = clamped || p.Clamped

		switch {
		case current != nil && p.Name == current.Name:
			// Current prayer: dimmed.
			fmt.Fprintln(out, display.Dim(line))
		case next != nil && p.Name == next.Name:
			// Next prayer: accent color + countdown.
			remaining := prayer.FormatRemaining(prayer.TimeRemaining(p, now))
			suffix := fmt.Sprintf("  <- next in %s", remaining)
			fmt.Fprintln(out, display.Accent(line)+display.Accent(suffix))
		default:
			fmt.Fprintln(out, line)
		}
	}

	if clamped {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %s\n", display.Yellow(prayer.ClampedMarker+" the sun does not reach this altitude today; time is the nearest boundary"))
	}

	fmt.Fprintln(out)
}

// formatGregorianDate returns a formatted Gregorian date string.
func formatGregorianDate(t time.Time) string {
	return t.Format("Monday, 02 January 2006")
}

// padRight pads a string to the given width with spaces.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// todayJSON is the JSON output structure for the root command.
type todayJSON struct {
	Location todayJSONLocation `json:"location"`
	Date     string            `json:"date"`
	Method   todayJSONMethod   `json:"method"`
	Timings  map[string]string `json:"timings"`
	Clamped  []string          `json:"clamped,omitempty"`
	Current  string            `json:"current"`
	Next     *todayJSONNext    `json:"next"`
}

type todayJSONLocation struct {
	Label     string  `json:"label"`
	Timezone  string  `json:"timezone"`
	UTCOffset float64 `json:"utc_offset"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
	Source    string  `json:"source"`
}

type todayJSONMethod struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	FajrAngle float64 `json:"fajr_angle"`
	IshaAngle float64 `json:"isha_angle"`
	School    int     `json:"school"`
}

type todayJSONNext struct {
	Prayer    string `json:"prayer"`
	Time      string `json:"time"`
	Remaining string `json:"remaining"`
}

func jsonLocation(s *calcSettings, t time.Time) todayJSONLocation {
	return todayJSONLocation{
		Label:     s.Location.Label,
		Timezone:  s.Location.Zone.String(),
		UTCOffset: s.Location.OffsetHours(t),
		Latitude:  s.Location.Lat,
		Longitude: s.Location.Lon,
		Elevation: s.Location.Elevation,
		Source:    string(s.Location.Source),
	}
}

func jsonMethod(s *calcSettings) todayJSONMethod {
	return todayJSONMethod{
		ID:        s.Method.ID,
		Name:      s.Method.Name,
		FajrAngle: s.FajrAngle,
		IshaAngle: s.IshaAngle,
		School:    s.School,
	}
}

// jsonTimings keys the times by lower-case name. Clamped names are
// returned separately so the times stay parseable.
func jsonTimings(prayers []prayer.Prayer, layout string) (map[string]string, []string) {
	timings := make(map[string]string, len(prayers))
	var clamped []string
	for _, p := range prayers {
		name := strings.ToLower(p.Name)
		timings[name] = p.Time.Format(layout)
		if p.Clamped {
			clamped = append(clamped, name)
		}
	}
	return timings, clamped
}

// printTodayJSON renders structured JSON output.
func printTodayJSON(out io.Writer, s *calcSettings, prayers []prayer.Prayer, current, next *prayer.Prayer, now time.Time) error {
	timings, clamped := jsonTimings(prayers, s.Layout)

	res := todayJSON{
		Location: jsonLocation(s, now),
		Date:     now.Format("2006-01-02"),
		Method:   jsonMethod(s),
		Timings:  timings,
		Clamped:  clamped,
	}

	if current != nil {
		res.Current = strings.ToLower(current.Name)
	}

	if next != nil {
		res.Next = &todayJSONNext{
			Prayer:    strings.ToLower(next.Name),
			Time:      next.Time.Format(s.Layout),
			Remaining: prayer.FormatRemaining(prayer.TimeRemaining(*next, now)),
		}
	}

	return writeJSON(out, res)
}

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
