package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/prayer-calc/internal/display"
	"github.com/smokyabdulrahman/prayer-calc/internal/prayer"
)

var flagExplainDate string

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show every intermediate value of the calculation",
		Long:  "Print the Julian Day, solar declination, equation of time, transit time,\nsun altitudes and hour angles behind each prayer time.",
		Args:  cobra.NoArgs,
		RunE:  runExplain,
	}

	cmd.Flags().StringVar(&flagExplainDate, "date", "", "Date or date-time to explain (default: today at noon)")

	return cmd
}

func runExplain(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var day *dayResult
	if flagExplainDate == "" {
		day, err = s.computeDay(s.now())
	} else {
		at, perr := parseDate(flagExplainDate, s.Location.Zone, s.now())
		if perr != nil {
			return perr
		}
		day, err = s.computeAt(at)
	}
	if err != nil {
		return err
	}

	if FlagJSON {
		return writeJSON(cmd.OutOrStdout(), explainJSONFrom(day.Schedule))
	}

	printExplain(cmd.OutOrStdout(), s, day)
	return nil
}

func printExplain(out io.Writer, s *calcSettings, day *dayResult) {
	sched := day.Schedule
	loc := sched.Location

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", display.Bold("Calculation for "+day.Date.Format("2006-01-02 15:04:05 MST")))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-18s %.4f, %.4f  elevation %gm\n", "Location", loc.Latitude, loc.Longitude, loc.Elevation)
	fmt.Fprintf(out, "  %-18s %+g h\n", "UTC offset", loc.Timezone)
	fmt.Fprintf(out, "  %-18s Fajr %g°, Isha %g°, shadow factor %g\n", "Parameters", loc.FajrAngle, loc.IshaAngle, loc.ShadowFactor)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-18s %.6f\n", "Julian Day", sched.JulianDay)
	fmt.Fprintf(out, "  %-18s %.4f°\n", "Sun declination", sched.Declination)
	fmt.Fprintf(out, "  %-18s %.4f min\n", "Equation of time", sched.EquationOfTime)
	fmt.Fprintf(out, "  %-18s %.4f h (%s)\n", "Transit", sched.Transit, display.Cyan(prayer.FormatClock(sched.Transit)))
	fmt.Fprintln(out)

	tbl := display.NewTable([]string{"Event", "Altitude", "Hour angle", "Decimal", "Time"})
	tbl.AlignRight(1, 2, 3)
	for _, e := range prayer.Events {
		alt, ha := "", ""
		for i, h := range sched.HourAngles {
			if h.Event != e {
				continue
			}
			alt = fmt.Sprintf("%.4f°", sched.Altitudes[i])
			ha = fmt.Sprintf("%.4f°", h.Degrees)
			if h.Clamped {
				ha += prayer.ClampedMarker
			}
		}
		if e == prayer.Zuhr {
			alt, ha = "transit", "0°"
		}
		t := sched.Time(e)
		tbl.AddRow([]string{e.String(), alt, ha, fmt.Sprintf("%.4f", t), prayer.FormatClock(t)})
	}
	fmt.Fprint(out, tbl.Render())

	if len(sched.ClampedEvents()) > 0 {
		fmt.Fprintf(out, "\n  %s\n", display.Yellow(prayer.ClampedMarker+" cosine clamped to [-1, 1]: polar day or night for this altitude"))
	}
	fmt.Fprintf(out, "\n  %s\n\n", display.Gray(fmt.Sprintf("Maghrib includes a fixed %.0f minute margin after sunset.", prayer.MaghribMargin*60)))
}

type explainJSON struct {
	Latitude       float64            `json:"latitude"`
	Longitude      float64            `json:"longitude"`
	Elevation      float64            `json:"elevation"`
	UTCOffset      float64            `json:"utc_offset"`
	FajrAngle      float64            `json:"fajr_angle"`
	IshaAngle      float64            `json:"isha_angle"`
	ShadowFactor   float64            `json:"shadow_factor"`
	JulianDay      float64            `json:"julian_day"`
	Declination    float64            `json:"declination"`
	EquationOfTime float64            `json:"equation_of_time"`
	Transit        float64            `json:"transit"`
	Events         []explainJSONEvent `json:"events"`
}

type explainJSONEvent struct {
	Name      string   `json:"name"`
	Altitude  *float64 `json:"altitude,omitempty"`
	HourAngle *float64 `json:"hour_angle,omitempty"`
	Clamped   bool     `json:"clamped,omitempty"`
	Decimal   float64  `json:"decimal"`
	Time      string   `json:"time"`
}

func explainJSONFrom(sched *prayer.Schedule) explainJSON {
	loc := sched.Location
	res := explainJSON{
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
		Elevation:      loc.Elevation,
		UTCOffset:      loc.Timezone,
		FajrAngle:      loc.FajrAngle,
		IshaAngle:      loc.IshaAngle,
		ShadowFactor:   loc.ShadowFactor,
		JulianDay:      sched.JulianDay,
		Declination:    sched.Declination,
		EquationOfTime: sched.EquationOfTime,
		Transit:        sched.Transit,
	}

	for _, e := range prayer.Events {
		ev := explainJSONEvent{
			Name:    e.String(),
			Decimal: sched.Time(e),
			Time:    prayer.FormatClock(sched.Time(e)),
		}
		for i, h := range sched.HourAngles {
			if h.Event == e {
				alt, deg := sched.Altitudes[i], h.Degrees
				ev.Altitude, ev.HourAngle, ev.Clamped = &alt, &deg, h.Clamped
			}
		}
		res.Events = append(res.Events, ev)
	}
	return res
}
