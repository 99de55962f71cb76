package prayer

import (
	"testing"
	"time"
)

// helper to build a time.Time on a given date in UTC.
func makeTime(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, 2, 28, hour, min, 0, 0, time.UTC)
}

func samplePrayers(t *testing.T) []Prayer {
	t.Helper()
	return []Prayer{
		{Name: "Fajr", Time: makeTime(t, 5, 17)},
		{Name: "Sunrise", Time: makeTime(t, 6, 48)},
		{Name: "Zuhr", Time: makeTime(t, 12, 13)},
		{Name: "Asr", Time: makeTime(t, 15, 2)},
		{Name: "Maghrib", Time: makeTime(t, 17, 49)},
		{Name: "Isha", Time: makeTime(t, 19, 10)},
	}
}

// ---------------------------------------------------------------------------
// Select / SplitNames
// ---------------------------------------------------------------------------

func TestSelect_SubsetInRequestedOrder(t *testing.T) {
	got, err := Select(samplePrayers(t), []string{"isha", "Fajr", "Dhuhr"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 prayers, got %d", len(got))
	}
	if got[0].Name != "Isha" || got[1].Name != "Fajr" || got[2].Name != "Zuhr" {
		t.Errorf("unexpected prayer names: %v", got)
	}
}

func TestSelect_UnknownPrayer(t *testing.T) {
	if _, err := Select(samplePrayers(t), []string{"Tahajjud"}); err == nil {
		t.Fatal("expected error for unknown prayer, got nil")
	}
}

func TestSplitNames(t *testing.T) {
	if got := SplitNames(""); len(got) != len(DefaultPrayerNames) {
		t.Errorf("SplitNames(\"\") = %v, want defaults", got)
	}

	got := SplitNames(" Fajr , Isha")
	if len(got) != 2 || got[0] != "Fajr" || got[1] != "Isha" {
		t.Errorf("SplitNames trimmed = %q", got)
	}
}

// ---------------------------------------------------------------------------
// NextPrayer / CurrentPrayer
// ---------------------------------------------------------------------------

func TestNextPrayer_MiddleOfDay(t *testing.T) {
	// At 13:00, Zuhr (12:13) has passed, next should be Asr (15:02)
	next := NextPrayer(samplePrayers(t), makeTime(t, 13, 0))
	if next == nil {
		t.Fatal("expected a next prayer, got nil")
	}
	if next.Name != "Asr" {
		t.Errorf("expected Asr, got %s", next.Name)
	}
}

func TestNextPrayer_BeforeFirstPrayer(t *testing.T) {
	next := NextPrayer(samplePrayers(t), makeTime(t, 3, 0))
	if next == nil || next.Name != "Fajr" {
		t.Errorf("expected Fajr, got %v", next)
	}
}

func TestNextPrayer_AfterAllPrayers(t *testing.T) {
	next := NextPrayer(samplePrayers(t), makeTime(t, 22, 0))
	if next != nil {
		t.Errorf("expected nil after all prayers, got %s", next.Name)
	}
}

func TestNextPrayer_ExactTime(t *testing.T) {
	// Exactly at Zuhr: should move to Asr since Zuhr is not After now
	next := NextPrayer(samplePrayers(t), makeTime(t, 12, 13))
	if next == nil || next.Name != "Asr" {
		t.Errorf("expected Asr, got %v", next)
	}
}

func TestNextPrayer_EmptyList(t *testing.T) {
	if next := NextPrayer([]Prayer{}, makeTime(t, 12, 0)); next != nil {
		t.Errorf("expected nil for empty prayer list, got %v", next)
	}
}

func TestCurrentPrayer(t *testing.T) {
	tests := []struct {
		name       string
		hour, min  int
		wantPrayer string
	}{
		{"before fajr", 3, 0, ""},
		{"exactly fajr", 5, 17, "Fajr"},
		{"afternoon", 13, 0, "Zuhr"},
		{"night", 23, 0, "Isha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentPrayer(samplePrayers(t), makeTime(t, tt.hour, tt.min))
			if tt.wantPrayer == "" {
				if got != nil {
					t.Errorf("expected nil, got %s", got.Name)
				}
				return
			}
			if got == nil || got.Name != tt.wantPrayer {
				t.Errorf("CurrentPrayer = %v, want %s", got, tt.wantPrayer)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TimeRemaining / FormatRemaining
// ---------------------------------------------------------------------------

func TestTimeRemaining(t *testing.T) {
	p := Prayer{Name: "Asr", Time: makeTime(t, 15, 2)}
	d := TimeRemaining(p, makeTime(t, 13, 0))
	if d.Hours() < 2.0 || d.Hours() > 2.1 {
		t.Errorf("expected ~2h, got %v", d)
	}
}

func TestTimeRemaining_Negative(t *testing.T) {
	p := Prayer{Name: "Fajr", Time: makeTime(t, 5, 0)}
	if d := TimeRemaining(p, makeTime(t, 10, 0)); d >= 0 {
		t.Errorf("expected negative duration, got %v", d)
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"hours and minutes", 2*time.Hour + 15*time.Minute, "2h 15m"},
		{"only minutes", 45 * time.Minute, "45m"},
		{"exactly one hour", 1 * time.Hour, "1h 0m"},
		{"zero", 0, "0m"},
		{"negative", -30 * time.Minute, "0m"},
		{"large", 10*time.Hour + 59*time.Minute, "10h 59m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRemaining(tt.duration); got != tt.want {
				t.Errorf("FormatRemaining(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}

func TestShortNames_AllDefaults(t *testing.T) {
	for _, name := range DefaultPrayerNames {
		if _, ok := ShortNames[name]; !ok {
			t.Errorf("ShortNames missing entry for default prayer %q", name)
		}
	}
}

func TestEventNamesMatchDefaults(t *testing.T) {
	for i, e := range Events {
		if e.String() != DefaultPrayerNames[i] {
			t.Errorf("Events[%d] = %s, want %s", i, e, DefaultPrayerNames[i])
		}
	}
	if Event(42).String() != "Unknown" {
		t.Error("out-of-range event should stringify as Unknown")
	}
}
