package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	suncalc "github.com/litescript/ls-suncalc"
)

func testConfig() Config {
	return Config{
		Observer: suncalc.Observer{LatDeg: 50.938056, LonDeg: 6.956944},
		Twilight: suncalc.TwilightVisual,
	}
}

func TestFormatLatLon(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"north", formatLat(50.938056), "50.9381°N"},
		{"south", formatLat(-33.8688), "33.8688°S"},
		{"east", formatLon(6.956944), "6.9569°E"},
		{"west", formatLon(-62.338), "62.3380°W"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestFormatEvent(t *testing.T) {
	if got := formatEvent(nil); got != "—" {
		t.Errorf("nil event = %q, want dash", got)
	}

	at := time.Date(2024, 1, 25, 17, 54, 0, 0, time.UTC)
	if got := formatEvent(&at); got != "Jan 25 17:54" {
		t.Errorf("event = %q, want %q", got, "Jan 25 17:54")
	}
}

func TestComputeAlmanac(t *testing.T) {
	at := time.Date(2017, 2, 10, 12, 0, 0, 0, time.UTC)

	a, err := computeAlmanac(testConfig(), at)
	if err != nil {
		t.Fatalf("computeAlmanac: %v", err)
	}

	if a.SunTimes.Rise == nil || a.SunTimes.Set == nil {
		t.Error("expected sunrise and sunset at mid-latitude in February")
	}
	if !a.NextNew.Time.After(at) {
		t.Errorf("next new moon %v not after %v", a.NextNew.Time, at)
	}
	if !a.NextFull.Time.After(at) {
		t.Errorf("next full moon %v not after %v", a.NextFull.Time, at)
	}
}

func TestComputeAlmanacInvalidObserver(t *testing.T) {
	cfg := testConfig()
	cfg.Observer.LatDeg = 123.0

	at := time.Date(2017, 2, 10, 12, 0, 0, 0, time.UTC)
	if _, err := computeAlmanac(cfg, at); err == nil {
		t.Error("expected error for out-of-range latitude")
	}
}

func TestWriteSummary(t *testing.T) {
	at := time.Date(2017, 2, 10, 12, 0, 0, 0, time.UTC)

	var b strings.Builder
	if err := WriteSummary(&b, testConfig(), at); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	out := b.String()

	for _, want := range []string{"Sun", "Moon", "Rise", "Set", "Noon", "New moon", "Full moon", "50.9381°N"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestModelQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := New(testConfig())

			var msg tea.KeyMsg
			switch key {
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			_, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if cmd() != tea.Quit() {
				t.Errorf("key %q did not produce quit", key)
			}
		})
	}
}

func TestModelViewBeforeReady(t *testing.T) {
	m := New(testConfig())
	if got := m.View(); got != "Loading..." {
		t.Errorf("View before sizing = %q", got)
	}
}

func TestModelWindowSize(t *testing.T) {
	m := New(testConfig())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(Model)

	if !model.ready {
		t.Error("model should be ready after WindowSizeMsg")
	}
	if model.width != 120 || model.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", model.width, model.height)
	}
}

func TestModelDataMsg(t *testing.T) {
	at := time.Date(2017, 2, 10, 12, 0, 0, 0, time.UTC)
	a, err := computeAlmanac(testConfig(), at)
	if err != nil {
		t.Fatalf("computeAlmanac: %v", err)
	}

	m := New(testConfig())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	updated, _ = updated.(Model).Update(dataMsg{a})
	model := updated.(Model)

	view := model.View()
	if !strings.Contains(view, "Sun") || !strings.Contains(view, "Moon") {
		t.Errorf("view missing panels:\n%s", view)
	}
}
