// Command ls-suncalc is a terminal almanac for sun and moon rise, set and
// phase times at an observer location.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	suncalc "github.com/litescript/ls-suncalc"
	"github.com/litescript/ls-suncalc/internal/logging"
	"github.com/litescript/ls-suncalc/internal/ui"
	"github.com/litescript/ls-suncalc/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	watchInterval time.Duration
	versionMode   bool
)

const (
	minWatch = 1 * time.Second
	maxWatch = 1 * time.Hour
)

func main() {
	// Parse flags
	lat := flag.Float64("lat", 50.938056, "Observer latitude in degrees, north positive")
	lon := flag.Float64("lon", 6.956944, "Observer longitude in degrees, east positive")
	height := flag.Float64("height", 0, "Observer elevation above sea level in meters")
	atFlag := flag.String("time", "", "Evaluate at this time (RFC 3339) instead of now")
	twilightName := flag.String("twilight", "visual", "Twilight for sunrise/sunset (visual, civil, nautical, astronomical, horizon, golden_hour, blue_hour)")
	days := flag.Int("days", 365, "Event search window in days")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat summary at interval (e.g., 1m)")
	flag.BoolVar(&versionMode, "version", false, "Print version and exit")
	flag.Parse()

	if versionMode {
		fmt.Println("ls-suncalc " + version.Version)
		return
	}

	// Validate watch interval
	if watchInterval != 0 {
		if watchInterval < minWatch {
			watchInterval = minWatch
		} else if watchInterval > maxWatch {
			watchInterval = maxWatch
		}
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(*logLevel))

	cfg := ui.Config{
		Observer: suncalc.Observer{
			LatDeg:  *lat,
			LonDeg:  *lon,
			HeightM: *height,
		},
		Twilight: suncalc.ParseTwilight(*twilightName),
		Window:   time.Duration(*days) * 24 * time.Hour,
	}
	if err := cfg.Observer.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if *atFlag != "" {
		at, err := time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -time value: %v\n", err)
			os.Exit(2)
		}
		cfg.FixedTime = &at
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Headless mode: no TUI
	headless := summaryMode || watchInterval != 0 || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		runHeadless(ctx, cfg, logger)
		return
	}

	logger.Debug("Starting TUI for %.4f, %.4f", cfg.Observer.LatDeg, cfg.Observer.LonDeg)

	// Run TUI (blocks until quit)
	p := tea.NewProgram(ui.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless prints the text almanac, once or repeatedly in watch mode.
func runHeadless(ctx context.Context, cfg ui.Config, logger *logging.Logger) {
	log := logger.Named("almanac")

	outputOnce := func() error {
		at := time.Now()
		if cfg.FixedTime != nil {
			at = *cfg.FixedTime
		}
		log.Debug("Computing almanac for %s", at.Format(time.RFC3339))
		return ui.WriteSummary(os.Stdout, cfg, at)
	}

	// Single run
	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval
	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Println() // Blank line between outputs
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
