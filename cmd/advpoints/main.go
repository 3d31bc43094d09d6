// Command advpoints computes Vedic special points (Gulika, Mandi and the
// sphuta family) and serves them through a terminal UI or headless text modes.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/astronihar/advpoints/internal/astro"
	"github.com/astronihar/advpoints/internal/ephem"
	"github.com/astronihar/advpoints/internal/jyotish"
	"github.com/astronihar/advpoints/internal/logging"
	"github.com/astronihar/advpoints/internal/state"
	"github.com/astronihar/advpoints/internal/ui"
	"github.com/astronihar/advpoints/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	watchInterval time.Duration
	snapshotPath  string
	pointName     string
	diffMode      bool
	eventsMode    bool
	beepMode      bool
	versionMode   bool
)

// Fixed-longitude overrides; NaN means "not set".
var (
	sunDeg   float64
	moonDeg  float64
	rahuDeg  float64
	lagnaDeg float64
)

const (
	defaultRefresh = time.Minute
	minRefresh     = 10 * time.Second
	maxRefresh     = time.Hour

	// Delhi, the default deployment site
	defaultLat = 28.6139
	defaultLon = 77.2090
)

func main() {
	refresh := flag.Duration("refresh", defaultRefresh, "Chart recompute interval (e.g., 30s, 5m)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	lat := flag.Float64("lat", defaultLat, "Observer latitude in degrees, north positive")
	lon := flag.Float64("lon", defaultLon, "Observer longitude in degrees, east positive")
	atFlag := flag.String("at", "", "Compute for a fixed instant (RFC3339) instead of now")
	sunrise := flag.Float64("sunrise-deg", ephem.AssumedSunriseDeg, "Ecliptic degree at sunrise")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat computation at interval (e.g., 1m)")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.StringVar(&pointName, "point", "", "Show card for a single point (e.g., \"Bhrigu Bindu\")")
	flag.BoolVar(&diffMode, "diff", false, "Show only changes between computations")
	flag.BoolVar(&eventsMode, "events", false, "Show ingress event log")
	flag.BoolVar(&beepMode, "beep", false, "Beep on ingress events (TTY only)")
	flag.BoolVar(&versionMode, "version", false, "Print version and exit")
	flag.Float64Var(&sunDeg, "sun", math.NaN(), "Fixed sidereal Sun longitude (requires -moon, -rahu, -lagna)")
	flag.Float64Var(&moonDeg, "moon", math.NaN(), "Fixed sidereal Moon longitude")
	flag.Float64Var(&rahuDeg, "rahu", math.NaN(), "Fixed sidereal Rahu longitude")
	flag.Float64Var(&lagnaDeg, "lagna", math.NaN(), "Fixed sidereal ascendant longitude")
	flag.Parse()

	if versionMode {
		fmt.Println("advpoints " + version.Version)
		return
	}

	// Clamp refresh interval
	if *refresh < minRefresh {
		*refresh = minRefresh
	} else if *refresh > maxRefresh {
		*refresh = maxRefresh
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	// Fixed instant, if requested
	var fixedAt time.Time
	if *atFlag != "" {
		parsed, err := time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -at value %q: %v\n", *atFlag, err)
			os.Exit(1)
		}
		fixedAt = parsed
	}

	provider, err := buildProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("Using %s provider", provider.Name())

	obs := astro.Observer{LatDeg: *lat, LonDeg: *lon}
	fetcher := jyotish.NewFetcher(provider, obs)
	fetcher.SetSunriseDeg(*sunrise)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = *refresh
	stateMgr := state.NewManager(stateCfg)

	headless := summaryMode || snapshotPath != "" || pointName != "" || diffMode || eventsMode
	if headless {
		runHeadless(ctx, fetcher, stateMgr, fixedAt, logger)
		return
	}

	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go runComputeLoop(ctx, fetcher, stateMgr, p, fixedAt, logger)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// buildProvider selects the longitude source. Explicit longitude flags
// switch to a fixed provider; they must be supplied together.
func buildProvider() (ephem.Provider, error) {
	overrides := []float64{sunDeg, moonDeg, rahuDeg, lagnaDeg}
	anySet := false
	allSet := true
	for _, v := range overrides {
		if math.IsNaN(v) {
			allSet = false
		} else {
			anySet = true
		}
	}

	if !anySet {
		return ephem.NewMeanProvider(), nil
	}
	if !allSet {
		return nil, fmt.Errorf("-sun, -moon, -rahu and -lagna must be given together")
	}

	return ephem.NewFixedProvider().
		SetLongitude(ephem.Sun, sunDeg).
		SetLongitude(ephem.Moon, moonDeg).
		SetLongitude(ephem.MeanNode, rahuDeg).
		SetAscendant(lagnaDeg), nil
}

// instant returns the computation time: the fixed -at instant when given,
// otherwise now.
func instant(fixedAt time.Time) time.Time {
	if !fixedAt.IsZero() {
		return fixedAt
	}
	return time.Now()
}

func runComputeLoop(ctx context.Context, fetcher *jyotish.Fetcher, stateMgr *state.Manager, p *tea.Program, fixedAt time.Time, logger *logging.Logger) {
	doCompute(fetcher, stateMgr, p, fixedAt, logger)

	ticker := time.NewTicker(stateMgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Compute loop shutting down")
			return
		case <-ticker.C:
			doCompute(fetcher, stateMgr, p, fixedAt, logger)
		}
	}
}

func doCompute(fetcher *jyotish.Fetcher, stateMgr *state.Manager, p *tea.Program, fixedAt time.Time, logger *logging.Logger) {
	logger.Debug("Computing chart...")

	result := fetcher.Fetch(instant(fixedAt))

	if result.Error != nil {
		logger.Error("Compute failed: %v", result.Error)
		stateMgr.Update(nil, result.Duration, result.Error)
		p.Send(ui.ErrorMsg{Error: result.Error})
		return
	}

	logger.Debug("Chart complete: %d points in %v", len(result.Chart.Points), result.Duration)

	stateMgr.Update(result.Chart, result.Duration, nil)
	p.Send(ui.DataUpdateMsg{Snapshot: stateMgr.Snapshot()})
}

// runHeadless handles all headless modes without starting the TUI.
func runHeadless(ctx context.Context, fetcher *jyotish.Fetcher, stateMgr *state.Manager, fixedAt time.Time, logger *logging.Logger) {
	var prevChart *jyotish.Chart
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	outputOnce := func() error {
		result := fetcher.Fetch(instant(fixedAt))
		if result.Error != nil {
			return result.Error
		}

		stateMgr.Update(result.Chart, result.Duration, nil)
		snap := stateMgr.Snapshot()

		// Diff mode
		if diffMode {
			diff := jyotish.ComputeDiff(prevChart, snap.Chart)
			jyotish.WriteDiff(os.Stdout, diff, snap.LastCompute)
			if beepMode && isTTY && diff.HasChanges() {
				fmt.Print("\a")
			}
			prevChart = snap.Chart
			return nil
		}

		// Single-point card mode
		if pointName != "" {
			jyotish.WritePointCard(os.Stdout, snap.Chart, pointName)
			return nil
		}

		// Export JSON if requested
		if snapshotPath != "" {
			export := jyotish.ExportSnapshot(snap.Chart, snap.LastCompute)
			if snapshotPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(snapshotPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		// Print summary table if requested
		if summaryMode {
			jyotish.WriteSummaryTable(os.Stdout, snap.Chart, snap.LastCompute)
		}

		// Ingress events
		if eventsMode {
			fmt.Println()
			jyotish.WriteEvents(os.Stdout, convertEvents(snap.Events), 10)
		}

		if beepMode && isTTY && len(snap.Events) > 0 {
			for _, e := range snap.Events {
				if time.Since(e.Timestamp) < watchInterval+time.Second {
					fmt.Print("\a")
					break
				}
			}
		}

		prevChart = snap.Chart
		return nil
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
			if !diffMode {
				fmt.Println() // blank line between outputs (except diff mode)
			}
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

// convertEvents converts state.Event to jyotish.Event (avoiding import cycle).
func convertEvents(stateEvents []state.Event) []jyotish.Event {
	events := make([]jyotish.Event, len(stateEvents))
	for i, e := range stateEvents {
		events[i] = jyotish.Event{
			Type:      jyotish.EventType(e.Type),
			Timestamp: e.Timestamp,
			Point:     e.Point,
			From:      e.From,
			To:        e.To,
		}
	}
	return events
}
