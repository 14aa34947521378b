package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"waymap/internal/config"
	"waymap/internal/fetch"
	"waymap/internal/geom"
	"waymap/internal/ingest"
	"waymap/internal/mapview"
	"waymap/internal/metrics"
	"waymap/internal/tui"
)

var cfg *config.Config

var (
	configPath string
	sourceType string
	headerMode string
	labelZoom  int
)

var rootCmd = &cobra.Command{
	Use:   "waymap [source]",
	Short: "Terminal map of geographic waypoints",
	Long:  "Loads named points from a CSV, GeoJSON or KML source (URL or local file), normalizes decimal and DDMMSS.ssH coordinates and shows them on a terminal map.",
	Args:  cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadFile(configPath)
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		applyFlags(cmd, c)
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		// the terminal map owns stdout; only headless commands log to stderr
		logCfg := cfg.Log
		if cmd != cmd.Root() {
			logCfg.File = ""
		}
		if err := config.InitLogger(logCfg); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		src, err := sourceFromArgs(cmd, args)
		if err != nil {
			return err
		}
		startMetrics(ctx)

		m := tui.New(newOrchestrator(cfg), tui.Options{
			Source:      src,
			View:        viewOptions(cfg.Map),
			MarkerColor: cfg.Map.MarkerColor,
		})
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return eris.Wrap(err, "run terminal map")
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ./config.yaml)")
	pf.StringVar(&sourceType, "type", "", "source type: csv, geojson or kml (default from config)")
	pf.StringVar(&headerMode, "header", "", "tabular header: auto, present or absent (default from config)")
	pf.IntVar(&labelZoom, "label-zoom", 0, "zoom at which labels appear (default from config)")
}

// applyFlags lets explicitly set flags override file and env config.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("type") {
		c.Source.Type = sourceType
	}
	if flags.Changed("header") {
		c.Source.Header = headerMode
	}
	if flags.Changed("label-zoom") {
		c.Map.LabelZoom = labelZoom
	}
}

// sourceFromArgs resolves the source: the positional argument replaces
// source.url, and its extension picks the type unless --type is set.
func sourceFromArgs(cmd *cobra.Command, args []string) (ingest.Source, error) {
	loc := cfg.Source.URL
	typeName := cfg.Source.Type
	if len(args) == 1 {
		loc = args[0]
		if !cmd.Flags().Changed("type") {
			if t, ok := ingest.TypeForPath(loc); ok {
				typeName = string(t)
			}
		}
	}
	typ, err := ingest.ParseSourceType(typeName)
	if err != nil {
		return ingest.Source{}, err
	}
	return ingest.Source{Location: loc, Type: typ, Header: geom.HeaderMode(cfg.Source.Header)}, nil
}

func newOrchestrator(c *config.Config) *ingest.Orchestrator {
	httpF := fetch.NewHTTPFetcher(fetch.HTTPOptions{
		UserAgent:         c.Source.UserAgent,
		Timeout:           time.Duration(c.Source.TimeoutSecs) * time.Second,
		MaxBytes:          c.Source.MaxBytes,
		RequestsPerSecond: c.Source.RequestsPerSecond,
	})
	return ingest.New(fetch.Router{HTTP: httpF, File: fetch.FileFetcher{}})
}

func viewOptions(c config.MapConfig) mapview.Options {
	return mapview.Options{
		CenterLat:  c.InitialLat,
		CenterLon:  c.InitialLon,
		Zoom:       c.InitialZoom,
		MinZoom:    c.MinZoom,
		MaxZoom:    c.MaxZoom,
		LabelZoom:  c.LabelZoom,
		FitPadding: c.FitPadding,
	}
}

func startMetrics(ctx context.Context) {
	if cfg.Metrics.Addr == "" {
		return
	}
	go func() {
		if err := metrics.Serve(ctx, cfg.Metrics.Addr); err != nil {
			zap.L().Error("metrics server stopped", zap.Error(err))
		}
	}()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
