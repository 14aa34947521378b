package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultSourceURL is the published waypoint collection.
const DefaultSourceURL = "https://raw.githubusercontent.com/usagi-515/waypoint/main/waypoints.geojson"

// Config holds the full application configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source" mapstructure:"source"`
	Map     MapConfig     `yaml:"map" mapstructure:"map"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// SourceConfig configures where points are loaded from.
type SourceConfig struct {
	URL               string  `yaml:"url" mapstructure:"url"`
	Type              string  `yaml:"type" mapstructure:"type"`
	Header            string  `yaml:"header" mapstructure:"header"`
	TimeoutSecs       int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UserAgent         string  `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBytes          int64   `yaml:"max_bytes" mapstructure:"max_bytes"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// MapConfig configures the initial view and label behaviour.
type MapConfig struct {
	InitialLat  float64 `yaml:"initial_lat" mapstructure:"initial_lat"`
	InitialLon  float64 `yaml:"initial_lon" mapstructure:"initial_lon"`
	InitialZoom int     `yaml:"initial_zoom" mapstructure:"initial_zoom"`
	MinZoom     int     `yaml:"min_zoom" mapstructure:"min_zoom"`
	MaxZoom     int     `yaml:"max_zoom" mapstructure:"max_zoom"`
	LabelZoom   int     `yaml:"label_zoom" mapstructure:"label_zoom"`
	FitPadding  float64 `yaml:"fit_padding" mapstructure:"fit_padding"`
	MarkerColor string  `yaml:"marker_color" mapstructure:"marker_color"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}

// MetricsConfig configures the optional prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file path. An empty path looks
// for config.yaml in the working directory.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	// Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Environment
	v.SetEnvPrefix("WAYMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("source.url", DefaultSourceURL)
	v.SetDefault("source.type", "geojson")
	v.SetDefault("source.header", "auto")
	v.SetDefault("source.timeout_secs", 30)
	v.SetDefault("source.user_agent", "waymap/1.0")
	v.SetDefault("source.max_bytes", 32<<20)
	v.SetDefault("source.requests_per_second", 1.0)
	v.SetDefault("map.initial_lat", 35.0)
	v.SetDefault("map.initial_lon", 135.0)
	v.SetDefault("map.initial_zoom", 5)
	v.SetDefault("map.min_zoom", 0)
	v.SetDefault("map.max_zoom", 15)
	v.SetDefault("map.label_zoom", 8)
	v.SetDefault("map.fit_padding", 0.1)
	v.SetDefault("map.marker_color", "#e41a1c")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "waymap.log")
	v.SetDefault("metrics.addr", "")

	// Read config file (optional unless named explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the values a load cycle and the map depend on.
func (c *Config) Validate() error {
	var errs []string
	if strings.TrimSpace(c.Source.URL) == "" {
		errs = append(errs, "source.url is required")
	}
	switch strings.ToLower(c.Source.Type) {
	case "csv", "geojson", "kml":
	default:
		errs = append(errs, "source.type must be csv, geojson or kml")
	}
	switch strings.ToLower(c.Source.Header) {
	case "auto", "present", "absent":
	default:
		errs = append(errs, "source.header must be auto, present or absent")
	}
	if c.Source.TimeoutSecs <= 0 {
		errs = append(errs, "source.timeout_secs must be positive")
	}
	if c.Source.MaxBytes <= 0 {
		errs = append(errs, "source.max_bytes must be positive")
	}
	if c.Map.MinZoom < 0 || c.Map.MaxZoom < c.Map.MinZoom {
		errs = append(errs, "map.min_zoom/map.max_zoom out of order")
	}
	if c.Map.FitPadding < 0 {
		errs = append(errs, "map.fit_padding must not be negative")
	}
	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	} else {
		zapCfg.OutputPaths = []string{"stderr"}
		zapCfg.ErrorOutputPaths = []string{"stderr"}
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
