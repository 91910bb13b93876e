package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SerialConfig selects the serial device the sensor is attached to.
type SerialConfig struct {
	Device string `mapstructure:"device"`
}

// PollConfig controls the sensor polling loop.
type PollConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// HTTPConfig configures the metrics HTTP listener.
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// MetricsConfig configures the Prometheus exposition endpoint.
type MetricsConfig struct {
	Path string `mapstructure:"path"`
}

// FileConfig configures optional rolling-file log output (lumberjack).
// Logs go to stdout only when Filename is empty.
type FileConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"maxSize"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAge"`
	Compress   bool   `mapstructure:"compress"`
}

// LoggingConfig selects log level, encoding and output.
type LoggingConfig struct {
	Level  string     `mapstructure:"level"`
	Format string     `mapstructure:"format"`
	File   FileConfig `mapstructure:"file"`
}

// SensorConfig holds one-shot sensor setup applied at startup.
type SensorConfig struct {
	// Range sets the detection range in ppm at startup when non-zero;
	// must be one of 1000, 2000, 3000, 5000, 10000
	Range uint16 `mapstructure:"range"`

	// AutoCalibration is "enable", "disable", or empty to leave the
	// sensor's automatic baseline correction untouched
	AutoCalibration string `mapstructure:"autoCalibration"`
}

// Config is the top-level exporter configuration.
type Config struct {
	Serial  SerialConfig  `mapstructure:"serial"`
	Poll    PollConfig    `mapstructure:"poll"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
	Sensor  SensorConfig  `mapstructure:"sensor"`
}

// loadConfig loads configuration from the given YAML/TOML/JSON file and
// the environment (prefix MHZ19_, dots replaced by underscores). An
// empty path uses defaults and environment only.
func loadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MHZ19")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Poll.Interval <= 0 {
		return fmt.Errorf("poll.interval must be positive, got %s", cfg.Poll.Interval)
	}

	switch cfg.Sensor.AutoCalibration {
	case "", "enable", "disable":
	default:
		return fmt.Errorf("sensor.autoCalibration must be \"enable\", \"disable\" or empty, got %q", cfg.Sensor.AutoCalibration)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("serial.device", "/dev/ttyUSB0")

	v.SetDefault("poll.interval", "30s")

	v.SetDefault("http.addr", ":9672")

	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file.filename", "")
	v.SetDefault("logging.file.maxSize", 100)
	v.SetDefault("logging.file.maxBackups", 7)
	v.SetDefault("logging.file.maxAge", 30)
	v.SetDefault("logging.file.compress", true)

	v.SetDefault("sensor.range", 0)
	v.SetDefault("sensor.autoCalibration", "")
}
