// Package config loads the savg settings from an optional file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/stockavg"
	"github.com/etnz/stockavg/export"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ReportConfig struct {
	Title     string `mapstructure:"title"`
	OutputDir string `mapstructure:"output_dir"`
	Format    string `mapstructure:"format"`
}

type NotifyConfig struct {
	From string `mapstructure:"from"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Currency string       `mapstructure:"currency"`
	Report   ReportConfig `mapstructure:"report"`
	Notify   NotifyConfig `mapstructure:"notify"`
	Log      LogConfig    `mapstructure:"log"`
}

// ReportFormat returns the configured export format.
func (c *Config) ReportFormat() export.Format {
	f, _ := export.ParseFormat(c.Report.Format)
	return f
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("currency", stockavg.DefaultCurrency)
	v.SetDefault("report.title", stockavg.DefaultReportTitle)
	v.SetDefault("report.output_dir", ".")
	v.SetDefault("report.format", string(export.Markdown))
	v.SetDefault("notify.from", "reports@stockavg.local")
	v.SetDefault("log.level", "warn")
}

// Load loads configuration from the file at path (e.g. "savg.yaml").
// If path is empty, a "savg" file in the working directory is used when present.
// Environment variables override both, e.g. SAVG_CURRENCY=USD or SAVG_REPORT_TITLE.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName("savg")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("SAVG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("invalid config: unknown currency %q", c.Currency)
	}
	if _, err := export.ParseFormat(c.Report.Format); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewLogger returns a human readable logger writing to stderr at level.
func NewLogger(level string) (*zap.Logger, error) {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(l)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
