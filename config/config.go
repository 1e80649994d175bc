// Package config holds the settings of the mudrooms tool.
//
// Values start from DefaultConfig, are overridden by MUDROOMS_* environment
// variables, and finally by command line flags.
package config

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
	"github.com/zond/mudrooms"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	TableFormat = "table"
	JSONFormat  = "json"
)

type Config struct {
	LogFile       string `env:"MUDROOMS_LOG_FILE"`
	LogMaxSizeMB  int    `env:"MUDROOMS_LOG_MAX_SIZE_MB"  envDefault:"10"`
	LogMaxBackups int    `env:"MUDROOMS_LOG_MAX_BACKUPS"  envDefault:"3"`
	LogMaxAgeDays int    `env:"MUDROOMS_LOG_MAX_AGE_DAYS" envDefault:"28"`
	LogCompress   bool   `env:"MUDROOMS_LOG_COMPRESS"`
	Format        string `env:"MUDROOMS_FORMAT"           envDefault:"table"`
}

func DefaultConfig() Config {
	return Config{
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
		LogMaxAgeDays: 28,
		Format:        TableFormat,
	}
}

// FromEnv returns DefaultConfig overridden by the environment.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, mudrooms.WithStack(fmt.Errorf("parse env: %w", err))
	}
	return cfg, nil
}

func (c *Config) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.LogFile, "log-file", c.LogFile, "Where to write logs, stderr if empty.")
	flagSet.IntVar(&c.LogMaxSizeMB, "log-max-size", c.LogMaxSizeMB, "Megabytes before the log file is rotated.")
	flagSet.IntVar(&c.LogMaxBackups, "log-max-backups", c.LogMaxBackups, "Rotated log files to keep.")
	flagSet.IntVar(&c.LogMaxAgeDays, "log-max-age", c.LogMaxAgeDays, "Days to keep rotated log files.")
	flagSet.BoolVar(&c.LogCompress, "log-compress", c.LogCompress, "Whether to gzip rotated log files.")
	flagSet.StringVarP(&c.Format, "format", "f", c.Format, "Output format, table or json.")
}

func (c Config) Validate() error {
	if c.Format != TableFormat && c.Format != JSONFormat {
		return mudrooms.WithStack(fmt.Errorf("unknown format %q", c.Format))
	}
	if c.LogMaxSizeMB < 0 || c.LogMaxBackups < 0 || c.LogMaxAgeDays < 0 {
		return mudrooms.WithStack(fmt.Errorf("log rotation limits must not be negative"))
	}
	return nil
}

// LogWriter returns a rotating writer for LogFile, or stderr if no file is configured.
func (c Config) LogWriter() io.Writer {
	if c.LogFile == "" {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAge:     c.LogMaxAgeDays,
		Compress:   c.LogCompress,
	}
}

func (c Config) SetupLogging() {
	log.SetOutput(c.LogWriter())
}
