package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/yaoapp/kun/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Run modes.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Config is the runtime configuration, read from the environment.
type Config struct {
	Mode          string `json:"mode,omitempty" env:"CALLBACKS_ENV" envDefault:"development"`
	Log           string `json:"log,omitempty" env:"CALLBACKS_LOG"`
	LogMode       string `json:"log_mode,omitempty" env:"CALLBACKS_LOG_MODE" envDefault:"TEXT"`
	LogMaxSize    int    `json:"log_max_size,omitempty" env:"CALLBACKS_LOG_MAX_SIZE" envDefault:"20"`
	LogMaxAge     int    `json:"log_max_age,omitempty" env:"CALLBACKS_LOG_MAX_AGE" envDefault:"7"`
	LogMaxBackups int    `json:"log_max_backups,omitempty" env:"CALLBACKS_LOG_MAX_BACKUPS" envDefault:"3"`
	Value         string `json:"value,omitempty" env:"CALLBACKS_VALUE" envDefault:"Testing"`
	InstanceValue int    `json:"instance_value,omitempty" env:"CALLBACKS_INSTANCE_VALUE" envDefault:"2"`
}

// Conf is the configuration applied by the last call to Apply.
var Conf = Config{Mode: ModeDevelopment}

// LogOutput is the rotated log file writer, nil when logging to stdout.
var LogOutput io.WriteCloser

// Load reads envfile (when it exists) into the process environment and
// parses the environment into a Config. Variables already present in the
// file override the environment.
func Load(envfile string) (Config, error) {
	if envfile != "" {
		file, err := filepath.Abs(envfile)
		if err != nil {
			return Config{}, fmt.Errorf("config: resolve %s: %w", envfile, err)
		}
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Overload(file); err != nil {
				return Config{}, fmt.Errorf("config: load %s: %w", file, err)
			}
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}

	cfg.Mode = strings.ToLower(cfg.Mode)
	if cfg.Mode != ModeDevelopment && cfg.Mode != ModeProduction {
		return Config{}, fmt.Errorf("config: unknown mode %q", cfg.Mode)
	}
	cfg.LogMode = strings.ToUpper(cfg.LogMode)
	if cfg.LogMode != "TEXT" && cfg.LogMode != "JSON" {
		return Config{}, fmt.Errorf("config: unknown log mode %q", cfg.LogMode)
	}
	return cfg, nil
}

// Apply makes cfg the active configuration and sets up the log level,
// formatter and output accordingly.
func Apply(cfg Config) error {
	if LogOutput != nil {
		LogOutput.Close()
		LogOutput = nil
	}
	Conf = cfg

	if cfg.Mode == ModeProduction {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(log.TraceLevel)
	}

	if cfg.LogMode == "JSON" {
		log.SetFormatter(log.JSON)
	} else {
		log.SetFormatter(log.TEXT)
	}

	if cfg.Log == "" {
		log.SetOutput(os.Stdout)
		return nil
	}

	logfile, err := filepath.Abs(cfg.Log)
	if err != nil {
		return fmt.Errorf("config: resolve log %s: %w", cfg.Log, err)
	}
	if err := os.MkdirAll(filepath.Dir(logfile), os.ModePerm); err != nil {
		return fmt.Errorf("config: create log dir: %w", err)
	}

	LogOutput = &lumberjack.Logger{
		Filename:   logfile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		LocalTime:  true,
		Compress:   true,
	}
	log.SetOutput(LogOutput)
	return nil
}

// IsDevelopment reports whether the active configuration runs in development mode.
func IsDevelopment() bool {
	return Conf.Mode == ModeDevelopment
}

// IsProduction reports whether the active configuration runs in production mode.
func IsProduction() bool {
	return Conf.Mode == ModeProduction
}
