package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hilthontt/sovereign/internal/infrastructure/env"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Debug(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Debugf(template string, args ...any)

	Info(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Infof(template string, args ...any)

	Warn(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Warnf(template string, args ...any)

	Error(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Errorf(template string, args ...any)

	Fatal(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Fatalf(template string, args ...any)

	Sync() error
}

type LoggerConfig struct {
	AppName  string
	FilePath string
	Encoding string
	Level    string
	Logger   string

	// Output replaces stdout when set. Tests use it to capture entries.
	Output io.Writer
}

func NewDefaultConfig(appName string) *LoggerConfig {
	return &LoggerConfig{
		AppName:  appName,
		FilePath: env.GetString("LOGGER_FILE_PATH", ""),
		Encoding: env.GetString("LOGGER_ENCODING", "json"),
		Level:    env.GetString("LOGGER_LEVEL", "info"),
		Logger:   env.GetString("LOGGER_LOGGER", "zap"),
	}
}

func NewLogger(cfg *LoggerConfig) (Logger, error) {
	switch cfg.Logger {
	case "", "zap":
		return newZapLogger(cfg)
	case "zerolog":
		return newZeroLogger(cfg)
	}

	return nil, fmt.Errorf("logger not supported: %q: supported loggers: [zap, zerolog]", cfg.Logger)
}

func (cfg *LoggerConfig) writers() []io.Writer {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	writers := []io.Writer{out}
	if cfg.FilePath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.FilePath, fmt.Sprintf("%s.log", cfg.AppName)),
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		})
	}

	return writers
}
