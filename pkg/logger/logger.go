package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config represents the configs used by the global logger.
type Config struct {
	Filename   string `yaml:"filename"`
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size_in_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Targets    string `yaml:"targets"` // comma separated: "console", "file"
}

var log zerolog.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

// InitGlobalLogger replaces the default console logger with one built from cfg.
func InitGlobalLogger(cfg *Config) {
	var writers []io.Writer

	for _, target := range strings.Split(cfg.Targets, ",") {
		switch strings.TrimSpace(target) {
		case "file":
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				Compress:   true,
			})
		case "console":
			writers = append(writers, zerolog.NewConsoleWriter())
		}
	}

	if len(writers) == 0 {
		writers = append(writers, zerolog.NewConsoleWriter())
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	log = zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()
}

func Debug(msg string, keyvals ...any) {
	appendFields(log.Debug(), keyvals).Msg(msg)
}

func Info(msg string, keyvals ...any) {
	appendFields(log.Info(), keyvals).Msg(msg)
}

func Warn(msg string, keyvals ...any) {
	appendFields(log.Warn(), keyvals).Msg(msg)
}

func Error(msg string, keyvals ...any) {
	appendFields(log.Error(), keyvals).Msg(msg)
}

// Fatal logs the message and exits with a non-zero code.
func Fatal(msg string, keyvals ...any) {
	appendFields(log.Fatal(), keyvals).Msg(msg)
	os.Exit(1)
}

func appendFields(e *zerolog.Event, keyvals []any) *zerolog.Event {
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, keyvals[i+1])
	}

	return e
}
