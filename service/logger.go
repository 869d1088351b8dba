package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/soulgarden/futures-bot/conf"
	"github.com/soulgarden/futures-bot/dictionary"
)

const logDirPerm = 0o755

const logFilePerm = 0o644

// NewLogger writes human readable lines to console and json lines to a fresh per-run file
// in cfg.LogDir. The returned closer closes that file.
func NewLogger(cfg *conf.Bot, console io.Writer, now time.Time) (*zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(cfg.LogDir, logDirPerm); err != nil {
		return nil, nil, err
	}

	path := filepath.Join(cfg.LogDir, fmt.Sprintf("trading_bot_%s.log", now.Format(dictionary.LogFileTimeLayout)))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
	if err != nil {
		return nil, nil, err
	}

	defaultLogLevel := zerolog.InfoLevel
	if cfg.Debug {
		defaultLogLevel = zerolog.DebugLevel
	}

	w := zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339}, f)

	logger := zerolog.New(w).Level(defaultLogLevel).With().Timestamp().Caller().Logger()

	return &logger, f, nil
}
