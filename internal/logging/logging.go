package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"video-bingo/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	sinkMu sync.RWMutex
	sink   io.Writer = os.Stdout
	file   *sizeLimitedWriter
)

// Init configures the global zerolog logger. When cfg.File is set, output goes
// to both stdout and a size-capped log file.
func Init(cfg config.LogConfig) error {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		w, err := newSizeLimitedWriter(cfg.File, cfg.MaxMB)
		if err != nil {
			return err
		}
		sinkMu.Lock()
		if file != nil {
			_ = file.Close()
		}
		file = w
		sinkMu.Unlock()
		out = io.MultiWriter(os.Stdout, w)
	}

	sinkMu.Lock()
	sink = out
	sinkMu.Unlock()

	var output io.Writer = out
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
	return nil
}

// Writer returns the raw sink so other loggers (httplog's slog handler) share it.
func Writer() io.Writer {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	return sink
}

func Close() error {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	sink = os.Stdout
	return err
}
