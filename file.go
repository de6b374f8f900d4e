package sitelog

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// fileSink writes one JSON record per emitted call to a rolling file.
type fileSink struct {
	writer *lumberjack.Logger
	logger zerolog.Logger
	mu     sync.RWMutex
	closed atomic.Bool
}

func (s *Service) initializeRollingFileSink() (*fileSink, error) {
	const op errors.Op = "sitelog.Service.initializeRollingFileSink"

	dir := filepath.Join(s.WorkingDir, s.Settings.LogFileDir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgLogDir)
	}

	name := s.Settings.FileName
	if name == emptyString {
		name = defaultFileName
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    s.Settings.LogFileMaxSizeMB,
		MaxBackups: s.Settings.LogFileMaxBackups,
		MaxAge:     s.Settings.LogFileMaxAgeDays,
		Compress:   s.Settings.LogFileCompress,
	}

	logger := zerolog.New(w)
	if s.Settings.WithTimestamp {
		logger = logger.With().Timestamp().Logger()
	}

	return &fileSink{writer: w, logger: logger}, nil
}

// write records an already-filtered call. It is a no-op on a nil or closed sink.
func (f *fileSink) write(level Level, prefix, message string, cause any) {
	if f == nil || f.closed.Load() {
		return
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	// Close may have won the race for the lock.
	if f.closed.Load() {
		return
	}

	e := f.logger.Log().Str(zerolog.LevelFieldName, level.String())
	if prefix != emptyString {
		e.Str("prefix", prefix)
	}
	appendCauseFields(e, cause)
	e.Msg(message)
}

func (f *fileSink) close() error {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed.Swap(true) {
		return nil
	}
	return f.writer.Close()
}
