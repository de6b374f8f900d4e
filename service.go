package sitelog

import (
	"io"
	"os"
	"sync"

	"github.com/Station-Manager/errors"
	"go.uber.org/atomic"
)

// Service owns the sinks shared by the loggers it creates. Stdout and Stderr
// default to the process streams; LookupEnv defaults to os.LookupEnv.
type Service struct {
	WorkingDir string
	Settings   *Settings
	Stdout     io.Writer
	Stderr     io.Writer
	LookupEnv  func(string) (string, bool)

	sinks       atomic.Pointer[sinkSet]
	initialized atomic.Bool
	mu          sync.Mutex
}

var (
	defaultOnce    sync.Once
	defaultService *Service
)

// Default returns the process-wide console service backing New.
func Default() *Service {
	defaultOnce.Do(func() {
		svc := &Service{}
		// Default settings always validate; a failure leaves the service
		// uninitialised and its loggers discard output.
		_ = svc.Initialize()
		defaultService = svc
	})
	return defaultService
}

// New creates a logger using the default console service.
func New(opts Options) *LevelLogger {
	return Default().New(opts)
}

// Initialize validates the settings and builds the sinks. Calling it on an
// initialised service is a no-op.
func (s *Service) Initialize() error {
	const op errors.Op = "sitelog.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized.Load() {
		return nil
	}

	if s.Settings == nil {
		s.Settings = DefaultSettings()
	}
	if err := validateConfig(s.Settings); err != nil {
		return err
	}
	if !s.Settings.ConsoleLogging && !s.Settings.FileLogging {
		return errors.New(op).Msg(errMsgNoChannels)
	}

	stdout, stderr := s.Stdout, s.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	set := &sinkSet{defaultLevel: s.Settings.MinLevel}
	s.initializeConsoleSinks(set, stdout, stderr)

	if s.Settings.FileLogging {
		fs, err := s.initializeRollingFileSink()
		if err != nil {
			return err
		}
		set.file = fs
	}

	s.sinks.Store(set)
	s.initialized.Store(true)
	return nil
}

// New creates a logger bound to this service's sinks. The minimum level is
// resolved here, once: explicit, then LOG_LEVEL, then settings, then info.
// A nil or never-initialised service yields a logger that discards
// everything; a closed one keeps its console sinks.
func (s *Service) New(opts Options) *LevelLogger {
	var set *sinkSet
	if s != nil {
		set = s.sinks.Load()
	}
	if set == nil {
		return newLevelLogger(Options{
			Prefix:   opts.Prefix,
			MinLevel: resolveMinLevel(opts.MinLevel, nil, emptyString),
		}, discardSinks())
	}

	lookup := s.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return newLevelLogger(Options{
		Prefix:   opts.Prefix,
		MinLevel: resolveMinLevel(opts.MinLevel, lookup, set.defaultLevel),
	}, set)
}

// Close releases the rolling file, if any. Loggers created before or after
// Close keep writing to the console sinks; Initialize rebuilds the file
// sink. It's safe to call Close multiple times.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized.Load() {
		return nil
	}
	s.initialized.Store(false)

	set := s.sinks.Load()
	if set == nil {
		return nil
	}
	s.sinks.Store(set.withoutFile())
	return set.file.close()
}
