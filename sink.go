package sitelog

import (
	"io"
	"reflect"

	"github.com/rs/zerolog"
)

// sinkSet is shared by every LevelLogger created from the same Service.
// It is never mutated; Close swaps in a copy without the file sink.
type sinkSet struct {
	info zerolog.Logger
	warn zerolog.Logger
	err  zerolog.Logger
	file *fileSink

	// defaultLevel is the settings-supplied threshold, used when neither an
	// explicit level nor LOG_LEVEL is present.
	defaultLevel Level
}

// withoutFile returns a copy that keeps the console sinks only.
func (set *sinkSet) withoutFile() *sinkSet {
	c := *set
	c.file = nil
	return &c
}

func discardSinks() *sinkSet {
	nop := zerolog.Nop()
	return &sinkSet{info: nop, warn: nop, err: nop}
}

// lineHook writes the raw message of each enabled event, plus a newline, to
// out and then discards the event, so no JSON encoding touches the line.
type lineHook struct {
	out io.Writer
}

func (h lineHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	buf := make([]byte, 0, len(msg)+1)
	buf = append(buf, msg...)
	buf = append(buf, '\n')
	_, _ = h.out.Write(buf)
	e.Discard()
}

// nopWriter backs console loggers; their output is produced by lineHook.
type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

// newConsoleLogger returns a zerolog logger whose level gate decides whether
// a line is written and whose hook writes it verbatim.
func newConsoleLogger(out io.Writer, sync bool) zerolog.Logger {
	if out == nil {
		return zerolog.Nop()
	}
	if sync {
		out = zerolog.SyncWriter(out)
	}
	return zerolog.New(nopWriter{}).Hook(lineHook{out: out})
}

func (s *Service) initializeConsoleSinks(set *sinkSet, stdout, stderr io.Writer) {
	if !s.Settings.ConsoleLogging {
		nop := zerolog.Nop()
		set.info, set.warn, set.err = nop, nop, nop
		return
	}
	// One logger per distinct writer, so a synced writer has a single lock.
	set.info = newConsoleLogger(stdout, s.Settings.SyncWriters)
	if sameWriter(stdout, stderr) {
		set.warn, set.err = set.info, set.info
		return
	}
	set.warn = newConsoleLogger(stderr, s.Settings.SyncWriters)
	set.err = set.warn
}

func sameWriter(a, b io.Writer) bool {
	ta := reflect.TypeOf(a)
	return ta != nil && ta == reflect.TypeOf(b) && ta.Comparable() && a == b
}
