package sitelog

import "github.com/rs/zerolog"

// LevelLogger is an immutable, prefixed logger. Its options are fixed at
// construction; it holds no state that other loggers can observe or change.
type LevelLogger struct {
	opts Options
	info zerolog.Logger
	warn zerolog.Logger
	err  zerolog.Logger
	file *fileSink
}

func newLevelLogger(opts Options, set *sinkSet) *LevelLogger {
	zl := opts.MinLevel.zerolog()
	return &LevelLogger{
		opts: opts,
		info: set.info.Level(zl),
		warn: set.warn.Level(zl),
		err:  set.err.Level(zl),
		file: set.file,
	}
}

// Info writes message to the info sink when the minimum level is info.
func (l *LevelLogger) Info(message string) {
	l.log(InfoLevel, message, nil)
}

// Warn writes message to the warning sink when the minimum level is info or warning.
func (l *LevelLogger) Warn(message string) {
	l.log(WarningLevel, message, nil)
}

// Error always writes message, followed by cause when one is given.
func (l *LevelLogger) Error(message string, cause any) {
	l.log(ErrorLevel, message, cause)
}

// Enabled reports whether a call at level would be written.
func (l *LevelLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}
	return Emits(level, l.opts.MinLevel)
}

// Prefix returns the instance prefix, or "" when there is none.
func (l *LevelLogger) Prefix() string {
	if l == nil {
		return emptyString
	}
	return l.opts.Prefix
}

// MinLevel returns the threshold resolved when the logger was created.
func (l *LevelLogger) MinLevel() Level {
	if l == nil {
		return InfoLevel
	}
	return l.opts.MinLevel
}

func (l *LevelLogger) log(level Level, message string, cause any) {
	if !l.Enabled(level) {
		return
	}

	line := formatLine(l.opts.Prefix, message)

	var e *zerolog.Event
	switch level {
	case InfoLevel:
		e = l.info.Info()
	case WarningLevel:
		e = l.warn.Warn()
	case ErrorLevel:
		e = l.err.Error()
		line = appendCause(line, cause)
	}
	// zerolog returns a nil event for a disabled sink; Msg is nil-safe.
	e.Msg(line)

	l.file.write(level, l.opts.Prefix, message, cause)
}
