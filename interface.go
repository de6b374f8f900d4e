package sitelog

// Logger is the contract any site module can depend on to report diagnostics.
// Error always writes; Info and Warn are subject to the minimum level.
type Logger interface {
	Info(message string)
	Warn(message string)
	// Error logs message followed by cause, if any. A nil cause is the same
	// as no cause.
	Error(message string, cause any)
}

var _ Logger = (*LevelLogger)(nil)
