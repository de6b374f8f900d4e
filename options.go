package sitelog

import (
	"fmt"
	"strings"
)

// Options configures a single logger. The zero value means "nothing supplied":
// no prefix and the minimum level taken from the environment or settings.
type Options struct {
	Prefix   string
	MinLevel Level
}

// resolveMinLevel picks the threshold for a new logger. The environment is
// consulted once, and only when no valid explicit level was given.
func resolveMinLevel(explicit Level, lookupEnv func(string) (string, bool), fallback Level) Level {
	if explicit.Valid() {
		return explicit
	}
	if lookupEnv != nil {
		if v, ok := lookupEnv(EnvLogLevel); ok && Level(v).Valid() {
			return Level(v)
		}
	}
	if fallback.Valid() {
		return fallback
	}
	return InfoLevel
}

func formatLine(prefix, message string) string {
	if prefix == emptyString {
		return message
	}
	var b strings.Builder
	b.Grow(len(prefix) + len(message) + 3)
	b.WriteByte('[')
	b.WriteString(prefix)
	b.WriteString("] ")
	b.WriteString(message)
	return b.String()
}

// formatCause renders a cause for the console line. fmt recovers from
// panicking Error/String methods and prints nil receivers as <nil>.
func formatCause(cause any) string {
	switch c := cause.(type) {
	case nil:
		return emptyString
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}

func appendCause(line string, cause any) string {
	if s := formatCause(cause); s != emptyString {
		return line + " " + s
	}
	return line
}
