package sitelog

import (
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// Level is a log severity. The ordering is error > warning > info.
type Level string

const (
	InfoLevel    Level = "info"
	WarningLevel Level = "warning"
	ErrorLevel   Level = "error"
)

// severities lists levels from most to least severe; a level's index is its rank.
var severities = [...]Level{ErrorLevel, WarningLevel, InfoLevel}

// Levels returns the recognised levels, most severe first.
func Levels() []Level {
	out := make([]Level, len(severities))
	copy(out, severities[:])
	return out
}

// ParseLevel parses a level name. Surrounding whitespace and case are ignored.
func ParseLevel(s string) (Level, error) {
	const op errors.Op = "sitelog.ParseLevel"
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return emptyString, errors.New(op).Msg(errMsgUnknownLevel + " " + s)
	}
	return l, nil
}

func (l Level) String() string { return string(l) }

// Valid reports whether l is one of the three recognised levels.
func (l Level) Valid() bool {
	return l.index() >= 0
}

func (l Level) index() int {
	for i, s := range severities {
		if s == l {
			return i
		}
	}
	return -1
}

// Emits reports whether a call at level is written by a logger whose
// minimum is threshold. An unrecognised threshold behaves as info; an
// unrecognised level is never written.
func Emits(level, threshold Level) bool {
	li := level.index()
	if li < 0 {
		return false
	}
	ti := threshold.index()
	if ti < 0 {
		ti = InfoLevel.index()
	}
	return li <= ti
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case ErrorLevel:
		return zerolog.ErrorLevel
	case WarningLevel:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
