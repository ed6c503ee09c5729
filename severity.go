package levlog

import (
	"strings"

	"github.com/pkg/errors"
)

// Severity is the rank of a log message. Higher ranks are more severe.
type Severity int

// Severity ranks. The ordering is by rank value, so InfoLevel sits below DebugLevel.
const (
	InfoLevel Severity = iota + 1
	DebugLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// Severities lists every severity in rank order. Operations applied to all
// levels iterate this list.
var Severities = []Severity{InfoLevel, DebugLevel, WarnLevel, ErrorLevel, FatalLevel}

var severityName = []string{
	"",
	"INFO",
	"DEBUG",
	"WARN",
	"ERROR",
	"FATAL",
}

// String returns the display name, e.g. "WARN".
func (s Severity) String() string {
	if !s.valid() {
		return "UNKNOWN"
	}
	return severityName[s]
}

func (s Severity) valid() bool {
	return s >= InfoLevel && s <= FatalLevel
}

// ParseSeverity returns the severity with display name n.
// Matching ignores case and surrounding whitespace.
func ParseSeverity(n string) (Severity, error) {
	n = strings.ToUpper(strings.TrimSpace(n))
	for _, s := range Severities {
		if severityName[s] == n {
			return s, nil
		}
	}
	return 0, errors.Errorf("unrecognised severity %q", n)
}
