package types

import "fmt"

// Severity classifies a beacon event. Severities form a strict total order:
// trace < debug < info < warn < error.
type Severity int

const (
	SeverityTrace Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityWarn
	SeverityError
)

var severityNames = [...]string{
	SeverityTrace: "trace",
	SeverityDebug: "debug",
	SeverityInfo:  "info",
	SeverityWarn:  "warn",
	SeverityError: "error",
}

// String returns the wire tag of the severity ("trace" ... "error").
func (s Severity) String() string {
	if !s.Valid() {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// Valid reports whether s is one of the five named severities.
func (s Severity) Valid() bool {
	return s >= SeverityTrace && s <= SeverityError
}

// Enabled reports whether an event of severity s passes the given threshold.
func (s Severity) Enabled(threshold Severity) bool {
	return s >= threshold
}

// ParseSeverity converts a severity name to a Severity.
func ParseSeverity(name string) (Severity, error) {
	for s, n := range severityNames {
		if n == name {
			return Severity(s), nil
		}
	}
	return SeverityInfo, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
}
