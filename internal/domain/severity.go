package domain

import (
	"fmt"
	"strings"
)

// Severity selects a shock magnitude from a catalog. The zero value means
// no shock of that kind is configured.
type Severity string

const (
	SeverityNone   Severity = ""
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ParseSeverity converts a user-supplied severity name into a Severity.
// Unknown names are rejected rather than silently treated as "no shock".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SeverityNone, nil
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	default:
		return SeverityNone, NewParameterError("severity", fmt.Sprintf("unknown severity %q (want low, medium, high or none)", s))
	}
}

// IsNone reports whether the severity denotes an absent shock.
func (s Severity) IsNone() bool {
	return s == SeverityNone
}

func (s Severity) String() string {
	if s == SeverityNone {
		return "none"
	}
	return string(s)
}
