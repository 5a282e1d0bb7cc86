package model

import (
	"strings"
	"time"
)

// Severity of a weather alert.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityAdvisory
	SeverityWatch
	SeverityWarning
)

// ParseSeverity derives a Severity from the free-text string a provider
// returns. Unrecognized strings map to SeverityUnknown, never an error.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "advisory":
		return SeverityAdvisory
	case "watch":
		return SeverityWatch
	case "warning":
		return SeverityWarning
	}
	return SeverityUnknown
}

func (s Severity) String() string {
	switch s {
	case SeverityAdvisory:
		return "advisory"
	case SeverityWatch:
		return "watch"
	case SeverityWarning:
		return "warning"
	}
	return "unknown"
}

// Alert is a severe weather alert issued for a location.
type Alert struct {
	// Sender is the issuing authority, when known.
	Sender string `json:"sender_name,omitempty"`
	// Title is a short text summary of the alert.
	Title string `json:"title"`
	// Regions covered by the alert.
	Regions     []string `json:"regions,omitempty"`
	Description string   `json:"description,omitempty"`
	// URI links to the alert's details.
	URI string `json:"uri,omitempty"`

	// StartUnixTime is when the alert was issued (unix, UTC).
	StartUnixTime int32 `json:"time"`
	// ExpiresUnixTime is when the alert stops being valid (unix, UTC).
	ExpiresUnixTime int32 `json:"expires"`
	// SeverityRaw is the provider's severity string; see Severity.
	SeverityRaw string `json:"severity,omitempty"`
}

// Severity derived from the provider's free-text severity string.
func (a Alert) Severity() Severity {
	return ParseSeverity(a.SeverityRaw)
}

// StartTime is the derived instant of StartUnixTime.
func (a Alert) StartTime() time.Time {
	return TimeFromUnix(a.StartUnixTime)
}

// ExpiresTime is the derived instant of ExpiresUnixTime.
func (a Alert) ExpiresTime() time.Time {
	return TimeFromUnix(a.ExpiresUnixTime)
}
