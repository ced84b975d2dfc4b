// Package toast implements the single-slot notification channel shared by
// every view mounted under a provider.
package toast

import (
	"fmt"
	"time"
)

// DefaultDuration is how long a toast stays open without a newer show or an
// explicit dismissal.
const DefaultDuration = 6 * time.Second

// Severity controls how a toast is presented.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Severities lists every supported severity in display order.
func Severities() []Severity {
	return []Severity{SeveritySuccess, SeverityError, SeverityInfo, SeverityWarning}
}

// IsValid reports whether s is one of the known severities.
func (s Severity) IsValid() bool {
	switch s {
	case SeveritySuccess, SeverityError, SeverityInfo, SeverityWarning:
		return true
	}
	return false
}

// ParseSeverity converts a user supplied string into a Severity.
// An empty string yields SeverityInfo.
func ParseSeverity(s string) (Severity, error) {
	if s == "" {
		return SeverityInfo, nil
	}
	sev := Severity(s)
	if !sev.IsValid() {
		return "", fmt.Errorf("unknown severity %q, expected one of %v", s, Severities())
	}
	return sev, nil
}

// DismissReason describes what asked for a toast to close.
type DismissReason string

const (
	// ReasonClickAway is a click outside the toast. Dismissals with this
	// reason are ignored so a stray click cannot hide an unread message.
	ReasonClickAway   DismissReason = "clickaway"
	ReasonTimeout     DismissReason = "timeout"
	ReasonEscapeKey   DismissReason = "escapeKeyDown"
	ReasonCloseButton DismissReason = "closeButton"
)

// Packet is the current contents of a channel.
type Packet struct {
	Message  string
	Severity Severity
	Open     bool

	// Gen increases on every show. Scheduled expiries carry the generation
	// they were scheduled for and are dropped once a newer show exists.
	Gen uint64
}

func defaultPacket() Packet {
	return Packet{Severity: SeverityInfo}
}
