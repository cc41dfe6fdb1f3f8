package snapshot

import (
	"fmt"
	"strings"
)

// maxReportedAttempts bounds how many per-candidate errors an aggregated
// failure carries.
const maxReportedAttempts = 5

// DataUnavailableError means the primary data file and every fallback
// candidate was unreadable, unstable, or unparsable. It aggregates the most
// recent per-candidate errors for diagnosis.
type DataUnavailableError struct {
	Path     string
	Attempts []string
}

func (e *DataUnavailableError) Error() string {
	attempts := e.Attempts
	if len(attempts) > maxReportedAttempts {
		attempts = attempts[len(attempts)-maxReportedAttempts:]
	}
	msg := fmt.Sprintf("ranking data unavailable: %s", e.Path)
	if len(attempts) > 0 {
		msg += "\n" + strings.Join(attempts, "\n")
	}
	return msg
}

// MalformedSnapshotError means a candidate parsed as JSON but does not have
// the required ranking shape. Detail names the offending field or index.
type MalformedSnapshotError struct {
	Detail string
}

func (e *MalformedSnapshotError) Error() string {
	return "malformed ranking snapshot: " + e.Detail
}
