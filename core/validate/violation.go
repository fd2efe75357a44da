package validate

import "fmt"

// Kind classifies a constraint violation.
type Kind int

const (
	UnknownRequest Kind = iota
	ResourceNotAllowed
	SetupTeardownMismatch
	OutsideViewPeriod
	BelowMinimumDuration
	AboveMaximumDuration
	SplittingNotAllowed
	ResourceOverlap
	MaintenanceConflict
)

// String returns the canonical violation name used in reports and metrics.
func (k Kind) String() string {
	switch k {
	case UnknownRequest:
		return "UnknownRequest"
	case ResourceNotAllowed:
		return "ResourceNotAllowed"
	case SetupTeardownMismatch:
		return "SetupTeardownMismatch"
	case OutsideViewPeriod:
		return "OutsideViewPeriod"
	case BelowMinimumDuration:
		return "BelowMinimumDuration"
	case AboveMaximumDuration:
		return "AboveMaximumDuration"
	case SplittingNotAllowed:
		return "SplittingNotAllowed"
	case ResourceOverlap:
		return "ResourceOverlap"
	case MaintenanceConflict:
		return "MaintenanceConflict"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so violation kinds render as
// names in JSON reports.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Violation is one constraint failure with enough attribution to be
// independently actionable. TrackIndex is the position of the offending
// track in the solution document, or -1 for request-level aggregate checks.
type Violation struct {
	Kind       Kind   `json:"kind"`
	TrackID    string `json:"track_id"`
	TrackIndex int    `json:"track_index"`
	Resource   string `json:"resource,omitempty"`
	Detail     string `json:"detail"`
}

func (v Violation) String() string {
	if v.TrackIndex < 0 {
		return fmt.Sprintf("%s request %s: %s", v.Kind, v.TrackID, v.Detail)
	}
	return fmt.Sprintf("%s track[%d] %s: %s", v.Kind, v.TrackIndex, v.TrackID, v.Detail)
}
