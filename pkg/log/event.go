package log

import (
	"time"
)

// Event represents a pairing log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the controller session (UUID).
	// Empty for events emitted before a session exists, e.g. during
	// device matching.
	SessionID string `cbor:"2,keyasint,omitempty"`

	// Direction indicates report flow relative to the host.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// DeviceID is the USB vendor/product pair as rendered by
	// registry.DeviceID.String(), once known.
	DeviceID string `cbor:"6,keyasint,omitempty"`

	// DeviceName is the registry display name, if the device is known.
	DeviceName string `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Candidate   *CandidateEvent   `cbor:"8,keyasint,omitempty"`  // Matching
	Report      *ReportEvent      `cbor:"9,keyasint,omitempty"`  // Feature report I/O
	StateChange *StateChangeEvent `cbor:"10,keyasint,omitempty"` // Session lifecycle
	Error       *ErrorEventData   `cbor:"11,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of report flow.
type Direction uint8

const (
	// DirectionIn indicates data read from the device.
	DirectionIn Direction = 0
	// DirectionOut indicates data sent to the device.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which layer captured the event.
type Layer uint8

const (
	// LayerTransport is the raw HID feature-report layer.
	LayerTransport Layer = 0
	// LayerReport is the decoded report layer.
	LayerReport Layer = 1
	// LayerSession is the matching/session layer.
	LayerSession Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerReport:
		return "REPORT"
	case LayerSession:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCandidate indicates a device considered during matching.
	CategoryCandidate Category = 0
	// CategoryReport indicates a feature-report exchange.
	CategoryReport Category = 1
	// CategoryState indicates a session state change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCandidate:
		return "CANDIDATE"
	case CategoryReport:
		return "REPORT"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// CandidateEvent captures one device considered during matching.
// Purely observational; the matcher's decision does not depend on it.
type CandidateEvent struct {
	// Matched indicates whether this candidate was selected.
	Matched bool `cbor:"1,keyasint"`

	// Known indicates whether the device appears in the registry.
	Known bool `cbor:"2,keyasint,omitempty"`

	// Path is the transport-level device path, if available.
	Path string `cbor:"3,keyasint,omitempty"`
}

// ReportEvent captures a feature-report exchange.
type ReportEvent struct {
	// ReportID is the HID report ID byte.
	ReportID byte `cbor:"1,keyasint"`

	// Size is the report buffer size in bytes (including the ID byte).
	Size int `cbor:"2,keyasint"`
}

// StateChangeEvent captures session lifecycle transitions.
type StateChangeEvent struct {
	// OldState is the previous state (may be empty).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures error details.
type ErrorEventData struct {
	// Message is the error text.
	Message string `cbor:"1,keyasint"`

	// Operation names the operation that failed (e.g. "open",
	// "get_paired_mac", "set_paired_mac").
	Operation string `cbor:"2,keyasint,omitempty"`
}
