package report

import (
	"errors"
	"fmt"
	"strings"
)

// Protocol identifies the feature-report layout a controller speaks.
// It is a closed enumeration; the codec switches exhaustively over it,
// so adding a protocol is a localized, compile-checked change.
type Protocol uint8

const (
	// SixAxis is the layout used by the PS3 Sixaxis and Move Motion
	// controllers.
	SixAxis Protocol = 0

	// DualShock4 is the layout used by the PS4 DualShock 4 controller.
	// MAC bytes cross the wire in reversed (little-endian) order.
	DualShock4 Protocol = 1
)

// ErrUnknownProtocol indicates a Protocol value outside the known set.
var ErrUnknownProtocol = errors.New("unknown protocol")

// String returns the protocol name.
func (p Protocol) String() string {
	switch p {
	case SixAxis:
		return "SIXAXIS"
	case DualShock4:
		return "DUALSHOCK4"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the protocol is a known variant.
func (p Protocol) IsValid() bool {
	return p == SixAxis || p == DualShock4
}

// ParseProtocol parses a protocol name as used by CLI flags and config
// files. Matching is case-insensitive.
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(s) {
	case "sixaxis":
		return SixAxis, nil
	case "dualshock4", "ds4":
		return DualShock4, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownProtocol, s)
	}
}
