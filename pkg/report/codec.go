// Package report encodes and decodes the vendor-specific HID feature
// reports that carry the paired-host MAC address of Sony motion-game
// controllers. Two incompatible layouts exist (see Protocol); the
// report IDs, lengths, offsets, and byte orders here are part of the
// device contract and must not change.
package report

import (
	"errors"
	"fmt"

	"github.com/sixpair/sixpair-go/pkg/mac"
)

// Decoding errors.
var (
	ErrUnexpectedLength = errors.New("unexpected feature report length")
	ErrUnexpectedHeader = errors.New("unexpected feature report header")
)

// SixAxis layout. Get and set share report ID, length, and MAC offset;
// the MAC travels in network order.
const (
	sixAxisReportID  = 0xF5
	sixAxisReportLen = 8
	sixAxisMACOffset = 2
)

// DualShock4 layout. Get and set use distinct report IDs and lengths;
// the MAC travels in reversed (little-endian) order. The set report
// trails 16 bytes described as an optional link key, observed to work
// zero-filled.
const (
	ds4GetReportID  = 0x12
	ds4GetReportLen = 16
	ds4GetMACOffset = 10
	ds4SetReportID  = 0x13
	ds4SetReportLen = 23
	ds4SetMACOffset = 1
)

// GetReportID returns the feature report ID used to query the paired MAC.
func GetReportID(p Protocol) (byte, error) {
	switch p {
	case SixAxis:
		return sixAxisReportID, nil
	case DualShock4:
		return ds4GetReportID, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownProtocol, p)
	}
}

// NewGetRequest allocates the zero-filled buffer handed to the transport
// for a feature-report get: the protocol's get-length with the report ID
// at offset 0. The transport fills the remainder in place.
func NewGetRequest(p Protocol) ([]byte, error) {
	switch p {
	case SixAxis:
		buf := make([]byte, sixAxisReportLen)
		buf[0] = sixAxisReportID
		return buf, nil
	case DualShock4:
		buf := make([]byte, ds4GetReportLen)
		buf[0] = ds4GetReportID
		return buf, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownProtocol, p)
	}
}

// Decode extracts the paired MAC address from a get-report reply.
// The buffer must be exactly the protocol's get-length. For SixAxis the
// reply must begin with {0xF5, 0x00}; DualShock4 replies carry the MAC
// reversed and are restored to network order.
func Decode(p Protocol, buf []byte) (mac.Address, error) {
	switch p {
	case SixAxis:
		if len(buf) != sixAxisReportLen {
			return mac.Address{}, fmt.Errorf("%w: expected %d bytes, got %d",
				ErrUnexpectedLength, sixAxisReportLen, len(buf))
		}
		if buf[0] != sixAxisReportID || buf[1] != 0 {
			return mac.Address{}, fmt.Errorf("%w: got {%#02x, %#02x}, want {%#02x, 0x00}",
				ErrUnexpectedHeader, buf[0], buf[1], byte(sixAxisReportID))
		}
		var b [mac.AddressLength]byte
		copy(b[:], buf[sixAxisMACOffset:sixAxisMACOffset+mac.AddressLength])
		return mac.FromBytes(b), nil

	case DualShock4:
		if len(buf) != ds4GetReportLen {
			return mac.Address{}, fmt.Errorf("%w: expected %d bytes, got %d",
				ErrUnexpectedLength, ds4GetReportLen, len(buf))
		}
		var b [mac.AddressLength]byte
		copy(b[:], buf[ds4GetMACOffset:ds4GetMACOffset+mac.AddressLength])
		// Wire order is LSB-first; restore network order.
		return mac.FromBytes(mac.FromBytes(b).Reversed()), nil

	default:
		return mac.Address{}, fmt.Errorf("%w: %d", ErrUnknownProtocol, p)
	}
}

// Encode builds the set-report buffer that pairs the controller to the
// given host address. The result is ready to hand to the transport as a
// feature report; no I/O is performed here.
func Encode(p Protocol, a mac.Address) ([]byte, error) {
	switch p {
	case SixAxis:
		buf := make([]byte, sixAxisReportLen)
		buf[0] = sixAxisReportID
		buf[1] = 0 // reserved
		b := a.Bytes()
		copy(buf[sixAxisMACOffset:], b[:])
		return buf, nil

	case DualShock4:
		buf := make([]byte, ds4SetReportLen)
		buf[0] = ds4SetReportID
		b := a.Reversed()
		copy(buf[ds4SetMACOffset:], b[:])
		// Bytes 7..23 are an optional link key region; left zero-filled.
		return buf, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownProtocol, p)
	}
}
