// Package mac provides the 6-byte Bluetooth MAC address value type used
// throughout the pairing protocol.
package mac

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parsing errors.
var (
	ErrMalformedAddress = errors.New("malformed MAC address")
	ErrInvalidByte      = errors.New("invalid byte in MAC address")
)

// AddressLength is the number of bytes in a MAC address.
const AddressLength = 6

// Address is a 6-byte hardware address in network (most-significant-first)
// order. The zero value is the all-zero address. Addresses are immutable;
// equality is byte-wise via ==.
type Address struct {
	b [AddressLength]byte
}

// FromBytes creates an Address from a byte array in network order.
func FromBytes(b [AddressLength]byte) Address {
	return Address{b: b}
}

// Parse parses a MAC address string of the form "XX:XX:XX:XX:XX:XX".
// Hex digits may be upper or lower case. It returns ErrMalformedAddress
// if the segment count is not 6, and ErrInvalidByte if a segment is not
// a valid hex byte.
func Parse(s string) (Address, error) {
	segments := strings.Split(s, ":")
	if len(segments) != AddressLength {
		return Address{}, fmt.Errorf("%w: expected %d colon-separated segments, got %d",
			ErrMalformedAddress, AddressLength, len(segments))
	}

	var a Address
	for i, segment := range segments {
		v, err := strconv.ParseUint(segment, 16, 8)
		if err != nil || len(segment) != 2 {
			return Address{}, fmt.Errorf("%w: segment #%d (%q) is not a 2-digit hex byte",
				ErrInvalidByte, i+1, segment)
		}
		a.b[i] = byte(v)
	}
	return a, nil
}

// String returns the address as six uppercase hex pairs joined by colons.
// It round-trips with Parse.
func (a Address) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		a.b[0], a.b[1], a.b[2], a.b[3], a.b[4], a.b[5])
}

// Bytes returns the address bytes in network order.
func (a Address) Bytes() [AddressLength]byte {
	return a.b
}

// Reversed returns the address bytes in reversed (least-significant-first)
// order, the wire order used by the DualShock4 feature reports.
func (a Address) Reversed() [AddressLength]byte {
	var r [AddressLength]byte
	for i, b := range a.b {
		r[AddressLength-1-i] = b
	}
	return r
}
