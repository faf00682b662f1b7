// Package registry holds the static table of Sony controllers whose
// pairing protocol is known, keyed by USB vendor/product ID.
package registry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sixpair/sixpair-go/pkg/report"
)

// ErrInvalidDeviceID indicates a device ID string that is not "vid:pid".
var ErrInvalidDeviceID = errors.New("invalid device ID")

// SonyVendorID is the USB vendor ID shared by all known devices.
const SonyVendorID uint16 = 0x054C

// DeviceID identifies a USB device model by vendor and product ID.
type DeviceID struct {
	Vendor  uint16
	Product uint16
}

// String renders the ID as "VID=054C PID=0268".
func (id DeviceID) String() string {
	return fmt.Sprintf("VID=%04X PID=%04X", id.Vendor, id.Product)
}

// ParseDeviceID parses "vid:pid" with 16-bit hex components, e.g.
// "054c:0268".
func ParseDeviceID(s string) (DeviceID, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return DeviceID{}, fmt.Errorf("%w: %q, expected vid:pid", ErrInvalidDeviceID, s)
	}
	vendor, err := strconv.ParseUint(parts[0], 16, 16)
	if err != nil {
		return DeviceID{}, fmt.Errorf("%w: bad vendor ID %q", ErrInvalidDeviceID, parts[0])
	}
	product, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return DeviceID{}, fmt.Errorf("%w: bad product ID %q", ErrInvalidDeviceID, parts[1])
	}
	return DeviceID{Vendor: uint16(vendor), Product: uint16(product)}, nil
}

// KnownDevice describes a supported controller model.
type KnownDevice struct {
	// Name is the display name, used for logging only.
	Name string

	// ID is the USB vendor/product pair.
	ID DeviceID

	// Protocol is the feature-report layout the model speaks.
	Protocol report.Protocol
}

// knownDevices is process-wide read-only data; Lookup and KnownDevices
// never expose it for mutation.
var knownDevices = [...]KnownDevice{
	{
		Name:     "Sony PlayStation 3 Controller",
		ID:       DeviceID{Vendor: SonyVendorID, Product: 0x0268},
		Protocol: report.SixAxis,
	},
	{
		Name:     "Sony Move Motion Controller",
		ID:       DeviceID{Vendor: SonyVendorID, Product: 0x042F},
		Protocol: report.SixAxis,
	},
	{
		Name:     "Sony DualShock 4 Controller",
		ID:       DeviceID{Vendor: SonyVendorID, Product: 0x05C4},
		Protocol: report.DualShock4,
	},
}

// KnownDevices returns a copy of the supported-device table.
func KnownDevices() []KnownDevice {
	devices := make([]KnownDevice, len(knownDevices))
	copy(devices, knownDevices[:])
	return devices
}

// Lookup returns the record for an exact vendor/product match.
func Lookup(id DeviceID) (KnownDevice, bool) {
	for _, d := range knownDevices {
		if d.ID == id {
			return d, true
		}
	}
	return KnownDevice{}, false
}
