package transport

import (
	"github.com/sixpair/sixpair-go/pkg/registry"
)

// DeviceInfo describes one enumerated HID device.
type DeviceInfo struct {
	// Path is the transport-specific device path used to open the device.
	Path string

	// ID is the USB vendor/product pair.
	ID registry.DeviceID

	// Manufacturer, Product, and Serial are the USB string descriptors as
	// reported during enumeration. They may be empty.
	Manufacturer string
	Product      string
	Serial       string
}

// Transport enumerates and opens HID devices.
// Implemented by HIDAPI.
type Transport interface {
	// Enumerate returns all HID devices currently visible to the host.
	Enumerate() ([]DeviceInfo, error)

	// Open opens the device described by info for feature-report I/O.
	// The caller owns the returned Device and must close it.
	Open(info DeviceInfo) (Device, error)
}

// Device is an open HID device handle. All calls block until the device
// responds or errors; the handle is exclusively owned by one caller.
// Implemented by hidapiDevice.
type Device interface {
	// GetFeatureReport performs a feature-report get. buf[0] must hold
	// the report ID on entry; the device fills the remainder in place.
	// Returns the number of bytes read, including the report ID byte.
	GetFeatureReport(buf []byte) (int, error)

	// SendFeatureReport performs a feature-report set. buf[0] must hold
	// the report ID.
	SendFeatureReport(buf []byte) error

	// ManufacturerString returns the manufacturer string descriptor.
	ManufacturerString() (string, error)

	// ProductString returns the product string descriptor.
	ProductString() (string, error)

	// SerialString returns the serial number string descriptor.
	SerialString() (string, error)

	// Close releases the device handle. Only the first call has effect.
	Close() error
}
