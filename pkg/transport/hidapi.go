package transport

import (
	"fmt"

	hid "github.com/sstallion/go-hid"

	"github.com/sixpair/sixpair-go/pkg/registry"
)

// HIDAPI is the production Transport backed by the hidapi library.
// Construct with NewHIDAPI and release with Close once no sessions
// remain open.
type HIDAPI struct{}

// NewHIDAPI initializes the hidapi library and returns a Transport over it.
func NewHIDAPI() (*HIDAPI, error) {
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize hidapi: %w", err)
	}
	return &HIDAPI{}, nil
}

// Enumerate returns all HID devices currently visible to the host.
func (h *HIDAPI) Enumerate() ([]DeviceInfo, error) {
	var devices []DeviceInfo
	err := hid.Enumerate(hid.VendorIDAny, hid.ProductIDAny, func(info *hid.DeviceInfo) error {
		devices = append(devices, DeviceInfo{
			Path: info.Path,
			ID: registry.DeviceID{
				Vendor:  info.VendorID,
				Product: info.ProductID,
			},
			Manufacturer: info.MfrStr,
			Product:      info.ProductStr,
			Serial:       info.SerialNbr,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("hid enumeration failed: %w", err)
	}
	return devices, nil
}

// Open opens the device at info.Path.
func (h *HIDAPI) Open(info DeviceInfo) (Device, error) {
	dev, err := hid.OpenPath(info.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s (%s): %w", info.Path, info.ID, err)
	}
	return &hidapiDevice{dev: dev}, nil
}

// Close finalizes the hidapi library.
func (h *HIDAPI) Close() error {
	return hid.Exit()
}

// hidapiDevice adapts *hid.Device to the Device interface.
type hidapiDevice struct {
	dev *hid.Device
}

func (d *hidapiDevice) GetFeatureReport(buf []byte) (int, error) {
	return d.dev.GetFeatureReport(buf)
}

func (d *hidapiDevice) SendFeatureReport(buf []byte) error {
	_, err := d.dev.SendFeatureReport(buf)
	return err
}

func (d *hidapiDevice) ManufacturerString() (string, error) {
	return d.dev.GetMfrStr()
}

func (d *hidapiDevice) ProductString() (string, error) {
	return d.dev.GetProductStr()
}

func (d *hidapiDevice) SerialString() (string, error) {
	return d.dev.GetSerialNbr()
}

func (d *hidapiDevice) Close() error {
	return d.dev.Close()
}

// Compile-time interface satisfaction checks.
var (
	_ Transport = (*HIDAPI)(nil)
	_ Device    = (*hidapiDevice)(nil)
)
