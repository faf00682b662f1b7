// Package hidtest provides fake transport and device implementations for
// exercising the matcher and session logic without hardware.
package hidtest

import (
	"errors"
	"sync"

	"github.com/sixpair/sixpair-go/pkg/transport"
)

// ErrNoHandler indicates the fake device has no scripted reply for the
// requested report ID.
var ErrNoHandler = errors.New("hidtest: no scripted reply for report ID")

// Transport is a fake transport.Transport with a scripted device list.
type Transport struct {
	// Devices is returned by Enumerate in order.
	Devices []transport.DeviceInfo

	// EnumerateErr, if set, is returned by Enumerate.
	EnumerateErr error

	// OpenErr, if set, is returned by Open.
	OpenErr error

	// OpenFunc, if set, supplies the Device returned by Open. When nil,
	// Open returns a zero-configured *Device.
	OpenFunc func(info transport.DeviceInfo) *Device

	// Opened records every DeviceInfo passed to Open.
	Opened []transport.DeviceInfo
}

// Enumerate returns the scripted device list.
func (t *Transport) Enumerate() ([]transport.DeviceInfo, error) {
	if t.EnumerateErr != nil {
		return nil, t.EnumerateErr
	}
	return t.Devices, nil
}

// Open records the request and returns a fake device.
func (t *Transport) Open(info transport.DeviceInfo) (transport.Device, error) {
	t.Opened = append(t.Opened, info)
	if t.OpenErr != nil {
		return nil, t.OpenErr
	}
	if t.OpenFunc != nil {
		return t.OpenFunc(info), nil
	}
	return &Device{}, nil
}

// Device is a fake transport.Device with scripted feature-report replies.
type Device struct {
	mu sync.Mutex

	// Replies maps a report ID to the full get-report reply copied into
	// the caller's buffer (up to its length).
	Replies map[byte][]byte

	// GetErr, if set, is returned by GetFeatureReport.
	GetErr error

	// SendErr, if set, is returned by SendFeatureReport.
	SendErr error

	// Sent records every buffer passed to SendFeatureReport.
	Sent [][]byte

	// Manufacturer, Product, and Serial are returned by the string
	// descriptor methods. The matching *Err overrides the value.
	Manufacturer    string
	Product         string
	Serial          string
	ManufacturerErr error
	ProductErr      error
	SerialErr       error

	// Closed counts Close calls.
	Closed int
}

// GetFeatureReport copies the scripted reply for buf[0] into buf.
func (d *Device) GetFeatureReport(buf []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.GetErr != nil {
		return 0, d.GetErr
	}
	reply, ok := d.Replies[buf[0]]
	if !ok {
		return 0, ErrNoHandler
	}
	n := copy(buf, reply)
	return n, nil
}

// SendFeatureReport records a copy of buf.
func (d *Device) SendFeatureReport(buf []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.SendErr != nil {
		return d.SendErr
	}
	sent := make([]byte, len(buf))
	copy(sent, buf)
	d.Sent = append(d.Sent, sent)
	return nil
}

// ManufacturerString returns the scripted manufacturer string.
func (d *Device) ManufacturerString() (string, error) {
	if d.ManufacturerErr != nil {
		return "", d.ManufacturerErr
	}
	return d.Manufacturer, nil
}

// ProductString returns the scripted product string.
func (d *Device) ProductString() (string, error) {
	if d.ProductErr != nil {
		return "", d.ProductErr
	}
	return d.Product, nil
}

// SerialString returns the scripted serial string.
func (d *Device) SerialString() (string, error) {
	if d.SerialErr != nil {
		return "", d.SerialErr
	}
	return d.Serial, nil
}

// Close increments the close counter.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Closed++
	return nil
}

// Compile-time interface satisfaction checks.
var (
	_ transport.Transport = (*Transport)(nil)
	_ transport.Device    = (*Device)(nil)
)
