package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sixpair/sixpair-go/pkg/log"
	"github.com/sixpair/sixpair-go/pkg/mac"
	"github.com/sixpair/sixpair-go/pkg/report"
	"github.com/sixpair/sixpair-go/pkg/transport"
)

// Session errors.
var (
	// ErrOpenFailed wraps a transport failure while opening the matched
	// device.
	ErrOpenFailed = errors.New("failed to open device")

	// ErrTransportIO wraps a transport failure during a feature-report
	// exchange.
	ErrTransportIO = errors.New("transport I/O failed")

	// ErrSessionClosed indicates an operation on a closed session.
	ErrSessionClosed = errors.New("session is closed")

	// ErrVerifyMismatch indicates a read-after-write verification that
	// did not return the address just written.
	ErrVerifyMismatch = errors.New("paired MAC verification mismatch")
)

// Session owns one open device handle and its resolved protocol.
// A Session is never constructed without a resolved protocol. It is not
// safe for concurrent use; all I/O blocks the calling goroutine.
type Session struct {
	id       string
	device   transport.Device
	info     transport.DeviceInfo
	name     string // registry display name, empty for explicit IDs
	protocol report.Protocol
	logger   log.Logger
	closed   bool
}

// Open enumerates the transport's devices, matches one per opts, and
// opens it. The returned session must be closed by the caller; Open
// itself never leaks a handle on failure.
func Open(t transport.Transport, opts Options) (*Session, error) {
	devices, err := t.Enumerate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	info, protocol, name, err := match(devices, opts)
	if err != nil {
		return nil, err
	}

	dev, err := t.Open(info)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	s := &Session{
		id:       uuid.NewString(),
		device:   dev,
		info:     info,
		name:     name,
		protocol: protocol,
		logger:   opts.logger(),
	}
	s.logState("", "open", "device matched")
	return s, nil
}

// ID returns the session's unique identifier, as carried in log events.
func (s *Session) ID() string {
	return s.id
}

// Protocol returns the resolved pairing protocol.
func (s *Session) Protocol() report.Protocol {
	return s.protocol
}

// DeviceInfo returns the enumeration record of the opened device.
func (s *Session) DeviceInfo() transport.DeviceInfo {
	return s.info
}

// GetDisplayName returns "<manufacturer> <product>" from the device's
// string descriptors, with "?" substituted for any string the transport
// cannot supply. With includeSerial the serial is appended in parens.
// It never fails.
func (s *Session) GetDisplayName(includeSerial bool) string {
	manufacturer := stringOr(s.device.ManufacturerString, "?")
	product := stringOr(s.device.ProductString, "?")

	if includeSerial {
		serial := stringOr(s.device.SerialString, "?")
		return fmt.Sprintf("%s %s (%s)", manufacturer, product, serial)
	}
	return fmt.Sprintf("%s %s", manufacturer, product)
}

func stringOr(read func() (string, error), fallback string) string {
	s, err := read()
	if err != nil {
		return fallback
	}
	return s
}

// GetPairedMAC reads the host MAC address the controller is currently
// paired to.
func (s *Session) GetPairedMAC() (mac.Address, error) {
	if s.closed {
		return mac.Address{}, ErrSessionClosed
	}

	buf, err := report.NewGetRequest(s.protocol)
	if err != nil {
		return mac.Address{}, err
	}

	n, err := s.device.GetFeatureReport(buf)
	if err != nil {
		s.logError("get_paired_mac", err)
		return mac.Address{}, fmt.Errorf("%w: %w", ErrTransportIO, err)
	}
	s.logReport(log.DirectionIn, buf[0], n)

	return report.Decode(s.protocol, buf[:n])
}

// SetPairedMAC pairs the controller to the given host MAC address.
// The write is not verified; callers wanting a read-after-write check
// use Pair.
func (s *Session) SetPairedMAC(addr mac.Address) error {
	if s.closed {
		return ErrSessionClosed
	}

	buf, err := report.Encode(s.protocol, addr)
	if err != nil {
		return err
	}

	if err := s.device.SendFeatureReport(buf); err != nil {
		s.logError("set_paired_mac", err)
		return fmt.Errorf("%w: %w", ErrTransportIO, err)
	}
	s.logReport(log.DirectionOut, buf[0], len(buf))
	return nil
}

// Pair writes the address and, when verify is set, reads it back and
// checks the device reports the address just written. The session stays
// open either way.
func (s *Session) Pair(addr mac.Address, verify bool) error {
	if err := s.SetPairedMAC(addr); err != nil {
		return err
	}
	if !verify {
		return nil
	}

	got, err := s.GetPairedMAC()
	if err != nil {
		return err
	}
	if got != addr {
		return fmt.Errorf("%w: wrote %s, device reports %s", ErrVerifyMismatch, addr, got)
	}
	return nil
}

// Close releases the device handle. Close is idempotent; after the first
// call the session is terminally closed and operations return
// ErrSessionClosed.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.logState("open", "closed", "")
	return s.device.Close()
}

func (s *Session) logReport(dir log.Direction, reportID byte, size int) {
	s.logger.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  s.id,
		Direction:  dir,
		Layer:      log.LayerTransport,
		Category:   log.CategoryReport,
		DeviceID:   s.info.ID.String(),
		DeviceName: s.name,
		Report: &log.ReportEvent{
			ReportID: reportID,
			Size:     size,
		},
	})
}

func (s *Session) logState(oldState, newState, reason string) {
	s.logger.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  s.id,
		Layer:      log.LayerSession,
		Category:   log.CategoryState,
		DeviceID:   s.info.ID.String(),
		DeviceName: s.name,
		StateChange: &log.StateChangeEvent{
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
		},
	})
}

func (s *Session) logError(operation string, err error) {
	s.logger.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  s.id,
		Layer:      log.LayerTransport,
		Category:   log.CategoryError,
		DeviceID:   s.info.ID.String(),
		DeviceName: s.name,
		Error: &log.ErrorEventData{
			Message:   err.Error(),
			Operation: operation,
		},
	})
}
