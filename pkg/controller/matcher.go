package controller

import (
	"errors"
	"time"

	"github.com/sixpair/sixpair-go/pkg/log"
	"github.com/sixpair/sixpair-go/pkg/registry"
	"github.com/sixpair/sixpair-go/pkg/report"
	"github.com/sixpair/sixpair-go/pkg/transport"
)

// Matching errors.
var (
	// ErrProtocolRequired indicates an explicit device ID was given
	// without a protocol. The registry cannot infer the protocol for an
	// unknown ID.
	ErrProtocolRequired = errors.New("explicit device ID requires a protocol")

	// ErrNoSupportedDevice indicates no enumerated device matched the
	// filter or the known-device table.
	ErrNoSupportedDevice = errors.New("no supported device found")
)

// Options selects the device to open.
type Options struct {
	// ID restricts matching to devices with this exact vendor/product
	// pair. When set, Protocol must be set as well.
	ID *registry.DeviceID

	// Protocol overrides protocol resolution. Required with ID; ignored
	// otherwise (registry matches carry their own protocol).
	Protocol *report.Protocol

	// Logger receives matching and session events. Nil disables logging.
	Logger log.Logger
}

func (o Options) logger() log.Logger {
	if o.Logger == nil {
		return log.NoopLogger{}
	}
	return o.Logger
}

// match scans the enumerated devices and picks the one to open, together
// with its resolved protocol. With an explicit ID the first exact
// vendor/product match wins and the caller-supplied protocol applies;
// otherwise the first registry hit wins and adopts the record's protocol.
// One candidate event is emitted per device considered.
func match(devices []transport.DeviceInfo, opts Options) (transport.DeviceInfo, report.Protocol, string, error) {
	logger := opts.logger()

	for _, dev := range devices {
		if opts.ID != nil {
			if dev.ID != *opts.ID {
				continue
			}
			logCandidate(logger, dev, "", true, false)
			if opts.Protocol == nil {
				return transport.DeviceInfo{}, 0, "", ErrProtocolRequired
			}
			return dev, *opts.Protocol, "", nil
		}

		known, ok := registry.Lookup(dev.ID)
		logCandidate(logger, dev, known.Name, ok, ok)
		if ok {
			return dev, known.Protocol, known.Name, nil
		}
	}

	return transport.DeviceInfo{}, 0, "", ErrNoSupportedDevice
}

func logCandidate(logger log.Logger, dev transport.DeviceInfo, name string, matched, known bool) {
	logger.Log(log.Event{
		Timestamp:  time.Now(),
		Direction:  log.DirectionIn,
		Layer:      log.LayerSession,
		Category:   log.CategoryCandidate,
		DeviceID:   dev.ID.String(),
		DeviceName: name,
		Candidate: &log.CandidateEvent{
			Matched: matched,
			Known:   known,
			Path:    dev.Path,
		},
	})
}
