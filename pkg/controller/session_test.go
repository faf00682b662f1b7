package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixpair/sixpair-go/internal/hidtest"
	"github.com/sixpair/sixpair-go/pkg/log"
	"github.com/sixpair/sixpair-go/pkg/mac"
	"github.com/sixpair/sixpair-go/pkg/report"
	"github.com/sixpair/sixpair-go/pkg/transport"
)

func addr(t *testing.T, s string) mac.Address {
	t.Helper()
	a, err := mac.Parse(s)
	require.NoError(t, err)
	return a
}

// openSession opens a session against a fake transport exposing a single
// device, returning the session and the fake device behind it.
func openSession(t *testing.T, id transport.DeviceInfo, device *hidtest.Device, opts Options) *Session {
	t.Helper()
	tr := &hidtest.Transport{
		Devices:  []transport.DeviceInfo{id},
		OpenFunc: func(transport.DeviceInfo) *hidtest.Device { return device },
	}
	s, err := Open(tr, opts)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenResolvesProtocol(t *testing.T) {
	s := openSession(t, dev(ds4ID, "/dev/hidraw0"), &hidtest.Device{}, Options{})

	assert.Equal(t, report.DualShock4, s.Protocol())
	assert.Equal(t, ds4ID, s.DeviceInfo().ID)
	assert.NotEmpty(t, s.ID())
}

func TestGetPairedMACSixAxis(t *testing.T) {
	device := &hidtest.Device{
		Replies: map[byte][]byte{
			0xF5: {0xF5, 0x00, 0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01},
		},
	}
	s := openSession(t, dev(ps3ID, "/dev/hidraw0"), device, Options{})

	got, err := s.GetPairedMAC()
	require.NoError(t, err)
	assert.Equal(t, "DE:AD:BE:EF:00:01", got.String())
}

func TestGetPairedMACDualShock4ReversesWireOrder(t *testing.T) {
	device := &hidtest.Device{
		Replies: map[byte][]byte{
			0x12: {0x12, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01},
		},
	}
	s := openSession(t, dev(ds4ID, "/dev/hidraw0"), device, Options{})

	got, err := s.GetPairedMAC()
	require.NoError(t, err)
	assert.Equal(t, "01:02:03:04:05:06", got.String())
}

func TestGetPairedMACShortReply(t *testing.T) {
	device := &hidtest.Device{
		Replies: map[byte][]byte{
			// 7 bytes where SixAxis expects 8.
			0xF5: {0xF5, 0x00, 0xDE, 0xAD, 0xBE, 0xEF, 0x00},
		},
	}
	s := openSession(t, dev(ps3ID, "/dev/hidraw0"), device, Options{})

	_, err := s.GetPairedMAC()
	assert.ErrorIs(t, err, report.ErrUnexpectedLength)
}

func TestGetPairedMACTransportError(t *testing.T) {
	device := &hidtest.Device{GetErr: assert.AnError}
	s := openSession(t, dev(ps3ID, "/dev/hidraw0"), device, Options{})

	_, err := s.GetPairedMAC()
	require.ErrorIs(t, err, ErrTransportIO)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSetPairedMAC(t *testing.T) {
	tests := []struct {
		name string
		id   transport.DeviceInfo
		want []byte
	}{
		{
			name: "sixaxis",
			id:   dev(ps3ID, "/dev/hidraw0"),
			want: []byte{0xF5, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
		},
		{
			name: "dualshock4",
			id:   dev(ds4ID, "/dev/hidraw0"),
			want: append([]byte{0x13, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, make([]byte, 16)...),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := &hidtest.Device{}
			s := openSession(t, tt.id, device, Options{})

			err := s.SetPairedMAC(addr(t, "01:02:03:04:05:06"))
			require.NoError(t, err)

			require.Len(t, device.Sent, 1)
			assert.Equal(t, tt.want, device.Sent[0])
		})
	}
}

func TestSetPairedMACTransportError(t *testing.T) {
	device := &hidtest.Device{SendErr: assert.AnError}
	s := openSession(t, dev(ds4ID, "/dev/hidraw0"), device, Options{})

	err := s.SetPairedMAC(addr(t, "01:02:03:04:05:06"))
	require.ErrorIs(t, err, ErrTransportIO)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPairVerify(t *testing.T) {
	a := addr(t, "00:1B:DC:F2:1C:29")

	t.Run("verify success", func(t *testing.T) {
		reply := []byte{0xF5, 0x00}
		b := a.Bytes()
		reply = append(reply, b[:]...)
		device := &hidtest.Device{Replies: map[byte][]byte{0xF5: reply}}
		s := openSession(t, dev(ps3ID, "/dev/hidraw0"), device, Options{})

		require.NoError(t, s.Pair(a, true))
		require.Len(t, device.Sent, 1)
	})

	t.Run("verify mismatch", func(t *testing.T) {
		device := &hidtest.Device{
			Replies: map[byte][]byte{
				0xF5: {0xF5, 0x00, 1, 2, 3, 4, 5, 6},
			},
		}
		s := openSession(t, dev(ps3ID, "/dev/hidraw0"), device, Options{})

		err := s.Pair(a, true)
		assert.ErrorIs(t, err, ErrVerifyMismatch)
	})

	t.Run("no verify skips read-back", func(t *testing.T) {
		// No scripted reply: a read-back would fail.
		device := &hidtest.Device{}
		s := openSession(t, dev(ps3ID, "/dev/hidraw0"), device, Options{})

		require.NoError(t, s.Pair(a, false))
	})
}

func TestGetDisplayName(t *testing.T) {
	tests := []struct {
		name          string
		device        *hidtest.Device
		includeSerial bool
		want          string
	}{
		{
			name: "all strings available",
			device: &hidtest.Device{
				Manufacturer: "Sony",
				Product:      "PLAYSTATION(R)3 Controller",
			},
			want: "Sony PLAYSTATION(R)3 Controller",
		},
		{
			name: "with serial",
			device: &hidtest.Device{
				Manufacturer: "Sony",
				Product:      "Wireless Controller",
				Serial:       "00:1B:DC:F2:1C:29",
			},
			includeSerial: true,
			want:          "Sony Wireless Controller (00:1B:DC:F2:1C:29)",
		},
		{
			name: "unavailable strings degrade to question marks",
			device: &hidtest.Device{
				ManufacturerErr: assert.AnError,
				ProductErr:      assert.AnError,
				SerialErr:       assert.AnError,
			},
			includeSerial: true,
			want:          "? ? (?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openSession(t, dev(ps3ID, "/dev/hidraw0"), tt.device, Options{})
			assert.Equal(t, tt.want, s.GetDisplayName(tt.includeSerial))
		})
	}
}

func TestCloseIsTerminal(t *testing.T) {
	device := &hidtest.Device{
		Replies: map[byte][]byte{
			0xF5: {0xF5, 0x00, 1, 2, 3, 4, 5, 6},
		},
	}
	s := openSession(t, dev(ps3ID, "/dev/hidraw0"), device, Options{})

	require.NoError(t, s.Close())
	assert.Equal(t, 1, device.Closed)

	// Idempotent: second close releases nothing twice.
	require.NoError(t, s.Close())
	assert.Equal(t, 1, device.Closed)

	_, err := s.GetPairedMAC()
	assert.ErrorIs(t, err, ErrSessionClosed)

	err = s.SetPairedMAC(addr(t, "01:02:03:04:05:06"))
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSessionEmitsEvents(t *testing.T) {
	logger := &recordingLogger{}
	device := &hidtest.Device{
		Replies: map[byte][]byte{
			0xF5: {0xF5, 0x00, 1, 2, 3, 4, 5, 6},
		},
	}
	s := openSession(t, dev(ps3ID, "/dev/hidraw0"), device, Options{Logger: logger})

	_, err := s.GetPairedMAC()
	require.NoError(t, err)
	require.NoError(t, s.SetPairedMAC(addr(t, "01:02:03:04:05:06")))
	require.NoError(t, s.Close())

	var reports, states int
	for _, e := range logger.events {
		switch e.Category {
		case log.CategoryReport:
			reports++
			assert.Equal(t, s.ID(), e.SessionID)
			assert.Equal(t, "Sony PlayStation 3 Controller", e.DeviceName)
		case log.CategoryState:
			states++
		}
	}
	assert.Equal(t, 2, reports, "one event per feature-report exchange")
	assert.Equal(t, 2, states, "open and close transitions")
}
