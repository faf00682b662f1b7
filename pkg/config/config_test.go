package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixpair/sixpair-go/pkg/registry"
	"github.com/sixpair/sixpair-go/pkg/report"
)

func TestParseFull(t *testing.T) {
	cfg, err := Parse([]byte(`
logging:
  level: debug
  file: /var/log/sixpair.plog
device:
  id: "054c:09cc"
  protocol: dualshock4
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/var/log/sixpair.plog", cfg.Logging.File)

	id, err := cfg.DeviceID()
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, registry.DeviceID{Vendor: 0x054C, Product: 0x09CC}, *id)

	p, err := cfg.Protocol()
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, report.DualShock4, *p)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
	assert.Nil(t, cfg.Device)

	id, err := cfg.DeviceID()
	require.NoError(t, err)
	assert.Nil(t, id)

	p, err := cfg.Protocol()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "bad log level",
			yaml: "logging:\n  level: verbose\n",
			want: ErrInvalidLogLevel,
		},
		{
			name: "device without protocol",
			yaml: "device:\n  id: \"054c:09cc\"\n",
			want: report.ErrUnknownProtocol,
		},
		{
			name: "malformed device id",
			yaml: "device:\n  id: \"nonsense\"\n  protocol: sixaxis\n",
			want: registry.ErrInvalidDeviceID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("\t not yaml"))
	assert.Error(t, err)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sixpair.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}
