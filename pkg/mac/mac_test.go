package mac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [6]byte
	}{
		{
			name:  "uppercase",
			input: "00:1B:DC:F2:1C:29",
			want:  [6]byte{0x00, 0x1B, 0xDC, 0xF2, 0x1C, 0x29},
		},
		{
			name:  "lowercase",
			input: "aa:bb:cc:dd:ee:ff",
			want:  [6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF},
		},
		{
			name:  "all zero",
			input: "00:00:00:00:00:00",
			want:  [6]byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Bytes())
		})
	}
}

func TestParseSegmentCount(t *testing.T) {
	_, err := Parse("AA:BB:CC")
	require.ErrorIs(t, err, ErrMalformedAddress)
	assert.Contains(t, err.Error(), "expected 6")
	assert.Contains(t, err.Error(), "got 3")

	_, err = Parse("AA:BB:CC:DD:EE:FF:00")
	require.ErrorIs(t, err, ErrMalformedAddress)
	assert.Contains(t, err.Error(), "got 7")
}

func TestParseInvalidByte(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		position string
		segment  string
	}{
		{
			name:     "non-hex first segment",
			input:    "ZZ:00:00:00:00:00",
			position: "#1",
			segment:  `"ZZ"`,
		},
		{
			name:     "non-hex middle segment",
			input:    "00:00:G0:00:00:00",
			position: "#3",
			segment:  `"G0"`,
		},
		{
			name:     "empty segment",
			input:    "00::00:00:00:00",
			position: "#2",
			segment:  `""`,
		},
		{
			name:     "single digit segment",
			input:    "00:0:00:00:00:00",
			position: "#2",
			segment:  `"0"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.ErrorIs(t, err, ErrInvalidByte)
			assert.Contains(t, err.Error(), tt.position)
			assert.Contains(t, err.Error(), tt.segment)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	addrs := []Address{
		FromBytes([6]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}),
		FromBytes([6]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01}),
		FromBytes([6]byte{}),
		FromBytes([6]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}),
	}

	for _, a := range addrs {
		parsed, err := Parse(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
}

func TestStringUppercase(t *testing.T) {
	a, err := Parse("ab:cd:ef:01:23:45")
	require.NoError(t, err)
	assert.Equal(t, "AB:CD:EF:01:23:45", a.String())
}

func TestReversed(t *testing.T) {
	a := FromBytes([6]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})
	assert.Equal(t, [6]byte{0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, a.Reversed())

	// Reversing twice restores network order.
	assert.Equal(t, a, FromBytes(FromBytes(a.Reversed()).Reversed()))
}

func TestEquality(t *testing.T) {
	a := FromBytes([6]byte{1, 2, 3, 4, 5, 6})
	b := FromBytes([6]byte{1, 2, 3, 4, 5, 6})
	c := FromBytes([6]byte{1, 2, 3, 4, 5, 7})

	if a != b {
		t.Errorf("expected %v == %v", a, b)
	}
	if a == c {
		t.Errorf("expected %v != %v", a, c)
	}
}
