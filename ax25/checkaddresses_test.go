package ax25

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAddressesAllValid(t *testing.T) {
	dest, err := ParseAddress("APRS")
	require.NoError(t, err)
	src, err := ParseAddress("KD9XB-7")
	require.NoError(t, err)
	h := Header{Destination: dest, Source: src}
	assert.Empty(t, CheckAddresses(h))
}

func TestCheckAddressesReportsInvalidRepeater(t *testing.T) {
	dest, err := ParseAddress("APRS")
	require.NoError(t, err)
	src, err := ParseAddress("KD9XB-7")
	require.NoError(t, err)
	bad := Address{Callsign: "TOOLONGCALL", SSID: 0}
	h := Header{Destination: dest, Source: src, Repeaters: Path{bad}}

	errs := CheckAddresses(h)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "repeater[0]")
}
