package ax25

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseAddressRoundTrip(t *testing.T) {
	a, err := ParseAddress("KD9XB-7*")
	require.NoError(t, err)
	assert.Equal(t, "KD9XB", a.Callsign)
	assert.Equal(t, 7, a.SSID)
	assert.True(t, a.CH)
	assert.Equal(t, "KD9XB-7*", a.String())
}

func TestParseAddressRejectsMisplacedMark(t *testing.T) {
	_, err := ParseAddress("KD*9XB-7")
	assert.ErrorIs(t, err, ErrMisplacedMark)
}

func TestParseAddressRejectsBadSSID(t *testing.T) {
	_, err := ParseAddress("KD9XB-16")
	assert.ErrorIs(t, err, ErrInvalidSSID)
}

func callsignGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Z0-9]{1,6}`)
}

func TestAddressEncodeDecodeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := Address{
			Callsign:  callsignGen().Draw(t, "callsign"),
			SSID:      rapid.IntRange(0, 15).Draw(t, "ssid"),
			CH:        rapid.Bool().Draw(t, "ch"),
			Res0:      rapid.Bool().Draw(t, "res0"),
			Res1:      rapid.Bool().Draw(t, "res1"),
			Extension: rapid.Bool().Draw(t, "ext"),
		}
		wire, err := a.Encode()
		require.NoError(t, err)

		decoded, err := DecodeAddress(wire)
		require.NoError(t, err)
		assert.Equal(t, a, decoded)
	})
}
