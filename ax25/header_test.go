package ax25

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTripNoRepeaters(t *testing.T) {
	dest, err := ParseAddress("APRS")
	require.NoError(t, err)
	src, err := ParseAddress("KD9XB-9")
	require.NoError(t, err)

	h := Header{Destination: dest, Source: src, CR: true}
	wire, err := h.Encode()
	require.NoError(t, err)
	assert.Len(t, wire, MinHeaderLen)

	got, rest, err := DecodeHeader(wire)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, dest.Callsign, got.Destination.Callsign)
	assert.Equal(t, src.Callsign, got.Source.Callsign)
	assert.True(t, got.CR)
	assert.Empty(t, got.Repeaters)
}

func TestHeaderRoundTripWithRepeaters(t *testing.T) {
	dest, _ := ParseAddress("APRS")
	src, _ := ParseAddress("KD9XB-9")
	r1, _ := ParseAddress("WIDE1-1")
	r2, _ := ParseAddress("WIDE2-2")

	h := Header{Destination: dest, Source: src, Repeaters: Path{r1, r2}}
	wire, err := h.Encode()
	require.NoError(t, err)
	assert.Len(t, wire, MinHeaderLen+14)

	got, rest, err := DecodeHeader(append(wire, 0x03, 0xf0))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0xf0}, rest)
	require.Len(t, got.Repeaters, 2)
	assert.Equal(t, "WIDE1", got.Repeaters[0].Callsign)
	assert.Equal(t, "WIDE2", got.Repeaters[1].Callsign)
	assert.True(t, got.Repeaters[1].Extension)
	assert.False(t, got.Repeaters[0].Extension)
}

func TestHeaderTooManyRepeatersRejected(t *testing.T) {
	dest, _ := ParseAddress("APRS")
	src, _ := ParseAddress("KD9XB")
	reps := make(Path, 9)
	for i := range reps {
		reps[i], _ = ParseAddress("WIDE1-1")
	}
	h := Header{Destination: dest, Source: src, Repeaters: reps}
	_, err := h.Encode()
	assert.ErrorIs(t, err, ErrTooManyRepeaters)
}
