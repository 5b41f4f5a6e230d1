package hdlc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestStuffDestuffRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		frame := []byte(rapid.StringN(1, 200, -1).Draw(t, "frame"))
		withFCS := AppendFCS(frame)

		stuffed := Stuff(withFCS, 0)
		destuffed, err := Destuff(stuffed)
		require.NoError(t, err)
		assert.Equal(t, withFCS, destuffed)
		assert.True(t, VerifyFCS(destuffed))
	})
}

func TestStuffPadsToRequestedLength(t *testing.T) {
	out := Stuff([]byte("hi"), 16)
	assert.Len(t, out, 16)
}

func TestDestuffNoFlagsErrors(t *testing.T) {
	_, err := Destuff([]byte{0x00, 0x01, 0x02})
	assert.ErrorIs(t, err, ErrNoFlags)
}

func TestFCSKnownValue(t *testing.T) {
	// "123456789" is the standard CRC-CCITT check string.
	got := FCS([]byte("123456789"))
	assert.Equal(t, uint16(0x906e), got)
}
