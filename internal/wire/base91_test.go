package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestBase91RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint32Range(0, 91*91*91*91-1).Draw(t, "v")
		enc := EncodeBase91(v, 4)
		assert.Len(t, enc, 4)
		for _, c := range enc {
			assert.True(t, IsBase91Digit(c))
		}
		assert.Equal(t, v, DecodeBase91(enc))
	})
}

func TestReverseByteInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.Byte().Draw(t, "b")
		assert.Equal(t, b, ReverseByte(ReverseByte(b)))
	})
}

func TestShiftLeftRightOne(t *testing.T) {
	assert.Equal(t, byte('A'), ShiftRightOne(ShiftLeftOne('A')))
}
