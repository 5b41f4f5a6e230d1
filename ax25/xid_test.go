package ax25

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXIDParamsRoundTrip(t *testing.T) {
	encoded := EncodeXIDParams(DefaultXIDParams)
	decoded, err := DecodeXIDParams(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(DefaultXIDParams))
	assert.Equal(t, DefaultXIDParams, decoded)
}

func TestXIDParamsEmptyInfoMeansNoChange(t *testing.T) {
	decoded, err := DecodeXIDParams(nil)
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestXIDParamsRejectsBadFormatIndicator(t *testing.T) {
	_, err := DecodeXIDParams([]byte{0x00, xidGroupIdentifier, 0x00, 0x00})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHDLCOptionalFunctionsRoundTrip(t *testing.T) {
	p := HDLCOptionalFunctions{
		Modulo:      Modulo128,
		SREJ:        SREJMulti,
		Segmenter:   true,
		TESTCmdResp: true,
	}
	encoded := EncodeXIDParams([]XIDParam{p})
	decoded, err := DecodeXIDParams(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, p, decoded[0])
}
