package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end Mic-E decode scenario: destination callsign SUSURB with the
// info-field bytes 60 43 46 22 1C 1F 21 5B 2F 3A 60 22 33 7A 7D 5F 20 00.
func TestDecodeMicEScenario(t *testing.T) {
	info := []byte{0x60, 0x43, 0x46, 0x22, 0x1C, 0x1F, 0x21, 0x5B, 0x2F, 0x3A, 0x60, 0x22, 0x33, 0x7A, 0x7D, 0x5F, 0x20, 0x00}

	p, err := DecodeMicE("SUSURB", info)
	require.NoError(t, err)

	assert.InDelta(t, 35.5868, p.Lat, 0.001)
	assert.InDelta(t, 139.7010, p.Lon, 0.001)
	assert.Equal(t, 305, p.Course)
	assert.Equal(t, 0, p.SpeedKnots)
	assert.Equal(t, byte('/'), p.Symbol.Table)
	assert.Equal(t, byte('['), p.Symbol.Code)
	assert.True(t, p.Standard)
	assert.Equal(t, MicEOffDuty, p.Message)
	assert.Equal(t, "Off Duty", p.MessageText())
}
