package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGPRMC(t *testing.T) {
	line := "$GPRMC,161229.487,A,3723.2475,N,12158.3416,W,000.5,054.7,191194,020.3,E*68"
	p, err := Decode([]byte(line))
	require.NoError(t, err)
	g := p.(RawGPS)
	assert.InDelta(t, 37.387, g.Lat, 0.01)
	assert.InDelta(t, -121.972, g.Lon, 0.01)
	require.True(t, g.HaveSpeed)
	assert.InDelta(t, 0.5, g.SpeedKnots, 0.001)
	require.True(t, g.HaveCourse)
	assert.InDelta(t, 54.7, g.Course, 0.001)
}

func TestDecodeGPGGA(t *testing.T) {
	line := "$GPGGA,161229.487,3723.2475,N,12158.3416,W,1,07,1.0,9.0,M,,,,0000*18"
	p, err := Decode([]byte(line))
	require.NoError(t, err)
	g := p.(RawGPS)
	assert.InDelta(t, 37.387, g.Lat, 0.01)
	assert.InDelta(t, -121.972, g.Lon, 0.01)
	require.True(t, g.HaveAlt)
	assert.InDelta(t, 9.0, g.AltMeters, 0.001)
}

func TestDecodeUltimeterHexRoundTrip(t *testing.T) {
	u := Ultimeter{
		WindPeakTenthKm:      10,
		WindDirRaw:           128,
		OutTempTenthF:        720,
		TotalRainHundredthIn: 0,
		BaroTenthMbar:        10132,
		BaroDeltaTenthMbar:   5,
		OutHumidTenthPct:     450,
		DateDayOfYear:        200,
		TimeMinuteOfDay:      600,
	}
	wire, err := u.Encode()
	require.NoError(t, err)
	assert.Equal(t, byte('$'), wire[0])

	decoded, err := Decode(wire)
	require.NoError(t, err)
	got := decoded.(Ultimeter)
	assert.Equal(t, u.WindPeakTenthKm, got.WindPeakTenthKm)
	assert.Equal(t, u.OutTempTenthF, got.OutTempTenthF)
	assert.Equal(t, u.BaroTenthMbar, got.BaroTenthMbar)
}

func TestDecodeUltimeterLegacy(t *testing.T) {
	u := Ultimeter{Legacy: true, WindPeakTenthKm: 1, WindDirRaw: 2, OutTempTenthF: 3, TotalRainHundredthIn: 4}
	wire, err := u.Encode()
	require.NoError(t, err)

	decoded, err := Decode(wire)
	require.NoError(t, err)
	got := decoded.(Ultimeter)
	assert.True(t, got.Legacy)
	assert.Equal(t, int16(1), got.WindPeakTenthKm)
}

func TestDecodeRawGPSOrUltimeterRejectsUnknownPrefix(t *testing.T) {
	_, err := Decode([]byte("$bogus"))
	assert.ErrorIs(t, err, ErrMalformed)
}
