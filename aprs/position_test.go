package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePositionUncompressedRoundTrip(t *testing.T) {
	p, err := Decode([]byte("!4237.14NS07120.83W#"))
	require.NoError(t, err)
	pos, ok := p.(PositionPacket)
	require.True(t, ok)
	assert.InDelta(t, 42.619, pos.Lat, 0.001)
	assert.InDelta(t, -71.347, pos.Lon, 0.001)
	assert.Equal(t, Symbol{Table: 'S', Code: '#'}, pos.Symbol)

	wire, err := pos.Encode()
	require.NoError(t, err)
	assert.Equal(t, "!4237.14NS07120.83W#", string(wire))
}

func TestDecodePositionCourseSpeed(t *testing.T) {
	p, err := Decode([]byte("!4237.14NS07120.83W#088/036Moving"))
	require.NoError(t, err)
	pos := p.(PositionPacket)
	assert.True(t, pos.HasCourseSpeed)
	assert.Equal(t, 88, pos.Course)
	assert.Equal(t, 36, pos.Speed)
	assert.Equal(t, "Moving", pos.Comment)
}

func TestDecodePositionZeroCourseSpeedIsAbsent(t *testing.T) {
	p, err := Decode([]byte("!4237.14NS07120.83W#000/000Parked"))
	require.NoError(t, err)
	pos := p.(PositionPacket)
	assert.False(t, pos.HasCourseSpeed)
	assert.Equal(t, 0, pos.Course)
	assert.Equal(t, 0, pos.Speed)
	assert.Equal(t, "Parked", pos.Comment)
}

func TestEncodePositionScenario(t *testing.T) {
	pos := PositionPacket{
		Lat:     49.5,
		Lon:     -72.75,
		Symbol:  Symbol{Table: '/', Code: '-'},
		Comment: "Test",
	}
	wire, err := pos.Encode()
	require.NoError(t, err)
	assert.Equal(t, "!4930.00N/07245.00W-Test", string(wire))
	assert.Len(t, wire, 24)
}

func TestDecodePositionPHGExtension(t *testing.T) {
	p, err := Decode([]byte("!4237.14NS07120.83W#PHG7130Chelmsford, MA"))
	require.NoError(t, err)
	pos := p.(PositionPacket)
	require.NotNil(t, pos.PHG)
	assert.Equal(t, 7, pos.PHG.PowerIndex)
	assert.Equal(t, 49, pos.PHG.PowerWatts())
	assert.Equal(t, 1, pos.PHG.HeightIndex)
	assert.Equal(t, 20, pos.PHG.HeightFeet())
	assert.Equal(t, 3, pos.PHG.GainIndex)
	assert.Equal(t, "omni", pos.PHG.Directivity())
	assert.Equal(t, "Chelmsford, MA", pos.Comment)

	wire, err := pos.Encode()
	require.NoError(t, err)
	assert.Equal(t, "!4237.14NS07120.83W#PHG7130Chelmsford, MA", string(wire))
}

func TestDecodePositionDFSExtension(t *testing.T) {
	p, err := Decode([]byte("!4237.14NS07120.83W#DFS2362/A=001234"))
	require.NoError(t, err)
	pos := p.(PositionPacket)
	require.NotNil(t, pos.DF)
	assert.Equal(t, 2, pos.DF.StrengthIndex)
	assert.Equal(t, 3, pos.DF.HeightIndex)
	assert.Equal(t, 6, pos.DF.GainIndex)
	assert.Equal(t, "E", pos.DF.Directivity())
	require.NotNil(t, pos.Altitude)
	assert.Equal(t, 1234, *pos.Altitude)
	assert.Equal(t, "/A=001234", pos.Comment)
}

func TestDecodePositionCompressedRoundTrip(t *testing.T) {
	lat := EncodeCompressedLatitude(42.619)
	lon := EncodeCompressedLongitude(-71.347)
	info := "!/" + lat + lon + "#   "
	p, err := Decode([]byte(info))
	require.NoError(t, err)
	pos := p.(PositionPacket)
	assert.True(t, pos.Compressed)
	assert.InDelta(t, 42.619, pos.Lat, 0.001)
	assert.InDelta(t, -71.347, pos.Lon, 0.001)
}

func TestParseAltitudeLeavesCommentIntact(t *testing.T) {
	alt, ok := parseAltitude("hello /A=003281 world")
	require.True(t, ok)
	assert.Equal(t, 3281, *alt)
}
