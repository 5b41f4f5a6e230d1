package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStation() Station {
	return Station{
		Callsign: "KD9XB",
		Software: "axprs 1.0",
		Lat:      42.619,
		Lon:      -71.347,
		Symbol:   Symbol{Table: '/', Code: '#'},
		HaveDest: true,
		DestLat:  40.730,
		DestLon:  -73.935,
	}
}

func TestRespondToQueryAPRS(t *testing.T) {
	resp, err := RespondToQuery("?APRS?", testStation())
	require.NoError(t, err)
	assert.Equal(t, "axprs 1.0", resp)
}

func TestRespondToQueryLOC(t *testing.T) {
	resp, err := RespondToQuery("?LOC?", testStation())
	require.NoError(t, err)
	assert.Equal(t, byte('!'), resp[0])
}

func TestRespondToQueryDST(t *testing.T) {
	resp, err := RespondToQuery("?DST?", testStation())
	require.NoError(t, err)
	assert.Contains(t, resp, "km")
}

func TestRespondToQueryDSTUnknownWithoutDest(t *testing.T) {
	s := testStation()
	s.HaveDest = false
	resp, err := RespondToQuery("?DST?", s)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", resp)
}

func TestRespondToQueryUnrecognizedVerb(t *testing.T) {
	resp, err := RespondToQuery("?BOGUS?", testStation())
	require.NoError(t, err)
	assert.Equal(t, "", resp)
}

func TestGreatCircleKilometersKnownDistance(t *testing.T) {
	// Boston to New York, roughly 300 km great-circle.
	km := GreatCircleKilometers(42.3601, -71.0589, 40.7128, -74.0060)
	assert.InDelta(t, 306, km, 20)
}
