package aprs

import (
	"fmt"
	"strings"

	"github.com/golang/geo/s2"
)

// earthMeanRadiusKm is the spherical-Earth mean radius used for the
// ?DST? directed-query response (spec §4.12).
const earthMeanRadiusKm = 6371.0

// Station is the caller-supplied record a directed-query response is
// built from (spec §4.12).
type Station struct {
	Callsign    string
	Software    string
	Lat, Lon    float64
	Symbol      Symbol
	HaveDest    bool
	DestLat     float64
	DestLon     float64
	Timestamp   *Timestamp
	StatusText  string
}

// RespondToQuery builds the response body for a directed station query
// (the text following '?' in a Message whose Subtype is
// MessageSubtypeDirectedQuery), per spec §4.12. An empty result means
// the verb is not recognized and no response should be sent.
//
// Grounded in aprs_directed_station_query (decode_aprs.go); the four
// verbs it lists (APRSD, APRSH aside — those are digipeater-path and
// history queries out of this library's scope) that this package
// answers purely from a Station record are APRS, LOC, TIME, and DST.
func RespondToQuery(verb string, s Station) (string, error) {
	verb = strings.TrimSuffix(strings.TrimPrefix(verb, "?"), "?")
	switch strings.ToUpper(verb) {
	case "APRS":
		return s.Software, nil
	case "LOC":
		pos := PositionPacket{Lat: s.Lat, Lon: s.Lon, Symbol: s.Symbol}
		body, err := pos.Encode()
		if err != nil {
			return "", err
		}
		return string(body), nil
	case "TIME":
		if s.Timestamp == nil {
			return "", ErrMalformed
		}
		sr := StatusReport{Timestamp: s.Timestamp}
		body, err := sr.Encode()
		if err != nil {
			return "", err
		}
		return string(body), nil
	case "DST":
		if !s.HaveDest {
			return "Unknown", nil
		}
		km := GreatCircleKilometers(s.Lat, s.Lon, s.DestLat, s.DestLon)
		return fmt.Sprintf("%.0f km", km), nil
	default:
		return "", nil
	}
}

// GreatCircleKilometers returns the spherical-Earth great-circle
// distance between two lat/lon points in kilometers, rounded to the
// nearest integer by the caller as needed (spec §4.12).
func GreatCircleKilometers(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	angle := a.Distance(b)
	return float64(angle) * earthMeanRadiusKm
}
