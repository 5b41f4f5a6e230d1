package aprs

import (
	"fmt"
	"strconv"
	"strings"
)

// WeatherReport is a decoded weather data field: either trailing a
// position report (the 'c.../s...' wind data that follows a position) or
// a standalone positionless report (DTI '_').
//
// Grounded in weather_data / getwdata (decode_aprs.go), which scan a
// fixed "course/speed" prefix followed by an unordered run of single
// letter-tagged fields.
type WeatherReport struct {
	Timestamp *Timestamp // positionless reports only

	WindCourse    *int // degrees
	WindSpeedMPH  *float64
	GustMPH       *float64
	TempF         *float64
	RainLastHour  *float64 // hundredths of an inch
	RainLast24h   *float64
	RainSinceMid  *float64
	HumidityPct   *int
	BarometerMbar *float64 // tenths of a millibar, as transmitted
	LuminosityWsm *float64
	SnowIn24h     *float64
	RawRainCount  *float64

	Software string // trailing free text, e.g. a weather station software tag
}

func (WeatherReport) DTI() byte { return dtiWeatherNoPosition }
func (WeatherReport) payloadTag() {}

// getWeatherField extracts the 2-6 character field with the given
// 1-character tag from the front of wp, returning the remainder and
// whether it was present. A field of all spaces or all dots means
// "present but unknown" and yields ok=true, val=nil.
func getWeatherField(wp []byte, tag byte, dlen int) (val *float64, rest []byte, ok bool) {
	if len(wp) < 1+dlen || wp[0] != tag {
		return nil, wp, false
	}
	field := string(wp[1 : 1+dlen])
	rest = wp[1+dlen:]

	if strings.Count(field, ".") == len(field) || strings.Count(field, " ") == len(field) {
		return nil, rest, true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return nil, wp, false
	}
	return &f, rest, true
}

func decodeWeatherFields(wp []byte) WeatherReport {
	var w WeatherReport

	if len(wp) >= 7 && wp[3] == '/' {
		if n, err := strconv.Atoi(string(wp[0:3])); err == nil {
			w.WindCourse = &n
		}
		if n, err := strconv.Atoi(string(wp[4:7])); err == nil {
			mph := float64(n) * 1.15078
			w.WindSpeedMPH = &mph
		}
		wp = wp[7:]
	} else {
		if c, rest, ok := getWeatherField(wp, 'c', 3); ok {
			wp = rest
			if c != nil {
				deg := int(*c)
				w.WindCourse = &deg
			}
		}
		if s, rest, ok := getWeatherField(wp, 's', 3); ok {
			wp = rest
			w.WindSpeedMPH = s
		}
	}

	if g, rest, ok := getWeatherField(wp, 'g', 3); ok {
		wp = rest
		w.GustMPH = g
	}
	if t, rest, ok := getWeatherField(wp, 't', 3); ok {
		wp = rest
		w.TempF = t
	}

	for {
		if v, rest, ok := getWeatherField(wp, 'r', 3); ok {
			wp, w.RainLastHour = rest, v
			continue
		}
		if v, rest, ok := getWeatherField(wp, 'p', 3); ok {
			wp, w.RainLast24h = rest, v
			continue
		}
		if v, rest, ok := getWeatherField(wp, 'P', 3); ok {
			wp, w.RainSinceMid = rest, v
			continue
		}
		if v, rest, ok := getWeatherField(wp, 'h', 2); ok {
			wp = rest
			if v != nil {
				pct := int(*v)
				if pct == 0 {
					pct = 100
				}
				w.HumidityPct = &pct
			}
			continue
		}
		if v, rest, ok := getWeatherField(wp, 'b', 5); ok {
			wp, w.BarometerMbar = rest, v
			continue
		}
		if v, rest, ok := getWeatherField(wp, 'L', 3); ok {
			wp, w.LuminosityWsm = rest, v
			continue
		}
		if v, rest, ok := getWeatherField(wp, 'l', 3); ok {
			wp = rest
			if v != nil {
				adj := *v + 1000
				w.LuminosityWsm = &adj
			}
			continue
		}
		if v, rest, ok := getWeatherField(wp, 's', 3); ok {
			wp, w.SnowIn24h = rest, v
			continue
		}
		if v, rest, ok := getWeatherField(wp, '#', 3); ok {
			wp, w.RawRainCount = rest, v
			continue
		}
		break
	}

	w.Software = string(wp)
	return w
}

// peetW1Prefix marks a Peet Bros U-II weather block embedded in a
// position report's comment (spec §4.11, "Peet #W1"): the same
// letter-tagged field set as a standalone weather report, with no
// timestamp of its own since the position already carries one.
const peetW1Prefix = "#W1"

// ParsePeetW1Comment extracts a Peet Bros weather block from a position
// comment, returning ok=false if the comment does not begin with #W1.
func ParsePeetW1Comment(comment string) (WeatherReport, bool) {
	if !strings.HasPrefix(comment, peetW1Prefix) {
		return WeatherReport{}, false
	}
	return decodeWeatherFields([]byte(comment[len(peetW1Prefix):])), true
}

// EncodePeetW1Comment renders w as a "#W1"-prefixed comment suffix for
// embedding in a position report.
func EncodePeetW1Comment(w WeatherReport) (string, error) {
	return peetW1Prefix + string(encodeWeatherFields(w)), nil
}

func decodeWeatherNoPosition(info []byte) (Payload, error) {
	body := info[1:]
	if len(body) < 8 {
		return nil, ErrMalformed
	}
	ts, err := DecodeTimestamp(body[:8])
	if err != nil {
		return nil, err
	}
	w := decodeWeatherFields(body[8:])
	w.Timestamp = &ts
	return w, nil
}

func (w WeatherReport) Encode() ([]byte, error) {
	out := []byte{dtiWeatherNoPosition}
	if w.Timestamp == nil {
		return nil, ErrMalformed
	}
	ts, err := w.Timestamp.Encode()
	if err != nil {
		return nil, err
	}
	out = append(out, ts...)
	out = append(out, encodeWeatherFields(w)...)
	return out, nil
}

// encodeWeatherFields renders the set fields of w in c/s/g/t/r/p/P/h/b
// order followed by Software, with no leading DTI or timestamp — the part
// shared by the standalone weather report and the Peet Bros #W1 comment
// form. LuminosityWsm, SnowIn24h and RawRainCount are not encoded.
func encodeWeatherFields(w WeatherReport) []byte {
	var out []byte

	writeField := func(tag byte, v *float64, width int, scale float64) {
		out = append(out, tag)
		if v == nil {
			out = append(out, strings.Repeat(".", width)...)
			return
		}
		out = append(out, []byte(padNum(int(*v*scale), width))...)
	}

	if w.WindCourse != nil {
		out = append(out, 'c')
		out = append(out, []byte(padNum(*w.WindCourse, 3))...)
	}
	if w.WindSpeedMPH != nil {
		writeField('s', w.WindSpeedMPH, 3, 1)
	}
	if w.GustMPH != nil {
		writeField('g', w.GustMPH, 3, 1)
	}
	if w.TempF != nil {
		writeField('t', w.TempF, 3, 1)
	}
	if w.RainLastHour != nil {
		writeField('r', w.RainLastHour, 3, 1)
	}
	if w.RainLast24h != nil {
		writeField('p', w.RainLast24h, 3, 1)
	}
	if w.RainSinceMid != nil {
		writeField('P', w.RainSinceMid, 3, 1)
	}
	if w.HumidityPct != nil {
		h := float64(*w.HumidityPct % 100)
		writeField('h', &h, 2, 1)
	}
	if w.BarometerMbar != nil {
		writeField('b', w.BarometerMbar, 5, 1)
	}
	out = append(out, w.Software...)
	return out
}

// padNum renders n as a zero-padded decimal field of width digits,
// putting a negative sign in front of the padding rather than inside it
// (spec §4.11: "t"DDD temperature is "signed via prefix").
func padNum(n, width int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + fmt.Sprintf("%0*d", width-len(sign), n)
}
