package aprs

import (
	"cmp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// toCallEntry maps a destination-callsign prefix (e.g. "APXR") to a
// vendor/model string. Entries are matched longest-prefix-first.
type toCallEntry struct {
	ToCall string `yaml:"tocall"`
	Vendor string `yaml:"vendor"`
	Model  string `yaml:"model"`
}

// micEEntry maps a Mic-E comment prefix/suffix pair to a vendor/model
// string, one of the two tocalls.yaml sections covering the legacy
// (prefix + suffix) and current (suffix-only) Mic-E device markers.
type micEEntry struct {
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
	Vendor string `yaml:"vendor"`
	Model  string `yaml:"model"`
}

type deviceIDFile struct {
	ToCalls    []toCallEntry `yaml:"tocalls"`
	MicE       []micEEntry   `yaml:"mice"`
	MicELegacy []micEEntry   `yaml:"micelegacy"`
}

// DeviceIdentifier looks up a manufacturer/model string for a decoded
// position or Mic-E packet from its destination callsign or trailing
// comment suffix (spec SPEC_FULL §6, supplemented feature).
//
// Grounded in deviceid.go's tocalls/mice/micelegacy tables, loaded here
// from caller-supplied YAML bytes (the data file itself, aprs-deviceid's
// tocalls.yaml, rather than this package's own baked-in config) instead
// of the teacher's fixed on-disk search-path list, since this library
// has no file I/O of its own (spec §1).
type DeviceIdentifier struct {
	toCalls    []toCallEntry
	micE       []micEEntry
	micELegacy []micEEntry
}

// LoadDeviceIdentifier parses a tocalls.yaml document into a
// DeviceIdentifier, sorting each table so the most specific entry (the
// longest tocall, or the longest Mic-E suffix) is tried first.
func LoadDeviceIdentifier(yamlData []byte) (*DeviceIdentifier, error) {
	var f deviceIDFile
	if err := yaml.Unmarshal(yamlData, &f); err != nil {
		return nil, err
	}

	for i := range f.ToCalls {
		f.ToCalls[i].ToCall = strings.TrimRight(f.ToCalls[i].ToCall, "?*n")
	}

	slices.SortFunc(f.ToCalls, func(a, b toCallEntry) int {
		if c := cmp.Compare(len(b.ToCall), len(a.ToCall)); c != 0 {
			return c
		}
		return strings.Compare(a.ToCall, b.ToCall)
	})
	slices.SortFunc(f.MicELegacy, func(a, b micEEntry) int {
		return cmp.Compare(len(b.Suffix), len(a.Suffix))
	})
	slices.SortFunc(f.MicE, func(a, b micEEntry) int {
		return cmp.Compare(len(b.Suffix), len(a.Suffix))
	})

	return &DeviceIdentifier{toCalls: f.ToCalls, micE: f.MicE, micELegacy: f.MicELegacy}, nil
}

// DecodeDest returns the vendor/model string whose tocall prefix matches
// dest (a destination callsign with no SSID), or "" if none matches.
func (d *DeviceIdentifier) DecodeDest(dest string) string {
	for _, t := range d.toCalls {
		if strings.HasPrefix(dest, t.ToCall) {
			return vendorModel(t.Vendor, t.Model)
		}
	}
	return ""
}

// DecodeMicE returns the vendor/model string for a Mic-E packet, given
// its legacy-form prefix character (zero if none) and the comment
// suffix text, or "" if no entry matches.
func (d *DeviceIdentifier) DecodeMicE(prefix byte, comment string) string {
	for _, m := range d.micELegacy {
		if m.Prefix != "" && (prefix == 0 || m.Prefix[0] != prefix) {
			continue
		}
		if m.Suffix != "" && !strings.HasSuffix(comment, m.Suffix) {
			continue
		}
		return vendorModel(m.Vendor, m.Model)
	}
	for _, m := range d.micE {
		if m.Suffix != "" && !strings.HasSuffix(comment, m.Suffix) {
			continue
		}
		return vendorModel(m.Vendor, m.Model)
	}
	return ""
}

func vendorModel(vendor, model string) string {
	switch {
	case vendor != "" && model != "":
		return vendor + " " + model
	case vendor != "":
		return vendor
	default:
		return model
	}
}
