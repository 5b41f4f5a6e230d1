package ax25

import "fmt"

// CheckAddresses re-validates every address in a decoded header's
// callsign form, returning one error per address that fails — the
// "origin and journey of this packet should receive some scrutiny"
// diagnostic, reimplemented as a return value instead of a printf
// (spec SPEC_FULL §6, supplemented feature).
//
// Grounded in ax25_check_addresses (ax25_pad.go), which re-parses each
// address's string form and reports whether the whole frame passed.
func CheckAddresses(h Header) []error {
	var errs []error

	check := func(label string, a Address) {
		if _, err := ParseAddress(a.String()); err != nil {
			errs = append(errs, fmt.Errorf("%s %q: %w", label, a.Callsign, err))
		}
	}

	check("destination", h.Destination)
	check("source", h.Source)
	for i, r := range h.Repeaters {
		check(fmt.Sprintf("repeater[%d]", i), r)
	}

	return errs
}
