package ax25

// MaxRepeaters is the maximum number of digipeater addresses in a header
// (spec §3/§5: "repeater count ≤ 8").
const MaxRepeaters = 8

// Path is an ordered list of 0..8 repeater addresses (component C1).
type Path []Address

// NewPath validates a repeater list: at most MaxRepeaters entries, none
// with an empty callsign. Grounded in Path::new from spec §4.2.
func NewPath(addrs []Address) (Path, error) {
	if len(addrs) > MaxRepeaters {
		return nil, ErrTooManyRepeaters
	}
	for _, a := range addrs {
		if a.Callsign == "" {
			return nil, ErrInvalidInput
		}
	}
	out := make(Path, len(addrs))
	copy(out, addrs)
	return out, nil
}

// WithExtensionBits returns a copy of the path with Extension cleared on
// every entry except the last, which is set only if isLastInHeader is true
// (i.e. there is no source-less... there is always a source, so this is
// true exactly when the path is non-empty and nothing follows it).
func (p Path) WithExtensionBits(isLastInHeader bool) Path {
	out := make(Path, len(p))
	copy(out, p)
	for i := range out {
		out[i].Extension = isLastInHeader && i == len(out)-1
	}
	return out
}
