package aprs

import "time"

// DFReport is an implementation-defined summary of a direction-finding
// position report: just enough to route a bearing/quality reading to a
// logging or mapping consumer without re-parsing the original position
// packet (spec §4.11, "DF report").
//
// The wire format table marks this row "(text)" rather than assigning it
// a DTI: it is not a payload type of its own but a convenience view over
// a PositionPacket that carries a DFExtension, grounded in the way
// decode_aprs.go folds DFS fields directly into the position record
// instead of emitting a separate decoded-packet struct.
type DFReport struct {
	DF       DFExtension
	Comment  string
	UnixTime int64
	HasTime  bool
}

// NewDFReport extracts a DFReport from a position packet, reporting
// ok=false if p carries no DF data extension. ref resolves p's
// timestamp (which carries no year, and for DHM/HMS forms no month or
// date of its own) to an absolute instant; callers normally pass
// time.Now().
func NewDFReport(p PositionPacket, ref time.Time) (DFReport, bool) {
	if p.DF == nil {
		return DFReport{}, false
	}
	r := DFReport{DF: *p.DF, Comment: p.Comment}
	if p.Timestamp != nil {
		r.UnixTime = p.Timestamp.Resolve(ref).Unix()
		r.HasTime = true
	}
	return r, true
}
