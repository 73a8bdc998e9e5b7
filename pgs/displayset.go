package pgs

import "github.com/pgsparse/pgs/pgserr"

// DisplaySetState classifies which of the four constituent segments a
// DisplaySet received before its terminating END.
type DisplaySetState int

const (
	DisplaySetIncomplete DisplaySetState = iota
	DisplaySetEmptyFrame
	DisplaySetComplete
)

func (s DisplaySetState) String() string {
	switch s {
	case DisplaySetComplete:
		return "Complete"
	case DisplaySetEmptyFrame:
		return "EmptyFrame"
	default:
		return "Incomplete"
	}
}

// DisplaySet groups at most one each of {PCS, WDS, PDS, ODS} collected
// between two consecutive END markers.
type DisplaySet struct {
	pcs *PCS
	wds *WDS
	pds *PDS
	ods *ODS
}

// PCS returns the presentation composition segment, if any.
func (d DisplaySet) PCS() *PCS { return d.pcs }

// WDS returns the window definition segment, if any.
func (d DisplaySet) WDS() *WDS { return d.wds }

// PDS returns the palette definition segment, if any.
func (d DisplaySet) PDS() *PDS { return d.pds }

// ODS returns the object definition segment, if any.
func (d DisplaySet) ODS() *ODS { return d.ods }

// State classifies completeness per the data model in SPEC_FULL.md §3.
func (d DisplaySet) State() DisplaySetState {
	if d.pcs != nil && d.wds != nil {
		if d.pds != nil && d.ods != nil {
			return DisplaySetComplete
		}
		return DisplaySetEmptyFrame
	}
	return DisplaySetIncomplete
}

// RLEPayload returns the ODS's raw run-length payload. It fails with
// pgserr.ErrIncompleteDisplaySet unless State() == DisplaySetComplete.
func (d DisplaySet) RLEPayload() ([]byte, error) {
	if d.State() != DisplaySetComplete {
		return nil, pgserr.ErrIncompleteDisplaySet
	}
	return d.ods.ObjectData, nil
}

// DecodedImage decodes the ODS's RLE payload into a height x width matrix of
// packed pixel values using the display set's palette. gray selects the
// 8-bit-replicated grayscale form over ARGB.
func (d DisplaySet) DecodedImage(gray bool) ([][]uint32, error) {
	if d.State() != DisplaySetComplete {
		return nil, pgserr.ErrIncompleteDisplaySet
	}
	return decodeRLE(d.pds, d.ods, gray)
}

// accumulator is the assembler's mutable per-epoch state: the latest segment
// of each kind seen since the previous END, overwritten as later segments of
// the same kind arrive (latest wins within a display set).
type accumulator struct {
	pcs *PCS
	wds *WDS
	pds *PDS
	ods *ODS
}

func (a *accumulator) apply(seg Segment) {
	switch {
	case seg.PCS != nil:
		a.pcs = seg.PCS
	case seg.WDS != nil:
		a.wds = seg.WDS
	case seg.PDS != nil:
		a.pds = seg.PDS
	case seg.ODS != nil:
		a.ods = seg.ODS
	}
}

func (a *accumulator) snapshot() DisplaySet {
	return DisplaySet{pcs: a.pcs, wds: a.wds, pds: a.pds, ods: a.ods}
}

func (a *accumulator) clear() {
	*a = accumulator{}
}

// assembleDisplaySets folds an ordered segment sequence into display sets
// bounded by END markers. Trailing segments with no terminating END are
// discarded — there is no implicit flush.
func assembleDisplaySets(segments []Segment) []DisplaySet {
	var sets []DisplaySet
	var acc accumulator
	for _, seg := range segments {
		if seg.End {
			sets = append(sets, acc.snapshot())
			acc.clear()
			continue
		}
		acc.apply(seg)
	}
	return sets
}
