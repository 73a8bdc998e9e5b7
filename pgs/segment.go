package pgs

import "fmt"

// Segment is one parsed unit of the byte stream: exactly one of PCS, WDS,
// PDS, ODS or the synthetic End marker is set.
type Segment struct {
	PCS *PCS
	WDS *WDS
	PDS *PDS
	ODS *ODS
	End bool
}

// Type reports which variant this Segment holds.
func (s Segment) Type() SegmentType {
	switch {
	case s.PCS != nil:
		return SegmentTypePCS
	case s.WDS != nil:
		return SegmentTypeWDS
	case s.PDS != nil:
		return SegmentTypePDS
	case s.ODS != nil:
		return SegmentTypeODS
	default:
		return SegmentTypeEND
	}
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment{%s}", s.Type())
}
