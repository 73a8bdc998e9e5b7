package pgs

import (
	"github.com/pgsparse/pgs/pgserr"
	"github.com/pgsparse/pgs/pgsio"
)

// magic is the leading 16 bits of every PGS segment header, ASCII "PG".
const magic = 0x5047

// HeaderLength is the fixed on-wire size of a segment header in bytes.
const HeaderLength = 13

// SegmentType is the closed tagged variant over the five PGS segment kinds,
// plus the ERR sentinel for an unrecognized tag byte.
type SegmentType uint8

const (
	SegmentTypePDS SegmentType = 0x14
	SegmentTypeODS SegmentType = 0x15
	SegmentTypePCS SegmentType = 0x16
	SegmentTypeWDS SegmentType = 0x17
	SegmentTypeEND SegmentType = 0x80
	SegmentTypeERR SegmentType = 0x00
)

func segmentTypeFromByte(b uint8) SegmentType {
	switch SegmentType(b) {
	case SegmentTypePDS, SegmentTypeODS, SegmentTypePCS, SegmentTypeWDS, SegmentTypeEND:
		return SegmentType(b)
	default:
		return SegmentTypeERR
	}
}

func (t SegmentType) String() string {
	switch t {
	case SegmentTypePDS:
		return "Palette Definition Segment"
	case SegmentTypeODS:
		return "Object Definition Segment"
	case SegmentTypePCS:
		return "Presentation Composition Segment"
	case SegmentTypeWDS:
		return "Window Definition Segment"
	case SegmentTypeEND:
		return "End of Display Set Segment"
	default:
		return "Error in Segment"
	}
}

// Header is the fixed 13-byte prefix of every PGS segment.
type Header struct {
	Type                 SegmentType
	SegmentLength        uint16
	PresentationTimeTics uint32
	DecodingTimeTics     uint32
}

// parseHeader decodes exactly HeaderLength bytes. An unrecognized type tag
// still yields a valid Header with Type == SegmentTypeERR; it is the stream
// parser's responsibility to treat that as a hard failure.
func parseHeader(data []byte) (Header, error) {
	if len(data) < HeaderLength {
		return Header{}, pgserr.ErrInvalidSegmentDataLength
	}
	buf := pgsio.NewMemoryBuffer(data)

	pg, err := buf.ReadU16(pgsio.BigEndian)
	if err != nil {
		return Header{}, err
	}
	if pg != magic {
		return Header{}, pgserr.ErrReadInvalidSegment
	}

	pts, err := buf.ReadU32(pgsio.BigEndian)
	if err != nil {
		return Header{}, err
	}
	dts, err := buf.ReadU32(pgsio.BigEndian)
	if err != nil {
		return Header{}, err
	}
	typeByte, err := buf.ReadU8()
	if err != nil {
		return Header{}, err
	}
	size, err := buf.ReadU16(pgsio.BigEndian)
	if err != nil {
		return Header{}, err
	}

	return Header{
		Type:                 segmentTypeFromByte(typeByte),
		SegmentLength:        size,
		PresentationTimeTics: pts,
		DecodingTimeTics:     dts,
	}, nil
}
