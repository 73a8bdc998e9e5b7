package pgs

import (
	"github.com/pgsparse/pgs/pgserr"
	"github.com/pgsparse/pgs/pgsio"
)

// SequenceFlag marks an ODS's place in a (possibly fragmented) object sequence.
type SequenceFlag uint8

const (
	SequenceUnknown SequenceFlag = 0x00
	SequenceFirst   SequenceFlag = 0x80
	SequenceLast    SequenceFlag = 0x40
	SequenceBoth    SequenceFlag = 0xC0
)

func sequenceFlagFromByte(b uint8) SequenceFlag {
	switch b {
	case 0x40:
		return SequenceLast
	case 0x80:
		return SequenceFirst
	case 0xC0:
		return SequenceBoth
	default:
		return SequenceUnknown
	}
}

func (f SequenceFlag) String() string {
	switch f {
	case SequenceFirst:
		return "First"
	case SequenceLast:
		return "Last"
	case SequenceBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

// ODS is a parsed Object Definition Segment: the RLE-encoded subtitle image.
type ODS struct {
	Header     Header
	ObjectID   uint16
	Version    uint8
	Sequence   SequenceFlag
	DataLength uint32
	Width      uint16
	Height     uint16
	// ObjectData is the raw RLE payload, exactly DataLength bytes.
	ObjectData []byte
}

func parseODS(header Header, data []byte) (*ODS, error) {
	if len(data) < int(header.SegmentLength) {
		return nil, pgserr.ErrInvalidSegmentDataLength
	}
	buf := pgsio.NewMemoryBuffer(data)

	ods := &ODS{Header: header}
	var err error
	if ods.ObjectID, err = buf.ReadU16(pgsio.BigEndian); err != nil {
		return nil, err
	}
	if ods.Version, err = buf.ReadU8(); err != nil {
		return nil, err
	}
	seqByte, err := buf.ReadU8()
	if err != nil {
		return nil, err
	}
	ods.Sequence = sequenceFlagFromByte(seqByte)

	rawLen, err := buf.ReadU24(pgsio.BigEndian)
	if err != nil {
		return nil, err
	}
	// object_data_length includes the embedded width/height fields below.
	ods.DataLength = rawLen - 4

	if ods.Sequence == SequenceFirst || ods.Sequence == SequenceBoth {
		if ods.Width, err = buf.ReadU16(pgsio.BigEndian); err != nil {
			return nil, err
		}
		if ods.Height, err = buf.ReadU16(pgsio.BigEndian); err != nil {
			return nil, err
		}
	}

	ods.ObjectData, err = buf.ReadN(int(ods.DataLength))
	if err != nil {
		return nil, err
	}

	return ods, nil
}
