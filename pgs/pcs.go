package pgs

import (
	"github.com/pgsparse/pgs/pgserr"
	"github.com/pgsparse/pgs/pgsio"
)

// CompositionState distinguishes a new display from a refresh or an update.
type CompositionState uint8

const (
	CompositionStateNormal           CompositionState = 0x00
	CompositionStateAcquisitionPoint CompositionState = 0x40
	CompositionStateEpochStart       CompositionState = 0x80
)

func compositionStateFromByte(b uint8) CompositionState {
	switch b {
	case 0x80:
		return CompositionStateEpochStart
	case 0x40:
		return CompositionStateAcquisitionPoint
	default:
		return CompositionStateNormal
	}
}

func (s CompositionState) String() string {
	switch s {
	case CompositionStateEpochStart:
		return "EpochStart"
	case CompositionStateAcquisitionPoint:
		return "AcquisitionPoint"
	default:
		return "Normal"
	}
}

// ObjectCroppedFlag indicates whether a composition object carries an
// explicit crop rectangle.
type ObjectCroppedFlag uint8

const (
	ObjectCroppedOff   ObjectCroppedFlag = 0x00
	ObjectCroppedForce ObjectCroppedFlag = 0x40
)

func objectCroppedFromByte(b uint8) ObjectCroppedFlag {
	if b == 0x40 {
		return ObjectCroppedForce
	}
	return ObjectCroppedOff
}

// CompositionObjectCrop is the optional four-field crop rectangle carried by
// a composition object when ObjectCroppedFlag is Force.
type CompositionObjectCrop struct {
	X      uint16
	Y      uint16
	Width  uint16
	Height uint16
}

// CompositionObject places one ODS/window pair within a PCS.
type CompositionObject struct {
	ObjectID           uint16
	WindowID           uint8
	Cropped            ObjectCroppedFlag
	HorizontalPosition uint16
	VerticalPosition   uint16
	Crop               *CompositionObjectCrop
}

// PCS is a parsed Presentation Composition Segment.
type PCS struct {
	Header            Header
	Width             uint16
	Height            uint16
	FrameRate         uint8
	CompositionNumber uint16
	CompositionState  CompositionState
	PaletteUpdate     bool
	PaletteID         uint8
	Objects           []CompositionObject
}

func parsePCS(header Header, data []byte) (*PCS, error) {
	if len(data) < int(header.SegmentLength) {
		return nil, pgserr.ErrInvalidSegmentDataLength
	}
	buf := pgsio.NewMemoryBuffer(data)

	pcs := &PCS{Header: header}
	var err error
	if pcs.Width, err = buf.ReadU16(pgsio.BigEndian); err != nil {
		return nil, err
	}
	if pcs.Height, err = buf.ReadU16(pgsio.BigEndian); err != nil {
		return nil, err
	}
	if pcs.FrameRate, err = buf.ReadU8(); err != nil {
		return nil, err
	}
	if pcs.CompositionNumber, err = buf.ReadU16(pgsio.BigEndian); err != nil {
		return nil, err
	}
	stateByte, err := buf.ReadU8()
	if err != nil {
		return nil, err
	}
	pcs.CompositionState = compositionStateFromByte(stateByte)
	pufByte, err := buf.ReadU8()
	if err != nil {
		return nil, err
	}
	pcs.PaletteUpdate = pufByte&0x80 != 0
	if pcs.PaletteID, err = buf.ReadU8(); err != nil {
		return nil, err
	}
	objCount, err := buf.ReadU8()
	if err != nil {
		return nil, err
	}

	pcs.Objects = make([]CompositionObject, objCount)
	for i := range pcs.Objects {
		obj := &pcs.Objects[i]
		if obj.ObjectID, err = buf.ReadU16(pgsio.BigEndian); err != nil {
			return nil, err
		}
		if obj.WindowID, err = buf.ReadU8(); err != nil {
			return nil, err
		}
		croppedByte, err := buf.ReadU8()
		if err != nil {
			return nil, err
		}
		obj.Cropped = objectCroppedFromByte(croppedByte)
		if obj.HorizontalPosition, err = buf.ReadU16(pgsio.BigEndian); err != nil {
			return nil, err
		}
		if obj.VerticalPosition, err = buf.ReadU16(pgsio.BigEndian); err != nil {
			return nil, err
		}
		if obj.Cropped == ObjectCroppedForce {
			crop := &CompositionObjectCrop{}
			if crop.X, err = buf.ReadU16(pgsio.BigEndian); err != nil {
				return nil, err
			}
			if crop.Y, err = buf.ReadU16(pgsio.BigEndian); err != nil {
				return nil, err
			}
			if crop.Width, err = buf.ReadU16(pgsio.BigEndian); err != nil {
				return nil, err
			}
			if crop.Height, err = buf.ReadU16(pgsio.BigEndian); err != nil {
				return nil, err
			}
			obj.Crop = crop
		}
	}

	return pcs, nil
}
