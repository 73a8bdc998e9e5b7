package pgs

import (
	"github.com/pgsparse/pgs/pgserr"
	"github.com/pgsparse/pgs/pgsio"
)

// Window is one display-window record within a WDS.
type Window struct {
	ID     uint8
	X      uint16
	Y      uint16
	Width  uint16
	Height uint16
}

// WDS is a parsed Window Definition Segment.
type WDS struct {
	Header  Header
	Windows []Window
}

func parseWDS(header Header, data []byte) (*WDS, error) {
	if len(data) < int(header.SegmentLength) {
		return nil, pgserr.ErrInvalidSegmentDataLength
	}
	buf := pgsio.NewMemoryBuffer(data)

	count, err := buf.ReadU8()
	if err != nil {
		return nil, err
	}

	windows := make([]Window, count)
	for i := range windows {
		w := &windows[i]
		if w.ID, err = buf.ReadU8(); err != nil {
			return nil, err
		}
		if w.X, err = buf.ReadU16(pgsio.BigEndian); err != nil {
			return nil, err
		}
		if w.Y, err = buf.ReadU16(pgsio.BigEndian); err != nil {
			return nil, err
		}
		if w.Width, err = buf.ReadU16(pgsio.BigEndian); err != nil {
			return nil, err
		}
		if w.Height, err = buf.ReadU16(pgsio.BigEndian); err != nil {
			return nil, err
		}
	}

	return &WDS{Header: header, Windows: windows}, nil
}
