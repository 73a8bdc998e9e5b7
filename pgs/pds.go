package pgs

import (
	"github.com/pgsparse/pgs/pgserr"
	"github.com/pgsparse/pgs/pgsio"
)

// PaletteEntry is one 5-byte YCbCr-plus-alpha palette slot.
type PaletteEntry struct {
	ID           uint8
	Luminance    uint8 // Y
	ChromaRed    uint8 // Cr
	ChromaBlue   uint8 // Cb
	Transparency uint8 // alpha
}

// PDS is a parsed Palette Definition Segment.
type PDS struct {
	Header  Header
	ID      uint8
	Version uint8
	Entries []PaletteEntry
}

// parsePDS reads palette_id and palette_version, then derives the entry
// count from the remaining body bytes with the formula
// (remaining - 2) / 5 — a quirk inherited from the source and preserved
// verbatim; see DESIGN.md Open Question 2.
func parsePDS(header Header, data []byte) (*PDS, error) {
	if len(data) < int(header.SegmentLength) {
		return nil, pgserr.ErrInvalidSegmentDataLength
	}
	buf := pgsio.NewMemoryBuffer(data)

	pds := &PDS{Header: header}
	var err error
	if pds.ID, err = buf.ReadU8(); err != nil {
		return nil, err
	}
	if pds.Version, err = buf.ReadU8(); err != nil {
		return nil, err
	}

	remaining := int(header.SegmentLength) - 2
	count := (remaining - 2) / 5
	if count < 0 {
		count = 0
	}

	pds.Entries = make([]PaletteEntry, count)
	for i := range pds.Entries {
		e := &pds.Entries[i]
		if e.ID, err = buf.ReadU8(); err != nil {
			return nil, err
		}
		if e.Luminance, err = buf.ReadU8(); err != nil {
			return nil, err
		}
		if e.ChromaRed, err = buf.ReadU8(); err != nil {
			return nil, err
		}
		if e.ChromaBlue, err = buf.ReadU8(); err != nil {
			return nil, err
		}
		if e.Transparency, err = buf.ReadU8(); err != nil {
			return nil, err
		}
	}

	return pds, nil
}
