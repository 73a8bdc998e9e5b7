package pgs

import (
	"testing"

	"github.com/pgsparse/pgs/pgserr"
	"github.com/stretchr/testify/require"
)

func TestParsePCSRoundTrip(t *testing.T) {
	seg := buildSegment(SegmentTypePCS, 10, 20, buildPCSBody(1920, 1080, 2))
	h, err := parseHeader(seg)
	require.NoError(t, err)
	pcs, err := parsePCS(h, seg[HeaderLength:])
	require.NoError(t, err)
	require.Equal(t, uint16(1920), pcs.Width)
	require.Equal(t, uint16(1080), pcs.Height)
	require.Len(t, pcs.Objects, 2)
	require.Equal(t, CompositionStateEpochStart, pcs.CompositionState)
}

func TestParsePCSTruncatedBody(t *testing.T) {
	seg := buildSegment(SegmentTypePCS, 0, 0, buildPCSBody(1, 1, 1))
	h, err := parseHeader(seg)
	require.NoError(t, err)
	body := seg[HeaderLength:]
	_, err = parsePCS(h, body[:len(body)-1])
	require.Error(t, err)
}

func TestParseWDSRoundTrip(t *testing.T) {
	seg := buildSegment(SegmentTypeWDS, 0, 0, buildWDSBody(3))
	h, err := parseHeader(seg)
	require.NoError(t, err)
	wds, err := parseWDS(h, seg[HeaderLength:])
	require.NoError(t, err)
	require.Len(t, wds.Windows, 3)
	require.Equal(t, uint16(100), wds.Windows[0].Width)
}

// PDS entry count follows (remaining-2)/5 exactly, never fewer or more.
func TestParsePDSEntryCountInvariant(t *testing.T) {
	entries := []PaletteEntry{
		{ID: 0, Luminance: 1, ChromaRed: 2, ChromaBlue: 3, Transparency: 4},
		{ID: 1, Luminance: 5, ChromaRed: 6, ChromaBlue: 7, Transparency: 8},
		{ID: 2, Luminance: 9, ChromaRed: 10, ChromaBlue: 11, Transparency: 12},
	}
	seg := buildSegment(SegmentTypePDS, 0, 0, buildPDSBody(7, 1, entries))
	h, err := parseHeader(seg)
	require.NoError(t, err)
	pds, err := parsePDS(h, seg[HeaderLength:])
	require.NoError(t, err)
	require.Len(t, pds.Entries, 3)
	require.Equal(t, entries, pds.Entries)
}

func TestParsePDSEmptyPalette(t *testing.T) {
	seg := buildSegment(SegmentTypePDS, 0, 0, buildPDSBody(0, 0, nil))
	h, err := parseHeader(seg)
	require.NoError(t, err)
	pds, err := parsePDS(h, seg[HeaderLength:])
	require.NoError(t, err)
	require.Empty(t, pds.Entries)
}

// Width/Height are present only for First and Both sequence flags.
func TestParseODSWidthHeightOnlyOnFirstOrBoth(t *testing.T) {
	rle := []byte{0x00, 0x00}

	seg := buildSegment(SegmentTypeODS, 0, 0, buildODSBody(1, SequenceFirst, 640, 480, rle))
	h, err := parseHeader(seg)
	require.NoError(t, err)
	ods, err := parseODS(h, seg[HeaderLength:])
	require.NoError(t, err)
	require.Equal(t, uint16(640), ods.Width)
	require.Equal(t, uint16(480), ods.Height)

	seg = buildSegment(SegmentTypeODS, 0, 0, buildODSBody(1, SequenceLast, 0, 0, rle))
	h, err = parseHeader(seg)
	require.NoError(t, err)
	ods, err = parseODS(h, seg[HeaderLength:])
	require.NoError(t, err)
	require.Equal(t, uint16(0), ods.Width)
	require.Equal(t, uint16(0), ods.Height)
}

func TestParseODSDataLengthExcludesDimensionField(t *testing.T) {
	rle := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	seg := buildSegment(SegmentTypeODS, 0, 0, buildODSBody(9, SequenceBoth, 10, 10, rle))
	h, err := parseHeader(seg)
	require.NoError(t, err)
	ods, err := parseODS(h, seg[HeaderLength:])
	require.NoError(t, err)
	require.Equal(t, uint32(len(rle)), ods.DataLength)
	require.Equal(t, rle, ods.ObjectData)
}

func TestParseODSTruncatedFails(t *testing.T) {
	seg := buildSegment(SegmentTypeODS, 0, 0, buildODSBody(1, SequenceBoth, 1, 1, []byte{0x00, 0x00}))
	h, err := parseHeader(seg)
	require.NoError(t, err)
	body := seg[HeaderLength:]
	_, err = parseODS(h, body[:len(body)-3])
	require.Error(t, err)
}

func TestSegmentTypeString(t *testing.T) {
	require.Equal(t, "Palette Definition Segment", SegmentTypePDS.String())
	require.Equal(t, "Error in Segment", SegmentTypeERR.String())
}

func TestSegmentTypeUnrecognizedByteIsERR(t *testing.T) {
	require.Equal(t, SegmentTypeERR, segmentTypeFromByte(0x7F))
}

func TestHeaderErrorCodes(t *testing.T) {
	_, err := parseHeader(nil)
	require.ErrorIs(t, err, pgserr.ErrInvalidSegmentDataLength)
}
