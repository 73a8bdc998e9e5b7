// Package pgs parses a Presentation Graphic Stream (PGS) subtitle bitstream
// into a structured sequence of display sets and decodes each into a pixel
// raster. See SPEC_FULL.md for the wire format and the invariants this
// package is bit-exact against.
package pgs

import (
	"github.com/pgsparse/pgs/pgserr"
	"github.com/pgsparse/pgs/pgsio"
	"github.com/rs/zerolog/log"
)

// ParsedStream holds every segment read from a PGS byte stream, in
// byte-stream order, and the display sets folded from them.
type ParsedStream struct {
	segments    []Segment
	displaySets []DisplaySet
}

// Segments returns every segment parsed from the stream, including the
// synthetic End marker, in byte-stream order.
func (p *ParsedStream) Segments() []Segment {
	return p.segments
}

// DisplaySets returns the display sets folded from the segment sequence, in
// END-terminator order.
func (p *ParsedStream) DisplaySets() []DisplaySet {
	return p.displaySets
}

// Parse opens path and parses it to completion.
func Parse(path string) (*ParsedStream, error) {
	src, err := pgsio.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return ParseReader(src)
}

// ParseReader parses an entire PGS stream from r, reading until EOF, and
// materializes every segment before returning. There is no partial/streaming
// mode: a parse error discards all accumulated results.
func ParseReader(r pgsio.Reader) (*ParsedStream, error) {
	var segments []Segment
	for {
		seg, err := readSegment(r)
		if err != nil {
			log.Error().Err(err).Msg("pgs: segment parse failed")
			return nil, err
		}
		segments = append(segments, seg)

		eof, err := r.IsEOF()
		if err != nil {
			return nil, err
		}
		if eof {
			break
		}
	}

	log.Debug().Int("segments", len(segments)).Msg("pgs: stream parsed")

	return &ParsedStream{
		segments:    segments,
		displaySets: assembleDisplaySets(segments),
	}, nil
}

// readSegment reads one header and, unless it is an END marker, its body,
// dispatching to the matching body parser. An unrecognized type tag aborts
// with pgserr.ErrReadInvalidSegment.
func readSegment(r pgsio.Reader) (Segment, error) {
	headerBytes, err := r.ReadN(HeaderLength)
	if err != nil {
		return Segment{}, err
	}
	header, err := parseHeader(headerBytes)
	if err != nil {
		return Segment{}, err
	}

	if header.Type == SegmentTypeERR {
		return Segment{}, pgserr.ErrReadInvalidSegment
	}

	log.Trace().Str("type", header.Type.String()).Uint16("length", header.SegmentLength).Msg("pgs: segment header")

	if header.Type == SegmentTypeEND {
		return Segment{End: true}, nil
	}

	body, err := r.ReadN(int(header.SegmentLength))
	if err != nil {
		return Segment{}, pgserr.Wrapf(err, "pgs: %s body", header.Type)
	}

	switch header.Type {
	case SegmentTypePCS:
		pcs, err := parsePCS(header, body)
		if err != nil {
			return Segment{}, pgserr.Wrapf(err, "pgs: presentation composition segment")
		}
		return Segment{PCS: pcs}, nil
	case SegmentTypeWDS:
		wds, err := parseWDS(header, body)
		if err != nil {
			return Segment{}, pgserr.Wrapf(err, "pgs: window definition segment")
		}
		return Segment{WDS: wds}, nil
	case SegmentTypePDS:
		pds, err := parsePDS(header, body)
		if err != nil {
			return Segment{}, pgserr.Wrapf(err, "pgs: palette definition segment")
		}
		return Segment{PDS: pds}, nil
	case SegmentTypeODS:
		ods, err := parseODS(header, body)
		if err != nil {
			return Segment{}, pgserr.Wrapf(err, "pgs: object definition segment")
		}
		return Segment{ODS: ods}, nil
	default:
		return Segment{End: true}, nil
	}
}
