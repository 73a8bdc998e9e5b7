// Package pgserr defines the closed set of errors the pgs parser can return.
package pgserr

import (
	"github.com/pkg/errors"
)

const (
	CodeUnexpectedEOF         = 1001
	CodeInvalidInputArray     = 1002
	CodeReadInvalidSegment    = 1003
	CodeInvalidSegmentDataLen = 1004
	CodeIncompleteDisplaySet  = 1005
	CodeOutOfBounds           = 1006
	CodeUnknown               = 9999
)

// Error is a typed PGS error carrying a stable numeric code alongside the message,
// the way common/errs does in the ancestor project.
type Error struct {
	Code int32
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is lets errors.Is match against the package sentinels regardless of wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newErr(code int32, msg string) error {
	return &Error{Code: code, Msg: msg}
}

var (
	// ErrUnexpectedEOF: the byte source cannot supply the requested bytes.
	ErrUnexpectedEOF = newErr(CodeUnexpectedEOF, "pgs: unexpected end of data")
	// ErrInvalidInputArray: a fixed-size slice conversion failed.
	ErrInvalidInputArray = newErr(CodeInvalidInputArray, "pgs: invalid input array")
	// ErrReadInvalidSegment: magic mismatch or unknown segment type tag.
	ErrReadInvalidSegment = newErr(CodeReadInvalidSegment, "pgs: invalid segment")
	// ErrInvalidSegmentDataLength: a body buffer is shorter than its header declares.
	ErrInvalidSegmentDataLength = newErr(CodeInvalidSegmentDataLen, "pgs: invalid segment data length")
	// ErrIncompleteDisplaySet: image accessors invoked on a non-Complete display set.
	ErrIncompleteDisplaySet = newErr(CodeIncompleteDisplaySet, "pgs: incomplete display set")
	// ErrOutOfBounds: an RLE run wrote past the decoded image's row or column bounds.
	ErrOutOfBounds = newErr(CodeOutOfBounds, "pgs: rle run out of image bounds")
)

// Code extracts the numeric code from an error, CodeUnknown for anything foreign, 0 for nil.
func Code(err error) int32 {
	if err == nil {
		return 0
	}
	e, ok := errors.Cause(err).(*Error)
	if !ok {
		return CodeUnknown
	}
	return e.Code
}

// Wrapf attaches positional context to a lower-layer error without inventing a
// second wrapping convention — pkg/errors is already a direct dependency.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
