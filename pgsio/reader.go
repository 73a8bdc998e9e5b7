package pgsio

import (
	"io"
	"os"

	"github.com/pgsparse/pgs/pgserr"
)

// Reader is the byte-source contract every layer of the parser is built on:
// sequential big-/little-endian integer reads, a bounded "N more bytes"
// primitive, and a seek/pos/len triplet. pgs.ParseReader accepts anything
// implementing it, so the stream parser is agnostic to whether the bytes
// come from a file or an in-memory buffer.
type Reader interface {
	ReadU8() (uint8, error)
	ReadU16(order ByteOrder) (uint16, error)
	ReadU24(order ByteOrder) (uint32, error)
	ReadU32(order ByteOrder) (uint32, error)
	// ReadExact fills buf entirely or returns pgserr.ErrUnexpectedEOF.
	ReadExact(buf []byte) error
	// ReadN returns a freshly allocated copy of the next n bytes.
	ReadN(n int) ([]byte, error)

	Seek(to int) (int, error)
	Pos() (int, error)
	Len() (int, error)
	IsEOF() (bool, error)
}

// MemoryBuffer is a Reader over an in-memory byte slice. It is the workhorse
// used by every segment-body parser.
type MemoryBuffer struct {
	buf []byte
	pos int
}

// NewMemoryBuffer wraps buf for sequential reading from position 0.
func NewMemoryBuffer(buf []byte) *MemoryBuffer {
	return &MemoryBuffer{buf: buf}
}

func (m *MemoryBuffer) remaining() []byte {
	start := m.pos
	if start > len(m.buf) {
		start = len(m.buf)
	}
	return m.buf[start:]
}

func (m *MemoryBuffer) ReadExact(dst []byte) error {
	rem := m.remaining()
	if len(rem) < len(dst) {
		return pgserr.ErrUnexpectedEOF
	}
	copy(dst, rem[:len(dst)])
	m.pos += len(dst)
	return nil
}

func (m *MemoryBuffer) ReadN(n int) ([]byte, error) {
	out := make([]byte, n)
	if err := m.ReadExact(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MemoryBuffer) ReadU8() (uint8, error) {
	var buf [1]byte
	if err := m.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (m *MemoryBuffer) ReadU16(order ByteOrder) (uint16, error) {
	var buf [2]byte
	if err := m.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return order.Uint16(buf[:]), nil
}

func (m *MemoryBuffer) ReadU24(order ByteOrder) (uint32, error) {
	var buf [3]byte
	if err := m.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return order.Uint24(buf[:]), nil
}

func (m *MemoryBuffer) ReadU32(order ByteOrder) (uint32, error) {
	var buf [4]byte
	if err := m.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return order.Uint32(buf[:]), nil
}

func (m *MemoryBuffer) Seek(to int) (int, error) {
	m.pos = to
	return m.pos, nil
}

func (m *MemoryBuffer) Pos() (int, error) {
	return m.pos, nil
}

func (m *MemoryBuffer) Len() (int, error) {
	return len(m.buf), nil
}

func (m *MemoryBuffer) IsEOF() (bool, error) {
	return m.pos >= len(m.buf), nil
}

// FileSource is a Reader over an *os.File, bounds-checking every read against
// the file size the way the original's PgsFile does.
type FileSource struct {
	f    *os.File
	size int64
}

// OpenFile opens path for reading and stats it up front for bounds checking.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pgserr.Wrapf(err, "pgsio: open %s", path)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, pgserr.Wrapf(err, "pgsio: stat %s", path)
	}
	return &FileSource{f: f, size: info.Size()}, nil
}

// Close releases the underlying file handle.
func (fs *FileSource) Close() error {
	return fs.f.Close()
}

func (fs *FileSource) ReadExact(dst []byte) error {
	pos, err := fs.f.Seek(0, os.SEEK_CUR)
	if err != nil {
		return pgserr.Wrapf(err, "pgsio: seek")
	}
	if pos+int64(len(dst)) > fs.size {
		return pgserr.ErrUnexpectedEOF
	}
	if _, err := io.ReadFull(fs.f, dst); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return pgserr.ErrUnexpectedEOF
		}
		return pgserr.Wrapf(err, "pgsio: read")
	}
	return nil
}

func (fs *FileSource) ReadN(n int) ([]byte, error) {
	out := make([]byte, n)
	if err := fs.ReadExact(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (fs *FileSource) ReadU8() (uint8, error) {
	var buf [1]byte
	if err := fs.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (fs *FileSource) ReadU16(order ByteOrder) (uint16, error) {
	var buf [2]byte
	if err := fs.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return order.Uint16(buf[:]), nil
}

func (fs *FileSource) ReadU24(order ByteOrder) (uint32, error) {
	var buf [3]byte
	if err := fs.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return order.Uint24(buf[:]), nil
}

func (fs *FileSource) ReadU32(order ByteOrder) (uint32, error) {
	var buf [4]byte
	if err := fs.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return order.Uint32(buf[:]), nil
}

func (fs *FileSource) Seek(to int) (int, error) {
	pos, err := fs.f.Seek(int64(to), os.SEEK_SET)
	return int(pos), err
}

func (fs *FileSource) Pos() (int, error) {
	pos, err := fs.f.Seek(0, os.SEEK_CUR)
	return int(pos), err
}

func (fs *FileSource) Len() (int, error) {
	return int(fs.size), nil
}

func (fs *FileSource) IsEOF() (bool, error) {
	pos, err := fs.Pos()
	if err != nil {
		return false, err
	}
	return int64(pos) >= fs.size, nil
}
