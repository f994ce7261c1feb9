// Package sfntio implements a positioned, bounds-checked view over an
// immutable in-memory byte buffer, with the big-endian primitive reads an
// SFNT table decoder needs.
//
// A Reader never copies the underlying buffer: View and Read hand back
// sub-slices of the same backing array, so decoded tables may borrow from
// the font's byte buffer for as long as the font itself is kept alive.
package sfntio

import (
	"time"

	"github.com/aslpavel/icon-viewer/sfnt/sfnterr"
)

// sfntEpoch is 1904-01-01 00:00:00 UTC expressed as a Unix timestamp, the
// epoch "long date" fields in the head table are measured from.
const sfntEpoch int64 = -2082844800

// Reader is a cursor over a byte slice.
type Reader struct {
	buf    []byte
	cursor int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the number of bytes in the reader's buffer.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Tell returns the current cursor position.
func (r *Reader) Tell() int {
	return r.cursor
}

// Seek moves the cursor to p. If absolute is false, p is relative to the
// current cursor; a negative p combined with absolute means an offset from
// the end of the buffer. The result is always clamped to [0, Len()].
func (r *Reader) Seek(p int, absolute bool) {
	target := p
	if !absolute {
		target = r.cursor + p
	} else if p < 0 {
		target = r.Len() + p
	}
	r.cursor = clamp(target, 0, r.Len())
}

// Advance moves the cursor forward by n bytes (n may be negative), clamped
// to [0, Len()].
func (r *Reader) Advance(n int) {
	r.cursor = clamp(r.cursor+n, 0, r.Len())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// View returns an independent Reader over the sub-slice [start, end) of the
// underlying buffer. Out-of-range arguments are clamped rather than
// reported as errors, matching the clamped-seek semantics of Advance.
func (r *Reader) View(start, end int) *Reader {
	start = clamp(start, 0, r.Len())
	end = clamp(end, start, r.Len())
	return &Reader{buf: r.buf[start:end]}
}

// Read returns a zero-copy view of the next n bytes and advances the
// cursor by n. It fails with TRUNCATED if fewer than n bytes remain.
func (r *Reader) Read(n int) ([]byte, error) {
	if n < 0 || r.cursor+n > r.Len() {
		return nil, r.truncated("read")
	}
	b := r.buf[r.cursor : r.cursor+n]
	r.cursor += n
	return b, nil
}

func (r *Reader) truncated(op string) error {
	return &sfnterr.TruncatedError{
		SubSystem: "sfnt/sfntio",
		Reason:    op + " past end of buffer",
	}
}

// U8 reads an unsigned 8-bit integer.
func (r *Reader) U8() (uint8, error) {
	b, err := r.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// I8 reads a signed 8-bit integer.
func (r *Reader) I8() (int8, error) {
	v, err := r.U8()
	return int8(v), err
}

// U16 reads a big-endian unsigned 16-bit integer.
func (r *Reader) U16() (uint16, error) {
	b, err := r.Read(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// I16 reads a big-endian signed 16-bit integer.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// U32 reads a big-endian unsigned 32-bit integer.
func (r *Reader) U32() (uint32, error) {
	b, err := r.Read(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// I32 reads a big-endian signed 32-bit integer.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// U64 reads a big-endian unsigned 64-bit integer.
func (r *Reader) U64() (uint64, error) {
	b, err := r.Read(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

// I64 reads a big-endian signed 64-bit integer.
func (r *Reader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err
}

// Fixed reads a 16.16 fixed-point number as i32/65536, preserving sign.
func (r *Reader) Fixed() (float64, error) {
	v, err := r.I32()
	if err != nil {
		return 0, err
	}
	return float64(v) / 65536, nil
}

// F2Dot14 reads a 2.14 fixed-point number as i16/16384, preserving sign.
func (r *Reader) F2Dot14() (float64, error) {
	v, err := r.I16()
	if err != nil {
		return 0, err
	}
	return float64(v) / 16384, nil
}

// LongDate reads an i64 count of seconds since 1904-01-01 and returns it as
// a time.Time in UTC.
func (r *Reader) LongDate() (time.Time, error) {
	v, err := r.I64()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(sfntEpoch+v, 0).UTC(), nil
}

// String reads n bytes and decodes them as UTF-8.
func (r *Reader) String(n int) (string, error) {
	b, err := r.Read(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
