// Package sfnterr defines the error kinds produced while parsing an SFNT
// font file: a read past the end of a byte buffer, an unrecognised binary
// format, a required table that is absent, or data that violates a format
// invariant.
package sfnterr

import "fmt"

// TruncatedError indicates that a read reached past the end of the byte
// buffer or a sub-view of it.
type TruncatedError struct {
	SubSystem string
	Reason    string
}

func (err *TruncatedError) Error() string {
	return fmt.Sprintf("%s: truncated: %s", err.SubSystem, err.Reason)
}

// UnsupportedFormatError indicates that the SFNT magic number, a cmap
// subtable format, or an outline format is not one this package decodes.
type UnsupportedFormatError struct {
	SubSystem string
	Feature   string
}

func (err *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: %s not supported", err.SubSystem, err.Feature)
}

// MissingTableError indicates that a required table is absent from the
// font's table directory.
type MissingTableError struct {
	Table string
}

func (err *MissingTableError) Error() string {
	return fmt.Sprintf("sfnt: missing required table %q", err.Table)
}

// MalformedError indicates that decoded data violates a format invariant,
// such as a bad magic number or a non-monotone loca table.
type MalformedError struct {
	SubSystem string
	Reason    string
}

func (err *MalformedError) Error() string {
	return fmt.Sprintf("%s: malformed: %s", err.SubSystem, err.Reason)
}

// IsTruncated reports whether err is a *TruncatedError.
func IsTruncated(err error) bool {
	_, ok := err.(*TruncatedError)
	return ok
}

// IsUnsupportedFormat reports whether err is an *UnsupportedFormatError.
func IsUnsupportedFormat(err error) bool {
	_, ok := err.(*UnsupportedFormatError)
	return ok
}

// IsMissingTable reports whether err is a *MissingTableError.
func IsMissingTable(err error) bool {
	_, ok := err.(*MissingTableError)
	return ok
}

// IsMalformed reports whether err is a *MalformedError.
func IsMalformed(err error) bool {
	_, ok := err.(*MalformedError)
	return ok
}
