// Package table decodes the SFNT table directory: the fixed header at the
// start of every TrueType/OpenType font file that lists the tables the file
// contains and where to find them.
package table

import (
	"sort"

	"golang.org/x/exp/slices"

	"github.com/aslpavel/icon-viewer/sfnt/sfnterr"
	"github.com/aslpavel/icon-viewer/sfnt/sfntio"
)

// Scaler type tags found at offset 0 of an SFNT file, identifying the outline
// format the file's glyf/CFF table uses.
const (
	ScalerTypeTrueType = 0x00010000
	ScalerTypeCFF      = 0x4F54544F
	ScalerTypeApple    = 0x74727565
)

// Kind classifies a font by its outline format.
type Kind int

const (
	KindUnknown Kind = iota
	KindTrueType
	KindOpenTypeCFF
)

func (k Kind) String() string {
	switch k {
	case KindTrueType:
		return "truetype"
	case KindOpenTypeCFF:
		return "opentype-cff"
	default:
		return "unknown"
	}
}

// Record locates one table within the font's byte buffer.
type Record struct {
	Tag    string
	Offset uint32
	Length uint32
}

// Header is the parsed table directory.
type Header struct {
	ScalerType uint32
	Records    map[string]Record
}

// Kind reports the outline format implied by the header's scaler type.
func (h *Header) Kind() Kind {
	switch h.ScalerType {
	case ScalerTypeTrueType, ScalerTypeApple:
		return KindTrueType
	case ScalerTypeCFF:
		return KindOpenTypeCFF
	default:
		return KindUnknown
	}
}

// Has reports whether every named table is present.
func (h *Header) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := h.Records[name]; !ok {
			return false
		}
	}
	return true
}

// Find returns the directory record for the named table.
func (h *Header) Find(name string) (Record, error) {
	rec, ok := h.Records[name]
	if !ok {
		return Record{}, &sfnterr.MissingTableError{Table: name}
	}
	return rec, nil
}

// Tags returns the tags of every table listed in the directory, sorted.
func (h *Header) Tags() []string {
	tags := make([]string, 0, len(h.Records))
	for tag := range h.Records {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// maxTableCount bounds the number of directory entries ReadHeader will trust,
// guarding against a numTables field used to force a huge allocation.
const maxTableCount = 280

// ReadHeader parses the table directory from the start of buf.
func ReadHeader(buf []byte) (*Header, error) {
	r := sfntio.NewReader(buf)

	scalerType, err := r.U32()
	if err != nil {
		return nil, err
	}
	switch scalerType {
	case ScalerTypeTrueType, ScalerTypeCFF, ScalerTypeApple:
	default:
		return nil, &sfnterr.UnsupportedFormatError{SubSystem: "sfnt/table", Feature: "scaler type"}
	}
	numTables, err := r.U16()
	if err != nil {
		return nil, err
	}
	if numTables > maxTableCount {
		return nil, &sfnterr.MalformedError{
			SubSystem: "sfnt/table",
			Reason:    "too many tables in directory",
		}
	}
	// searchRange, entrySelector, rangeShift
	r.Advance(6)

	h := &Header{
		ScalerType: scalerType,
		Records:    make(map[string]Record, numTables),
	}

	type span struct {
		start, end uint32
	}
	var coverage []span

	for i := 0; i < int(numTables); i++ {
		tag, err := r.String(4)
		if err != nil {
			return nil, err
		}
		r.Advance(4) // checksum
		offset, err := r.U32()
		if err != nil {
			return nil, err
		}
		length, err := r.U32()
		if err != nil {
			return nil, err
		}
		h.Records[tag] = Record{Tag: tag, Offset: offset, Length: length}
		coverage = append(coverage, span{start: offset, end: offset + length})
	}

	if len(h.Records) == 0 {
		return nil, &sfnterr.MalformedError{
			SubSystem: "sfnt/table",
			Reason:    "directory lists no tables",
		}
	}

	sort.Slice(coverage, func(i, j int) bool {
		if coverage[i].start != coverage[j].start {
			return coverage[i].start < coverage[j].start
		}
		return coverage[i].end < coverage[j].end
	})
	for i := 1; i < len(coverage); i++ {
		if coverage[i-1].end > coverage[i].start {
			return nil, &sfnterr.MalformedError{
				SubSystem: "sfnt/table",
				Reason:    "overlapping table records",
			}
		}
	}
	if last := coverage[len(coverage)-1]; int(last.end) > len(buf) {
		return nil, &sfnterr.TruncatedError{
			SubSystem: "sfnt/table",
			Reason:    "table extends past end of buffer",
		}
	}

	return h, nil
}

// Bytes returns the byte range a record describes, bounds-checked against
// buf.
func (rec Record) Bytes(buf []byte) ([]byte, error) {
	start, end := int(rec.Offset), int(rec.Offset)+int(rec.Length)
	if start < 0 || end > len(buf) || end < start {
		return nil, &sfnterr.TruncatedError{
			SubSystem: "sfnt/table",
			Reason:    "table " + rec.Tag + " out of range",
		}
	}
	return buf[start:end], nil
}
