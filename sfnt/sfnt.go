// Package sfnt ties the individual table decoders together into a single
// Font facade: open a byte buffer once, then look up glyphs by code point
// or by ID and walk their outlines.
package sfnt

import (
	"log"
	"sync"

	"github.com/aslpavel/icon-viewer/outline"
	"github.com/aslpavel/icon-viewer/sfnt/cmap"
	"github.com/aslpavel/icon-viewer/sfnt/glyf"
	"github.com/aslpavel/icon-viewer/sfnt/head"
	"github.com/aslpavel/icon-viewer/sfnt/hhea"
	"github.com/aslpavel/icon-viewer/sfnt/hmtx"
	"github.com/aslpavel/icon-viewer/sfnt/maxp"
	"github.com/aslpavel/icon-viewer/sfnt/name"
	"github.com/aslpavel/icon-viewer/sfnt/post"
	"github.com/aslpavel/icon-viewer/sfnt/sfnterr"
	"github.com/aslpavel/icon-viewer/sfnt/table"
)

// Font is a parsed SFNT font backed by an in-memory byte buffer. A Font is
// safe for concurrent use once Open returns: every lazily decoded table is
// guarded by its own sync.Once.
type Font struct {
	buf    []byte
	header *table.Header
	logger *log.Logger

	maxp *maxp.Info
	name *name.Info

	headOnce sync.Once
	headErr  error
	head     *head.Info

	hheaOnce sync.Once
	hheaErr  error
	hhea     *hhea.Info

	glyfOnce sync.Once
	glyfErr  error
	glyf     *glyf.Table

	hmtxOnce sync.Once
	hmtxErr  error
	hmtx     *hmtx.Table

	postOnce sync.Once
	postErr  error
	post     *post.Info

	cmapOnce sync.Once
	cmapErr  error
	cmap     *cmap.Table
}

// Open parses the table directory and eagerly decodes maxp (for NumGlyphs)
// and name (used in display). Every other table, including head and hhea,
// is decoded lazily on first use and memoized.
func Open(buf []byte) (*Font, error) {
	header, err := table.ReadHeader(buf)
	if err != nil {
		return nil, err
	}

	f := &Font{buf: buf, header: header, logger: log.Default()}

	maxpRec, err := header.Find("maxp")
	if err != nil {
		return nil, err
	}
	maxpData, err := maxpRec.Bytes(buf)
	if err != nil {
		return nil, err
	}
	if f.maxp, err = maxp.Read(maxpData); err != nil {
		return nil, err
	}

	nameRec, err := header.Find("name")
	if err != nil {
		return nil, err
	}
	nameData, err := nameRec.Bytes(buf)
	if err != nil {
		return nil, err
	}
	if f.name, err = name.Read(nameData); err != nil {
		return nil, err
	}

	return f, nil
}

// SetLogger redirects the diagnostics Font emits for decode problems that
// are skipped rather than propagated: a cmap encoding record that fails to
// decode (the next less-preferred record is tried instead), and a composite
// glyph component that fails to decode or walk. The format 4 cmap segments
// that sfnt/cmap skips are logged through the standard log package and are
// not redirected. The default logs to log.Default().
func (f *Font) SetLogger(l *log.Logger) {
	f.logger = l
}

// Kind reports the font's outline format.
func (f *Font) Kind() table.Kind {
	return f.header.Kind()
}

// TableTags lists the tags of every table present in the font, sorted.
func (f *Font) TableTags() []string {
	return f.header.Tags()
}

// UnitsPerEm returns the size of the font's design grid.
func (f *Font) UnitsPerEm() (uint16, error) {
	h, err := f.headTable()
	if err != nil {
		return 0, err
	}
	return h.UnitsPerEm, nil
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return int(f.maxp.NumGlyphs)
}

// Head returns the decoded head table, decoding it on first use.
func (f *Font) Head() (*head.Info, error) {
	return f.headTable()
}

// Hhea returns the decoded hhea table, decoding it on first use.
func (f *Font) Hhea() (*hhea.Info, error) {
	return f.hheaTable()
}

// Name returns the font's decoded name table.
func (f *Font) Name() *name.Info {
	return f.name
}

func (f *Font) tableBytes(tag string) ([]byte, error) {
	rec, err := f.header.Find(tag)
	if err != nil {
		return nil, err
	}
	return rec.Bytes(f.buf)
}

func (f *Font) headTable() (*head.Info, error) {
	f.headOnce.Do(func() {
		data, err := f.tableBytes("head")
		if err != nil {
			f.headErr = err
			return
		}
		f.head, f.headErr = head.Read(data)
	})
	return f.head, f.headErr
}

func (f *Font) hheaTable() (*hhea.Info, error) {
	f.hheaOnce.Do(func() {
		data, err := f.tableBytes("hhea")
		if err != nil {
			f.hheaErr = err
			return
		}
		f.hhea, f.hheaErr = hhea.Read(data)
	})
	return f.hhea, f.hheaErr
}

// glyfTable decodes the glyf+loca pair, memoized. It returns a nil Table
// with a nil error, rather than MissingTableError, when either table is
// absent from the directory (as in an OpenType-CFF font).
func (f *Font) glyfTable() (*glyf.Table, error) {
	f.glyfOnce.Do(func() {
		if !f.header.Has("glyf", "loca") {
			return
		}
		glyfData, err := f.tableBytes("glyf")
		if err != nil {
			f.glyfErr = err
			return
		}
		locaData, err := f.tableBytes("loca")
		if err != nil {
			f.glyfErr = err
			return
		}
		h, err := f.headTable()
		if err != nil {
			f.glyfErr = err
			return
		}
		loca, err := glyf.ReadLoca(locaData, h.HasLongOffsets, f.NumGlyphs())
		if err != nil {
			f.glyfErr = err
			return
		}
		f.glyf = glyf.NewTable(glyfData, loca)
		f.glyf.SetLogger(f.logger)
	})
	return f.glyf, f.glyfErr
}

func (f *Font) hmtxTable() (*hmtx.Table, error) {
	f.hmtxOnce.Do(func() {
		data, err := f.tableBytes("hmtx")
		if err != nil {
			f.hmtxErr = err
			return
		}
		hhea, err := f.hheaTable()
		if err != nil {
			f.hmtxErr = err
			return
		}
		f.hmtx, f.hmtxErr = hmtx.Read(data, int(hhea.NumOfLongHorMetrics), f.NumGlyphs())
	})
	return f.hmtx, f.hmtxErr
}

// Metric returns the horizontal metrics of glyph gid.
func (f *Font) Metric(gid int) (hmtx.Metric, error) {
	t, err := f.hmtxTable()
	if err != nil {
		return hmtx.Metric{}, err
	}
	return t.Metric(gid), nil
}

func (f *Font) postTable() (*post.Info, error) {
	f.postOnce.Do(func() {
		data, err := f.tableBytes("post")
		if err != nil {
			f.postErr = err
			return
		}
		f.post, f.postErr = post.Read(data)
	})
	return f.post, f.postErr
}

// GlyphName returns the PostScript name of glyph gid, or "" if the font
// carries no post v2 name table or the glyph has no recorded name.
func (f *Font) GlyphName(gid int) string {
	p, err := f.postTable()
	if err != nil || p == nil {
		return ""
	}
	return p.NameForGlyph(gid)
}

func (f *Font) cmapTable() (*cmap.Table, error) {
	f.cmapOnce.Do(func() {
		data, err := f.tableBytes("cmap")
		if err != nil {
			f.cmapErr = err
			return
		}
		recs, err := cmap.ReadRecords(data)
		if err != nil {
			f.cmapErr = err
			return
		}
		for _, rec := range recs {
			t, err := cmap.ReadSubtable(data, rec)
			if err != nil {
				f.logger.Printf("sfnt/cmap: skipping encoding record (platform=%d encoding=%d): %v", rec.PlatformID, rec.EncodingID, err)
				continue // try the next most-preferred encoding record
			}
			f.cmap = t
			return
		}
		f.cmapErr = &sfnterr.UnsupportedFormatError{SubSystem: "sfnt", Feature: "cmap subtable format"}
	})
	return f.cmap, f.cmapErr
}

// GlyphIndex returns the glyph ID mapped to the Unicode code point r.
// It requires a TrueType-flavored font; OpenType-CFF fonts fail with
// UnsupportedFormatError, since this core does not decode CFF glyph data.
func (f *Font) GlyphIndex(r rune) (int, error) {
	if f.Kind() != table.KindTrueType {
		return 0, &sfnterr.UnsupportedFormatError{SubSystem: "sfnt", Feature: "codepoint-to-glyph lookup on a non-TrueType font"}
	}
	t, err := f.cmapTable()
	if err != nil {
		return 0, err
	}
	gid, ok := t.Lookup(r)
	if !ok {
		return 0, nil
	}
	return int(gid), nil
}

// GlyphOutline decodes glyph gid and drives sink through its outline,
// recursively resolving any composite components. It requires a
// TrueType-flavored font; OpenType-CFF fonts fail with
// UnsupportedFormatError. A font whose directory lacks glyf/loca
// altogether (legal for an OpenType-CFF font, though this path never
// reaches that case) draws nothing and returns nil.
func (f *Font) GlyphOutline(gid int, sink outline.Sink) error {
	if f.Kind() != table.KindTrueType {
		return &sfnterr.UnsupportedFormatError{SubSystem: "sfnt", Feature: "glyph outlines on a non-TrueType font"}
	}
	t, err := f.glyfTable()
	if err != nil {
		return err
	}
	if t == nil {
		return nil
	}
	return t.WalkGlyph(gid, sink)
}

// GlyphBBox decodes glyph gid and returns the bounding box of its outline,
// including control points. ok is false for a glyph with no outline (e.g.
// the space glyph).
func (f *Font) GlyphBBox(gid int) (box outline.BBox, ok bool, err error) {
	var b outline.BBoxBuilder
	if err := f.GlyphOutline(gid, &b); err != nil {
		return outline.BBox{}, false, err
	}
	box, ok = b.BBox()
	return box, ok, nil
}
