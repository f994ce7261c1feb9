// Package name decodes the "name" table. Only the Windows, Unicode BMP,
// US English locale (platformID 3, encodingID 1, languageID 0x0409) is
// decoded into structured fields; this is the locale essentially every
// font ships for machine consumption, and it is what spec.md's table
// focuses on. Records for other locales are kept available through Raw for
// callers that need them, but are not decoded into the Info fields.
package name

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/aslpavel/icon-viewer/sfnt/sfntio"
)

const (
	platformWindows  = 3
	encodingUnicode  = 1
	languageUSEnglish = 0x0409
)

// Name IDs decoded into Info's fields.
const (
	IDCopyright            = 0
	IDFamily               = 1
	IDSubfamily            = 2
	IDUniqueID             = 3
	IDFullName             = 4
	IDVersion              = 5
	IDPostScriptName       = 6
	IDTrademark            = 7
	IDManufacturer         = 8
	IDDesigner             = 9
	IDDescription          = 10
	IDVendorURL            = 11
	IDDesignerURL          = 12
	IDLicense              = 13
	IDLicenseURL           = 14
	IDTypographicFamily    = 16
	IDTypographicSubfamily = 17
)

// Record is one raw entry from the name table.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Value      string
}

// Info contains the decoded name table.
type Info struct {
	Copyright            string
	Family               string
	Subfamily            string
	UniqueID             string
	FullName             string
	Version              string
	PostScriptName       string
	Trademark            string
	Manufacturer         string
	Designer             string
	Description          string
	VendorURL            string
	DesignerURL          string
	License              string
	LicenseURL           string
	TypographicFamily    string
	TypographicSubfamily string

	// Raw holds every record in the table, including locales not folded
	// into the fields above.
	Raw []Record
}

func (info *Info) String() string {
	b := &strings.Builder{}
	field := func(label, v string) {
		if v != "" {
			fmt.Fprintf(b, "%s: %q\n", label, v)
		}
	}
	field("Family", info.Family)
	field("Subfamily", info.Subfamily)
	field("FullName", info.FullName)
	field("Version", info.Version)
	field("PostScriptName", info.PostScriptName)
	field("Copyright", info.Copyright)
	field("Manufacturer", info.Manufacturer)
	field("Designer", info.Designer)
	field("License", info.License)
	return b.String()
}

var utf16BEDecoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()

// Read decodes a name table from buf.
func Read(buf []byte) (*Info, error) {
	r := sfntio.NewReader(buf)

	r.Advance(2) // format
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	stringOffset, err := r.U16()
	if err != nil {
		return nil, err
	}

	type rawRecord struct {
		platformID, encodingID, languageID, nameID uint16
		offset, length                             uint16
	}
	recs := make([]rawRecord, count)
	for i := range recs {
		var rr rawRecord
		if rr.platformID, err = r.U16(); err != nil {
			return nil, err
		}
		if rr.encodingID, err = r.U16(); err != nil {
			return nil, err
		}
		if rr.languageID, err = r.U16(); err != nil {
			return nil, err
		}
		if rr.nameID, err = r.U16(); err != nil {
			return nil, err
		}
		if rr.length, err = r.U16(); err != nil {
			return nil, err
		}
		if rr.offset, err = r.U16(); err != nil {
			return nil, err
		}
		recs[i] = rr
	}

	storage := r.View(int(stringOffset), r.Len())

	info := &Info{}
	for _, rr := range recs {
		raw, err := storage.View(int(rr.offset), int(rr.offset)+int(rr.length)).Read(int(rr.length))
		if err != nil {
			continue // a single malformed record should not fail the whole table
		}

		value := decodeNameBytes(rr.platformID, raw)
		info.Raw = append(info.Raw, Record{
			PlatformID: rr.platformID,
			EncodingID: rr.encodingID,
			LanguageID: rr.languageID,
			NameID:     rr.nameID,
			Value:      value,
		})

		if rr.platformID != platformWindows || rr.encodingID != encodingUnicode || rr.languageID != languageUSEnglish {
			continue
		}
		switch rr.nameID {
		case IDCopyright:
			info.Copyright = value
		case IDFamily:
			info.Family = value
		case IDSubfamily:
			info.Subfamily = value
		case IDUniqueID:
			info.UniqueID = value
		case IDFullName:
			info.FullName = value
		case IDVersion:
			info.Version = value
		case IDPostScriptName:
			info.PostScriptName = value
		case IDTrademark:
			info.Trademark = value
		case IDManufacturer:
			info.Manufacturer = value
		case IDDesigner:
			info.Designer = value
		case IDDescription:
			info.Description = value
		case IDVendorURL:
			info.VendorURL = value
		case IDDesignerURL:
			info.DesignerURL = value
		case IDLicense:
			info.License = value
		case IDLicenseURL:
			info.LicenseURL = value
		case IDTypographicFamily:
			info.TypographicFamily = value
		case IDTypographicSubfamily:
			info.TypographicSubfamily = value
		}
	}

	return info, nil
}

// decodeNameBytes decodes a name record's bytes. Platform 3 (Windows) and
// platform 0 (Unicode) records are UTF-16BE; everything else (notably
// platform 1, Macintosh Roman) is treated as already being ASCII-compatible,
// which covers the common case without pulling in a full Mac encoding table.
func decodeNameBytes(platformID uint16, raw []byte) string {
	if platformID == platformWindows || platformID == 0 {
		if decoded, err := utf16BEDecoder.Bytes(raw); err == nil {
			return string(decoded)
		}
	}
	return string(raw)
}
