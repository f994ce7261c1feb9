package name

import (
	"testing"

	"golang.org/x/text/encoding/unicode"
)

func be16(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

// buildNameTable assembles a minimal name table with one record per entry.
func buildNameTable(records []Record) []byte {
	encoder := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()

	var header []byte
	header = append(header, be16(0)...) // format
	header = append(header, be16(uint16(len(records)))...)
	headerLen := 6 + 12*len(records)
	header = append(header, be16(uint16(headerLen))...) // stringOffset (storage starts right after records)

	var storage []byte
	for _, rec := range records {
		var valueBytes []byte
		if rec.PlatformID == platformWindows || rec.PlatformID == 0 {
			encoded, err := encoder.String(rec.Value)
			if err != nil {
				panic(err)
			}
			valueBytes = []byte(encoded)
		} else {
			valueBytes = []byte(rec.Value)
		}

		header = append(header, be16(rec.PlatformID)...)
		header = append(header, be16(rec.EncodingID)...)
		header = append(header, be16(rec.LanguageID)...)
		header = append(header, be16(rec.NameID)...)
		header = append(header, be16(uint16(len(valueBytes)))...)
		header = append(header, be16(uint16(len(storage)))...)
		storage = append(storage, valueBytes...)
	}

	return append(header, storage...)
}

func TestReadNameDecodesWindowsUSEnglish(t *testing.T) {
	buf := buildNameTable([]Record{
		{PlatformID: platformWindows, EncodingID: encodingUnicode, LanguageID: languageUSEnglish, NameID: IDFamily, Value: "My Font"},
		{PlatformID: platformWindows, EncodingID: encodingUnicode, LanguageID: languageUSEnglish, NameID: IDFullName, Value: "My Font Regular"},
	})

	info, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if info.Family != "My Font" {
		t.Errorf("Family = %q, want %q", info.Family, "My Font")
	}
	if info.FullName != "My Font Regular" {
		t.Errorf("FullName = %q, want %q", info.FullName, "My Font Regular")
	}
	if len(info.Raw) != 2 {
		t.Errorf("len(Raw) = %d, want 2", len(info.Raw))
	}
}

func TestReadNameIgnoresOtherLocales(t *testing.T) {
	buf := buildNameTable([]Record{
		{PlatformID: 1, EncodingID: 0, LanguageID: 0, NameID: IDFamily, Value: "MacRomanName"},
	})

	info, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if info.Family != "" {
		t.Errorf("Family = %q, want empty (non-Windows-US-English locale not folded into fields)", info.Family)
	}
	if len(info.Raw) != 1 || info.Raw[0].Value != "MacRomanName" {
		t.Errorf("Raw = %+v, want one record carrying the raw value", info.Raw)
	}
}

func TestReadNameTruncated(t *testing.T) {
	if _, err := Read([]byte{0, 0, 0, 1}); err == nil {
		t.Fatal("Read on truncated buffer err = nil, want error")
	}
}
