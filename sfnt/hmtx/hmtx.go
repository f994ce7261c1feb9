// Package hmtx decodes the "hmtx" table: per-glyph advance width and left
// side bearing. The table stores an explicit record per glyph only up to
// numOfLongHorMetrics; later glyphs repeat the last advance width and carry
// only their own left side bearing.
package hmtx

import "github.com/aslpavel/icon-viewer/sfnt/sfntio"

// Metric is one glyph's horizontal metrics.
type Metric struct {
	AdvanceWidth    uint16
	LeftSideBearing int16
}

// Table is the decoded hmtx table, indexed by glyph ID.
type Table struct {
	metrics []Metric
}

// Read decodes an hmtx table from buf. numOfLongHorMetrics comes from the
// hhea table; numGlyphs comes from maxp.
func Read(buf []byte, numOfLongHorMetrics, numGlyphs int) (*Table, error) {
	r := sfntio.NewReader(buf)

	t := &Table{metrics: make([]Metric, 0, numGlyphs)}

	var lastAdvance uint16
	for i := 0; i < numOfLongHorMetrics && i < numGlyphs; i++ {
		adv, err := r.U16()
		if err != nil {
			return nil, err
		}
		lsb, err := r.I16()
		if err != nil {
			return nil, err
		}
		lastAdvance = adv
		t.metrics = append(t.metrics, Metric{AdvanceWidth: adv, LeftSideBearing: lsb})
	}
	for i := len(t.metrics); i < numGlyphs; i++ {
		lsb, err := r.I16()
		if err != nil {
			return nil, err
		}
		t.metrics = append(t.metrics, Metric{AdvanceWidth: lastAdvance, LeftSideBearing: lsb})
	}

	return t, nil
}

// Metric returns the horizontal metrics for glyph gid. Glyph IDs beyond the
// table's range fall back to the metrics of the last glyph, matching the
// format's own run-length convention.
func (t *Table) Metric(gid int) Metric {
	if len(t.metrics) == 0 {
		return Metric{}
	}
	if gid < 0 {
		gid = 0
	}
	if gid >= len(t.metrics) {
		gid = len(t.metrics) - 1
	}
	return t.metrics[gid]
}

// NumGlyphs returns the number of glyphs the table has metrics for.
func (t *Table) NumGlyphs() int {
	return len(t.metrics)
}
