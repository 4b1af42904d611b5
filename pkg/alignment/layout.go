package alignment

// Track identifies which logical row a display line belongs to.
type Track int

const (
	TrackReference Track = iota
	TrackQuery
)

// DisplayCell is the atomic render unit: a symbol, its class, and whether
// the renderer should fill its background. Reference cells are always
// filled unless they are gaps; query cells are filled only on mismatch so
// that differences stand out.
type DisplayCell struct {
	Symbol   byte
	Category ColorCategory
	Fill     bool
}

// DisplayLine is one row's worth of cells for one track, starting at global
// index Start.
type DisplayLine struct {
	Track Track
	Start int
	Cells []DisplayCell
}

// Layout partitions the compared tracks into chunks of at most charsPerLine
// columns and emits alternating reference/query lines in reading order:
// ref-chunk-0, query-chunk-0, ref-chunk-1, query-chunk-1, and so on. A
// non-positive charsPerLine means the width is not yet measurable and
// yields no lines. Lines are derived state: callers regenerate the whole
// list on any sequence or width change rather than patching it.
func Layout(res *CompareResult, charsPerLine int) []DisplayLine {
	if res == nil || charsPerLine <= 0 || len(res.Positions) == 0 {
		return nil
	}

	total := len(res.Positions)
	chunks := (total + charsPerLine - 1) / charsPerLine
	lines := make([]DisplayLine, 0, 2*chunks)

	for k := 0; k < chunks; k++ {
		start := k * charsPerLine
		end := start + charsPerLine
		if end > total {
			end = total
		}

		refCells := make([]DisplayCell, 0, end-start)
		queryCells := make([]DisplayCell, 0, end-start)
		for i := start; i < end; i++ {
			p := res.Positions[i]
			refCells = append(refCells, DisplayCell{
				Symbol:   p.Ref,
				Category: Classify(p.Ref),
				Fill:     p.Ref != Gap,
			})
			queryCells = append(queryCells, DisplayCell{
				Symbol:   p.Query,
				Category: Classify(p.Query),
				Fill:     !p.Match && p.Query != Gap,
			})
		}

		lines = append(lines,
			DisplayLine{Track: TrackReference, Start: start, Cells: refCells},
			DisplayLine{Track: TrackQuery, Start: start, Cells: queryCells},
		)
	}
	return lines
}

// PlainText renders a line's symbols without any styling. The viewer uses
// this for selection extraction and the clipboard command for plain output.
func (l DisplayLine) PlainText() string {
	b := make([]byte, len(l.Cells))
	for i, c := range l.Cells {
		b[i] = c.Symbol
	}
	return string(b)
}
