package tabular

// Source types understood by DataReader
const (
	FileTypeCSV  = "csv"
	FileTypeXLSX = "xlsx"
)

// StdinPath selects CSV from standard input
const StdinPath = "-"

// TableData is the raw cell text of a table, in input order. Every row is data.
type TableData struct {
	Source string     // path, or "-" for stdin
	Rows   [][]string // raw cells, untrimmed
}

// Width returns the widest row's cell count
func (d *TableData) Width() int {
	width := 0
	for _, row := range d.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
