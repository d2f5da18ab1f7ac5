package tabular

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"tripgen/internal"
	"tripgen/internal/errors"
)

// DataReader handles reading CSV and Excel files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
	stdin    io.Reader
	logger   *internal.Logger
}

// Option configures a DataReader
type Option func(*DataReader)

// WithSheet selects the worksheet read from spreadsheet input
func WithSheet(sheet string) Option {
	return func(r *DataReader) { r.sheet = sheet }
}

// WithStdin replaces os.Stdin as the stream behind the "-" path
func WithStdin(in io.Reader) Option {
	return func(r *DataReader) { r.stdin = in }
}

// WithLogger sets the logger
func WithLogger(logger *internal.Logger) Option {
	return func(r *DataReader) { r.logger = logger }
}

// NewDataReader creates a reader for filePath. .xlsx and .xlsm are read as
// spreadsheets; everything else, including "-" for stdin, as CSV.
func NewDataReader(filePath string, opts ...Option) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := FileTypeCSV
	if ext == ".xlsx" || ext == ".xlsm" {
		fileType = FileTypeXLSX
	}
	r := &DataReader{
		filePath: filePath,
		fileType: fileType,
		sheet:    "Sheet1",
		stdin:    os.Stdin,
		logger:   internal.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FileType returns "csv" or "xlsx"
func (r *DataReader) FileType() string {
	return r.fileType
}

// ReadRows implements ports.RowSource
func (r *DataReader) ReadRows(ctx context.Context) ([][]string, error) {
	data, err := r.ReadData(ctx)
	if err != nil {
		return nil, err
	}
	return data.Rows, nil
}

// ReadData reads the whole table. The underlying file is closed before returning.
func (r *DataReader) ReadData(ctx context.Context) (*TableData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.logger.Info("reading %s input: %s", r.fileType, r.filePath)

	switch r.fileType {
	case FileTypeCSV:
		return r.readCSVData()
	case FileTypeXLSX:
		return r.readExcelData()
	default:
		return nil, errors.InvalidInput("unsupported file type: " + r.fileType)
	}
}

// readCSVData reads CSV rows without enforcing a field count; width checks
// belong to the encoder so they can be reported by row.
//
// encoding/csv skips empty lines. An empty line between records is kept as a
// zero-width row so it still counts as a row; empty lines after the last
// record are dropped.
func (r *DataReader) readCSVData() (*TableData, error) {
	var in io.Reader
	if r.filePath == StdinPath {
		in = r.stdin
	} else {
		file, err := os.Open(r.filePath)
		if err != nil {
			return nil, errors.SourceUnavailable(r.filePath, err)
		}
		defer file.Close()
		in = file
	}

	readStart := time.Now()
	content, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.SourceUnavailable(r.filePath, err)
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	nextLine := 1 // line the next record starts on when no empty line intervenes
	var consumed int64
	var newlines int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.SourceUnavailable(r.filePath, err)
		}

		line, _ := reader.FieldPos(0)
		for ; nextLine < line; nextLine++ {
			r.logger.Warn("line %d is empty, kept as a zero-width row", nextLine)
			rows = append(rows, []string{})
		}
		r.logger.Trace("line %d: %q", line, record)
		rows = append(rows, record)

		end := reader.InputOffset()
		newlines += bytes.Count(content[consumed:end], []byte("\n"))
		consumed = end
		nextLine = newlines + 1
	}
	r.logger.Debug("CSV read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return &TableData{Source: r.filePath, Rows: rows}, nil
}

// readExcelData reads the configured sheet. Spreadsheet rows omit trailing
// empty cells, so every row is padded with "" to the widest row.
func (r *DataReader) readExcelData() (*TableData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.SourceUnavailable(r.filePath, err)
	}
	defer f.Close()
	r.logger.Debug("Excel file opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	// Raw values keep number formats such as "0.00" out of integer cells.
	rows, err := f.GetRows(r.sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.SourceUnavailable(r.filePath+" sheet "+r.sheet, err)
	}

	data := &TableData{Source: r.filePath, Rows: rows}
	width := data.Width()
	for i, row := range data.Rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			data.Rows[i] = padded
		}
	}
	r.logger.Debug("sheet %s read (%d rows, %d columns)", r.sheet, len(rows), width)

	return data, nil
}
