package tabular

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tripgen/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDataReader_DetectsType(t *testing.T) {
	assert.Equal(t, FileTypeCSV, NewDataReader("file.csv").FileType())
	assert.Equal(t, FileTypeCSV, NewDataReader("table.txt").FileType())
	assert.Equal(t, FileTypeCSV, NewDataReader("-").FileType())
	assert.Equal(t, FileTypeXLSX, NewDataReader("book.XLSX").FileType())
	assert.Equal(t, FileTypeXLSX, NewDataReader("book.xlsm").FileType())
}

func TestReadRows_CSVEveryRowIsData(t *testing.T) {
	path := writeFile(t, "file.csv", "1,2\n,3\nN/A,\n")

	rows, err := NewDataReader(path).ReadRows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}, {"", "3"}, {"N/A", ""}}, rows)
}

func TestReadRows_CSVKeepsRaggedRowsAndWhitespace(t *testing.T) {
	path := writeFile(t, "file.csv", " 1 , +\n2\n\"3\",\"-\",N/A\n")

	rows, err := NewDataReader(path).ReadRows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{" 1 ", " +"}, {"2"}, {"3", "-", "N/A"}}, rows)
}

func TestReadRows_CSVEmptyLineBetweenRecordsIsZeroWidthRow(t *testing.T) {
	path := writeFile(t, "file.csv", "1,2\n\n,3\n")

	rows, err := NewDataReader(path).ReadRows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}, {}, {"", "3"}}, rows)
}

func TestReadRows_CSVEmptyLinePositions(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    [][]string
	}{
		{"leading", "\n1\n", [][]string{{}, {"1"}}},
		{"several", "1\n\n\n2\n", [][]string{{"1"}, {}, {}, {"2"}}},
		{"trailing dropped", "1\n2\n\n\n", [][]string{{"1"}, {"2"}}},
		{"crlf", "1\r\n\r\n2\r\n", [][]string{{"1"}, {}, {"2"}}},
		{"multi-line quoted field", "\"a\nb\",1\n\n2,3\n", [][]string{{"a\nb", "1"}, {}, {"2", "3"}}},
		{"no final newline", "1\n\n2", [][]string{{"1"}, {}, {"2"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewDataReader(StdinPath, WithStdin(strings.NewReader(tc.content)))
			rows, err := r.ReadRows(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, rows)
		})
	}
}

func TestReadRows_Stdin(t *testing.T) {
	r := NewDataReader(StdinPath, WithStdin(strings.NewReader("+,-,N/A\n")))

	rows, err := r.ReadRows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"+", "-", "N/A"}}, rows)
}

func TestReadRows_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.csv")

	_, err := NewDataReader(path).ReadRows(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeSourceUnavailable, errors.GetCode(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadRows_CanceledContext(t *testing.T) {
	path := writeFile(t, "file.csv", "1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDataReader(path).ReadRows(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadRows_XLSXPadsTrailingEmptyCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triplets.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"2", "0", "8"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"", "N/A"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"+", "-", "4"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	data, err := NewDataReader(path).ReadData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, data.Width())
	assert.Equal(t, [][]string{
		{"2", "0", "8"},
		{"", "N/A", ""},
		{"+", "-", "4"},
	}, data.Rows)
}

func TestReadRows_XLSXIgnoresNumberFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formatted.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", 2))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", -7))
	style, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // "0.00"
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "A1", "B1", style))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := NewDataReader(path).ReadRows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"2", "-7"}}, rows)
}

func TestReadRows_XLSXMissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := NewDataReader(path, WithSheet("Encodings")).ReadRows(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeSourceUnavailable, errors.GetCode(err))
}

func TestTableData_Width(t *testing.T) {
	assert.Equal(t, 0, (&TableData{}).Width())
	assert.Equal(t, 3, (&TableData{Rows: [][]string{{"1"}, {"1", "2", "3"}, {}}}).Width())
}
