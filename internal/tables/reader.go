package tables

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for reference files that are neither CSV nor XLSX.
var ErrUnsupportedFormat = errors.New("unsupported table format")

// sheet is a header plus data rows read from a reference file.
type sheet struct {
	file   string
	header map[string]int
	names  []string
	rows   [][]string
}

func readSheet(path string) (*sheet, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		records, err = readCSV(path)
	case ".xlsx":
		records, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty table", path)
	}

	s := &sheet{
		file:   filepath.Base(path),
		header: make(map[string]int, len(records[0])),
		rows:   records[1:],
	}
	for i, name := range records[0] {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		s.names = append(s.names, name)
		if _, dup := s.header[strings.ToLower(name)]; !dup {
			s.header[strings.ToLower(name)] = i
		}
	}
	return s, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseCSV(f)
}

func parseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

// readXLSX reads the first worksheet of a workbook.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	return f.GetRows(sheets[0])
}

// column returns the index of a header, matched case-insensitively.
func (s *sheet) column(name string) (int, error) {
	idx, ok := s.header[strings.ToLower(name)]
	if !ok {
		return 0, &ColumnError{File: s.file, Column: name}
	}
	return idx, nil
}

// cell returns the trimmed value at idx, or "" for short rows.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
