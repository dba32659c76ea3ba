package convert

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// SpreadsheetConverter bridges delimiter-separated text and xlsx workbooks.
// Only the first sheet of a workbook participates.
type SpreadsheetConverter struct {
	logger *zap.Logger
}

func NewSpreadsheetConverter(logger *zap.Logger) *SpreadsheetConverter {
	return &SpreadsheetConverter{logger: logger}
}

func (c *SpreadsheetConverter) Convert(content []byte, in, out string) ([]byte, error) {
	var (
		converted []byte
		err       error
	)
	switch {
	case isDelimited(in) && out == "xlsx":
		converted, err = delimitedToXLSX(content, delimiter(in))
	case in == "xlsx" && isDelimited(out):
		converted, err = xlsxToDelimited(content, delimiter(out))
	case isDelimited(in) && isDelimited(out):
		converted, err = redelimit(content, delimiter(in), delimiter(out))
	default:
		return nil, fmt.Errorf("%w: %s to %s", ErrNotImplemented, in, out)
	}
	if err != nil {
		return nil, &ConversionError{Family: "spreadsheet", Err: err}
	}
	return converted, nil
}

func isDelimited(name string) bool {
	return name == "csv" || name == "tsv"
}

func delimiter(name string) rune {
	if name == "tsv" {
		return '\t'
	}
	return ','
}

func readDelimited(content []byte, sep rune) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.Comma = sep
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func writeDelimited(rows [][]string, sep rune) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = sep
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write records: %w", err)
	}
	return buf.Bytes(), nil
}

func delimitedToXLSX(content []byte, sep rune) ([]byte, error) {
	rows, err := readDelimited(content, sep)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to set row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func xlsxToDelimited(content []byte, sep rune) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return writeDelimited(rows, sep)
}

func redelimit(content []byte, from, to rune) ([]byte, error) {
	rows, err := readDelimited(content, from)
	if err != nil {
		return nil, err
	}
	return writeDelimited(rows, to)
}
