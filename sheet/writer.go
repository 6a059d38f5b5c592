// Package sheet renders projected rows as spreadsheet workbooks.
package sheet

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/arloliu/jsonxl/errs"
	"github.com/arloliu/jsonxl/value"
)

// DefaultSheetName is the sheet name used when Options.SheetName is empty.
const DefaultSheetName = "Data"

// Options controls workbook layout.
type Options struct {
	// SheetName names the single worksheet. Empty means DefaultSheetName.
	SheetName string
	// ColumnWidths sets the width of the leading columns, in order.
	// Nil leaves widths at the spreadsheet default.
	ColumnWidths []float64
}

// Writer encodes rows into a workbook file image.
type Writer interface {
	Write(rows []*value.Object, opts Options) ([]byte, error)
}

// XLSXWriter writes Office Open XML workbooks.
type XLSXWriter struct{}

var _ Writer = XLSXWriter{}

// NewXLSXWriter returns an xlsx writer.
func NewXLSXWriter() XLSXWriter {
	return XLSXWriter{}
}

// Write returns an xlsx workbook holding one worksheet. The header row lists
// the first row's keys followed by keys first seen in later rows; missing
// values are left blank.
func (XLSXWriter) Write(rows []*value.Object, opts Options) ([]byte, error) {
	name := opts.SheetName
	if name == "" {
		name = DefaultSheetName
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", errs.ErrInvalidSheetName, name, err)
	}

	sw, err := f.NewStreamWriter(name)
	if err != nil {
		return nil, fmt.Errorf("create stream writer: %w", err)
	}

	for i, w := range opts.ColumnWidths {
		if err := sw.SetColWidth(i+1, i+1, min(w, excelize.MaxColumnWidth)); err != nil {
			return nil, fmt.Errorf("set width of column %d: %w", i+1, err)
		}
	}

	header := Header(rows)
	if len(header) > 0 {
		if err := writeRow(sw, 1, headerCells(header)); err != nil {
			return nil, err
		}
	}

	cells := make([]any, len(header))
	for i, row := range rows {
		for j, key := range header {
			v, _ := row.Get(key)
			cells[j] = CellValue(v)
		}
		if err := writeRow(sw, i+2, cells); err != nil {
			return nil, err
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flush worksheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// Header returns the union of row keys in first-seen order.
func Header(rows []*value.Object) []string {
	if len(rows) == 0 {
		return nil
	}

	header := rows[0].Keys()
	seen := make(map[string]struct{}, len(header))
	for _, k := range header {
		seen[k] = struct{}{}
	}
	for _, row := range rows[1:] {
		for key := range row.All() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			header = append(header, key)
		}
	}

	return header
}

// CellValue converts v to a value the xlsx encoder stores natively.
// Integral numbers become int64, other numbers float64, null becomes nil
// and containers become compact JSON text.
func CellValue(v value.Value) any {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		b, _ := v.AsBool()
		return b
	case value.KindString:
		s, _ := v.AsString()
		return s
	case value.KindNumber:
		n, _ := v.AsNumber()
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(string(n), 64); err == nil {
			return f
		}

		return string(n)
	default:
		return v.String()
	}
}

func headerCells(header []string) []any {
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}

	return cells
}

func writeRow(sw *excelize.StreamWriter, rowNum int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row %d: %w", rowNum, err)
	}
	if err := sw.SetRow(cell, cells); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}

	return nil
}
