// Package jsonxl anonymizes JSON usage exports and converts JSON documents
// into spreadsheet workbooks.
//
// The library has two halves that share an ordered JSON model (package value):
//
//   - Anonymization replaces the values of sensitive identifier fields
//     (meterId, productId, skuId, serviceId, CustomerEntityId, id) with
//     deterministic hash-derived tokens, leaving the rest of the document
//     untouched.
//   - Conversion projects a document onto rows (time series first, then a
//     root array, the largest top-level array field, or the whole document
//     flattened) and writes them to a single-sheet xlsx workbook.
//
// # Basic Usage
//
// Anonymizing a document:
//
//	out, err := jsonxl.AnonymizeJSON(data)
//	if err != nil {
//	    return err
//	}
//
// Converting a document to a workbook:
//
//	book, err := jsonxl.ConvertJSON(data, jsonxl.ConvertOptions{SheetName: "Metrics"})
//	if err != nil {
//	    return err
//	}
//	err = os.WriteFile("metrics.xlsx", book, 0o644)
//
// # Package Structure
//
// These functions are thin wrappers for one-off documents. For repeated use,
// shared anonymization mappings, compressed inputs and directory processing,
// use the anonymize, tabular, sheet and batch packages directly.
package jsonxl

import (
	"github.com/arloliu/jsonxl/anonymize"
	"github.com/arloliu/jsonxl/sheet"
	"github.com/arloliu/jsonxl/tabular"
	"github.com/arloliu/jsonxl/value"
)

// ConvertOptions controls ConvertJSON.
type ConvertOptions struct {
	// SheetName names the worksheet. Empty means "Data".
	SheetName string
	// DisableAutoWidth keeps default column widths instead of sizing columns
	// from the header names.
	DisableAutoWidth bool
	// Projector options, e.g. tabular.WithProcessor or tabular.WithCollectAllSeries.
	Projector []tabular.Option
}

// AnonymizeJSON anonymizes the sensitive fields of one JSON document.
//
// The result is indented with two spaces and has no trailing newline. Each
// call uses a fresh mapping; since anonymized values are derived from the
// originals alone, separate calls still agree with each other.
//
// Parameters:
//   - data: JSON document, optionally prefixed with a UTF-8 byte order mark
//
// Returns:
//   - []byte: The anonymized document
//   - error: errs.ErrInvalidJSON if data cannot be parsed
func AnonymizeJSON(data []byte) ([]byte, error) {
	doc, err := value.Parse(data)
	if err != nil {
		return nil, err
	}

	anon, err := anonymize.New()
	if err != nil {
		return nil, err
	}

	return value.MarshalIndent(anon.Anonymize(doc)), nil
}

// Rows projects one JSON document onto spreadsheet rows.
//
// Parameters:
//   - data: JSON document
//   - opts: Projector options
//
// Returns:
//   - tabular.Projection: The rows and the strategy that produced them
//   - error: errs.ErrInvalidJSON, an invalid option, or a custom processor error
func Rows(data []byte, opts ...tabular.Option) (tabular.Projection, error) {
	doc, err := value.Parse(data)
	if err != nil {
		return tabular.Projection{}, err
	}

	projector, err := tabular.NewProjector(opts...)
	if err != nil {
		return tabular.Projection{}, err
	}

	return projector.Project(doc)
}

// ConvertJSON converts one JSON document into an xlsx workbook image.
//
// Parameters:
//   - data: JSON document
//   - opts: Sheet and projection settings
//
// Returns:
//   - []byte: The workbook, ready to be written to a .xlsx file
//   - error: errs.ErrInvalidJSON, errs.ErrInvalidSheetName, or a projection error
func ConvertJSON(data []byte, opts ConvertOptions) ([]byte, error) {
	proj, err := Rows(data, opts.Projector...)
	if err != nil {
		return nil, err
	}

	sheetOpts := sheet.Options{SheetName: opts.SheetName}
	if !opts.DisableAutoWidth {
		sheetOpts.ColumnWidths = tabular.ColumnWidths(proj.Rows)
	}

	return sheet.NewXLSXWriter().Write(proj.Rows, sheetOpts)
}
