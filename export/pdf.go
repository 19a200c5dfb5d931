// Package export produces document artifacts from the engine's tabular
// extracts. It only consumes the Table contract: consistent columns and
// stringifiable cells.
package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/openbroker/brokerbook"
)

// PDF writes the table to filename as a PDF document with a centered title
// header, one bordered cell per value.
func PDF(t brokerbook.Table, title, filename string) error {
	if len(t.Header) == 0 {
		return fmt.Errorf("cannot export a table without columns")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	colWidth := pageWidth / float64(len(t.Header)+1)
	pdf.SetFont("Arial", "", 10)

	for _, col := range t.Header {
		pdf.CellFormat(colWidth, 8, col, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	for _, row := range t.Rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, 8, cell, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(filename); err != nil {
		return fmt.Errorf("could not write %q: %w", filename, err)
	}
	return nil
}
