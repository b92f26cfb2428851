package export

import (
	"io"

	"github.com/etnz/stockavg"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the report.
const SheetName = "Report"

// Rows of the fixed part of the sheet.
const (
	headingRow  = 1
	dateRow     = 2
	summaryRow  = 4 // average, then total shares, then total investment
	purchaseRow = 8 // table header, purchases follow
)

// Excel built-in number formats.
const (
	numFmtInteger = 3 // #,##0
	numFmtAmount  = 4 // #,##0.00
)

var purchaseHeaders = []string{"Purchase #", "Quantity", "Price per Share", "Investment"}

func writeXLSX(w io.Writer, r *stockavg.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.Wrap(err, "rename sheet")
	}

	sheet := &sheetWriter{f: f}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return errors.Wrap(err, "create heading style")
	}
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return errors.Wrap(err, "create header style")
	}
	amount, err := f.NewStyle(&excelize.Style{NumFmt: numFmtAmount})
	if err != nil {
		return errors.Wrap(err, "create amount style")
	}
	integer, err := f.NewStyle(&excelize.Style{NumFmt: numFmtInteger})
	if err != nil {
		return errors.Wrap(err, "create integer style")
	}

	sheet.set(1, headingRow, r.Heading(), bold)
	sheet.set(1, dateRow, "Generated on: "+r.Date(), 0)

	sheet.set(1, summaryRow, "Average Price", 0)
	sheet.set(2, summaryRow, amountValue(r.AveragePrice), amount)
	sheet.set(1, summaryRow+1, "Total Shares", 0)
	sheet.set(2, summaryRow+1, r.TotalShares.Decimal().IntPart(), integer)
	sheet.set(1, summaryRow+2, "Total Investment", 0)
	sheet.set(2, summaryRow+2, amountValue(r.TotalInvestment), amount)

	for i, h := range purchaseHeaders {
		sheet.set(i+1, purchaseRow, h, header)
	}
	for i, row := range r.Rows {
		y := purchaseRow + 1 + i
		sheet.set(1, y, row.Position, 0)
		sheet.set(2, y, row.Quantity.Decimal().IntPart(), integer)
		sheet.set(3, y, amountValue(row.Price), amount)
		sheet.set(4, y, amountValue(row.Investment), amount)
	}
	sheet.set(1, purchaseRow+len(r.Rows)+2, "This report is for informational purposes only. Not financial advice.", 0)

	if sheet.err != nil {
		return sheet.err
	}
	if err := f.SetColWidth(SheetName, "A", "D", 18); err != nil {
		return errors.Wrap(err, "set column width")
	}
	return errors.Wrap(f.Write(w), "write xlsx")
}

// amountValue is the rounded amount as stored in a cell.
func amountValue(m stockavg.Money) float64 { return m.Round().InexactFloat64() }

// sheetWriter sets cells of the report sheet, keeping the first error.
type sheetWriter struct {
	f   *excelize.File
	err error
}

// set writes value at column x, row y (both 1-based) with style, if not 0.
func (s *sheetWriter) set(x, y int, value any, style int) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(x, y)
	if err != nil {
		s.err = errors.Wrap(err, "cell name")
		return
	}
	if err := s.f.SetCellValue(SheetName, cell, value); err != nil {
		s.err = errors.Wrapf(err, "set cell %s", cell)
		return
	}
	if style != 0 {
		if err := s.f.SetCellStyle(SheetName, cell, cell, style); err != nil {
			s.err = errors.Wrapf(err, "style cell %s", cell)
		}
	}
}
