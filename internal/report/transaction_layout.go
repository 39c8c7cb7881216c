package report

import (
	"fmt"

	"transaction-reports/internal/models"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "Helvetica"
	rowHeight  = 7.0
)

// column widths in mm, matching models.ReportColumns
var columnWidths = []float64{30, 32, 38, 32, 90, 28, 27}

// cell alignment per column
var columnAlign = []string{"L", "C", "L", "C", "L", "R", "C"}

// TransactionReportLayout lays out the transaction overview table
func TransactionReportLayout() Layout {
	return Layout{
		DataSource: models.TransactionReportDataSource,
		Draw:       drawTransactionReport,
	}
}

func drawTransactionReport(pdf *fpdf.Fpdf, table models.ReportTable, params models.ReportParameters) error {
	if len(table.Columns) != len(columnWidths) {
		return fmt.Errorf("transaction report expects %d columns, got %d", len(columnWidths), len(table.Columns))
	}

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AliasNbPages("")

	header := func() {
		pdf.SetFont(fontFamily, "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for i, column := range table.Columns {
			pdf.CellFormat(columnWidths[i], rowHeight, tr(column), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(fontFamily, "", 8)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})

	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, "Transaction Report", "", 1, "L", false, 0, "")

	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, 6, tr("Merchant: "+params.MerchantName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Merchant ID: "+params.MerchantID, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s - %s", params.From, params.To), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	header()

	for _, row := range table.Rows {
		for i, cell := range row.Cells() {
			text := fitText(pdf, tr(cell), columnWidths[i]-2)
			pdf.CellFormat(columnWidths[i], rowHeight, text, "1", 0, columnAlign[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(table.Rows) == 0 {
		pdf.SetFont(fontFamily, "I", 9)
		pdf.CellFormat(sum(columnWidths), rowHeight, "No transactions found for the selected filters", "1", 1, "C", false, 0, "")
	}

	pdf.SetFont(fontFamily, "B", 9)
	labelWidth := sum(columnWidths[:5])
	pdf.CellFormat(labelWidth, rowHeight, "TOTAL AMOUNT", "1", 0, "R", false, 0, "")
	pdf.CellFormat(columnWidths[5], rowHeight, params.TotalAmount.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(columnWidths[6], rowHeight, "", "1", 1, "C", false, 0, "")

	return nil
}

// fitText trims text until it fits width, marking the cut with ".."
func fitText(pdf *fpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	// text is already single-byte encoded
	end := len(text)
	for end > 0 && pdf.GetStringWidth(text[:end]+"..") > width {
		end--
	}
	return text[:end] + ".."
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
