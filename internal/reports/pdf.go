package reports

import (
	"bytes"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/keith-codez/Finance-Backend/internal/domain"
	"github.com/keith-codez/Finance-Backend/internal/money"
)

var colW = []float64{30, 90, 35, 27}

// BuildHistoryPDF renders the transaction history document: a title naming
// the account holder, the current balance, and one table row per transaction
// in the order given. When a row would pass the bottom of the page a new
// page is started and the header row repeated, so every transaction appears
// exactly once across all pages.
func BuildHistoryPDF(username string, balance decimal.Decimal, txs []domain.Transaction) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Transaction History", false)
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Transaction History for "+username)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Current Balance: "+money.Format(balance))
	pdf.Ln(12)

	tableHeader(pdf)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(30, 30, 30)

	for _, t := range txs {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			tableHeader(pdf)
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(30, 30, 30)
		}

		pdf.CellFormat(colW[0], 8, t.Date.Format("02-01-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, trimTo(t.Description, 60), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[2], 8, money.Format(t.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 8, string(t.Type), "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func tableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(20, 20, 20)
	pdf.SetTextColor(245, 245, 245)
	pdf.SetDrawColor(20, 20, 20)

	pdf.CellFormat(colW[0], 9, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[1], 9, "Description", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[2], 9, "Amount ($)", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[3], 9, "Type", "1", 1, "C", true, 0, "")
}

func trimTo(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
