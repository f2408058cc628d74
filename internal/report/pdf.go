package report

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/camilourd/trip_tracker/internal/trip"
)

// GeneratePDF renders the same aggregates as the text report into a PDF and
// persists it through the PDF sink. The text report stays the canonical
// artifact; this is an export format.
func (g Generator) GeneratePDF(t trip.Trip) (string, error) {
	content, err := buildTripPDF(t)
	if err != nil {
		return "", fmt.Errorf("failed to build trip report PDF: %w", err)
	}
	if err := g.pdfSink.WriteReport(content); err != nil {
		return "", err
	}
	return "PDF report generated successfully", nil
}

func buildTripPDF(t trip.Trip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip expense report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Expense report: %s", t.Destination))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("From %s to %s", t.StartDate, t.EndDate))
	pdf.Ln(10)

	if len(t.Expenses) == 0 {
		pdf.Cell(0, 7, "no expenses recorded")
		pdf.Ln(9)
	} else {
		writePDFSection(pdf, "Expenses by day", dailyLines(t))
		writePDFSection(pdf, "Expenses by category", categoryLines(t))
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total trip expenses: %s", trip.FormatAmount(t.TotalSpent())))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePDFSection(pdf *gofpdf.Fpdf, title string, lines []string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

func dailyLines(t trip.Trip) []string {
	var lines []string
	for date := t.StartDate; !date.After(t.EndDate); date = date.AddDays(1) {
		cash, card := totalsByMethod(t.ExpensesOn(date))
		lines = append(lines, fmt.Sprintf("%s  cash: %s  card: %s  total: %s",
			date, trip.FormatAmount(cash), trip.FormatAmount(card), trip.FormatAmount(cash+card)))
	}
	return lines
}

func categoryLines(t trip.Trip) []string {
	var lines []string
	for _, category := range trip.Categories {
		var cash, card float64
		for _, expense := range t.Expenses {
			if expense.Category != category {
				continue
			}
			if expense.PaymentMethod == trip.PaymentCash {
				cash += expense.Amount
			} else {
				card += expense.Amount
			}
		}
		lines = append(lines, fmt.Sprintf("%-13s  cash: %s  card: %s  total: %s",
			category, trip.FormatAmount(cash), trip.FormatAmount(card), trip.FormatAmount(cash+card)))
	}
	return lines
}
