// Package report aggregates a trip's expenses by day and by category and
// writes the result through a sink, overwriting any prior report.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/camilourd/trip_tracker/internal/trip"
)

// Sink receives a composed report. Writes are whole-file overwrites.
type Sink interface {
	WriteReport(content []byte) error
}

// FileSink writes reports to a fixed path, creating the parent directory
// when needed.
type FileSink struct {
	Path string
}

func (s FileSink) WriteReport(content []byte) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

type Generator struct {
	textSink Sink
	pdfSink  Sink
}

func NewGenerator(textSink, pdfSink Sink) Generator {
	return Generator{textSink: textSink, pdfSink: pdfSink}
}

// Generate composes the textual report for one trip and persists it.
func (g Generator) Generate(t trip.Trip) (string, error) {
	if err := g.textSink.WriteReport([]byte(Compose(t))); err != nil {
		return "", err
	}
	return "Report generated successfully", nil
}

// Compose renders the report: a header, a day-by-day breakdown covering
// every calendar date of the trip, a breakdown per category in their defined
// order, and a grand total. A trip without expenses gets a literal
// "no expenses recorded" line instead of the breakdowns.
func Compose(t trip.Trip) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Expense report for the trip between %s and %s in %s ---\n",
		t.StartDate, t.EndDate, t.Destination)

	if len(t.Expenses) == 0 {
		b.WriteString("no expenses recorded\n")
	} else {
		writeDailySection(&b, t)
		writeCategorySection(&b, t)
	}

	fmt.Fprintf(&b, "Total trip expenses: %s\n", trip.FormatAmount(t.TotalSpent()))
	return b.String()
}

func writeDailySection(b *strings.Builder, t trip.Trip) {
	b.WriteString("\nExpenses by day:\n")
	for date := t.StartDate; !date.After(t.EndDate); date = date.AddDays(1) {
		cash, card := totalsByMethod(t.ExpensesOn(date))
		fmt.Fprintf(b, "  Expenses %s:\n", date)
		writeTotals(b, cash, card)
	}
}

func writeCategorySection(b *strings.Builder, t trip.Trip) {
	b.WriteString("\nExpenses by category:\n")
	for _, category := range trip.Categories {
		var inCategory []trip.Expense
		for _, expense := range t.Expenses {
			if expense.Category == category {
				inCategory = append(inCategory, expense)
			}
		}
		cash, card := totalsByMethod(inCategory)
		fmt.Fprintf(b, "  Expenses on %s:\n", category)
		writeTotals(b, cash, card)
	}
}

func writeTotals(b *strings.Builder, cash, card float64) {
	fmt.Fprintf(b, "    Cash : %s\n", trip.FormatAmount(cash))
	fmt.Fprintf(b, "    Card : %s\n", trip.FormatAmount(card))
	fmt.Fprintf(b, "    Total: %s\n\n", trip.FormatAmount(cash+card))
}

func totalsByMethod(expenses []trip.Expense) (cash, card float64) {
	for _, expense := range expenses {
		if expense.PaymentMethod == trip.PaymentCash {
			cash += expense.Amount
		} else {
			card += expense.Amount
		}
	}
	return cash, card
}
