package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/camilourd/trip_tracker/internal/trip"
)

type memorySink struct {
	content []byte
	writes  int
}

func (s *memorySink) WriteReport(content []byte) error {
	s.content = content
	s.writes++
	return nil
}

func sampleTrip() trip.Trip {
	t := trip.NewTrip(trip.DestinationColombia, trip.NewDate(2024, 6, 7), trip.NewDate(2024, 6, 9), 200000)
	t.AddExpense(trip.Expense{Date: trip.NewDate(2024, 6, 7), Amount: 50000, PaymentMethod: trip.PaymentCash, Category: trip.CategoryFood})
	t.AddExpense(trip.Expense{Date: trip.NewDate(2024, 6, 7), Amount: 30000, PaymentMethod: trip.PaymentCard, Category: trip.CategoryTransport})
	t.AddExpense(trip.Expense{Date: trip.NewDate(2024, 6, 9), Amount: 20000, PaymentMethod: trip.PaymentCard, Category: trip.CategoryFood})
	return t
}

func TestGenerateWritesThroughSink(t *testing.T) {
	sink := &memorySink{}
	generator := NewGenerator(sink, &memorySink{})

	message, err := generator.Generate(sampleTrip())
	require.NoError(t, err)
	require.Equal(t, "Report generated successfully", message)
	require.Equal(t, 1, sink.writes)
	require.Equal(t, Compose(sampleTrip()), string(sink.content))
}

func TestComposeEmptyTrip(t *testing.T) {
	content := Compose(trip.NewTrip(trip.DestinationUSA, trip.NewDate(2024, 6, 7), trip.NewDate(2024, 6, 8), 100))

	require.Contains(t, content, "no expenses recorded")
	require.Contains(t, content, "Total trip expenses: 0")
	require.NotContains(t, content, "Expenses by day")
	require.NotContains(t, content, "Expenses by category")
}

func TestComposeHeader(t *testing.T) {
	content := Compose(sampleTrip())
	require.True(t, strings.HasPrefix(content,
		"--- Expense report for the trip between 2024-06-07 and 2024-06-09 in colombia ---"))
}

func TestComposeCoversEveryCalendarDay(t *testing.T) {
	content := Compose(sampleTrip())

	// includes 2024-06-08 even though nothing was spent that day
	for _, day := range []string{"Expenses 2024-06-07:", "Expenses 2024-06-08:", "Expenses 2024-06-09:"} {
		require.Contains(t, content, day)
	}
}

func TestComposeDailyTotals(t *testing.T) {
	content := Compose(sampleTrip())

	daySection := content[strings.Index(content, "Expenses 2024-06-07:"):strings.Index(content, "Expenses 2024-06-08:")]
	require.Contains(t, daySection, "Cash : 50000")
	require.Contains(t, daySection, "Card : 30000")
	require.Contains(t, daySection, "Total: 80000")
}

func TestComposeCategoriesInDefinedOrder(t *testing.T) {
	content := Compose(sampleTrip())

	last := -1
	for _, category := range trip.Categories {
		index := strings.Index(content, "Expenses on "+string(category)+":")
		require.GreaterOrEqual(t, index, 0, "category %s missing", category)
		require.Greater(t, index, last, "category %s out of order", category)
		last = index
	}

	foodSection := content[strings.Index(content, "Expenses on food:"):strings.Index(content, "Expenses on entertainment:")]
	require.Contains(t, foodSection, "Cash : 50000")
	require.Contains(t, foodSection, "Card : 20000")
	require.Contains(t, foodSection, "Total: 70000")
}

func TestComposeGrandTotal(t *testing.T) {
	content := Compose(sampleTrip())
	require.Contains(t, content, "Total trip expenses: 100000")
}

func TestGeneratePDFWritesThroughPDFSink(t *testing.T) {
	pdfSink := &memorySink{}
	generator := NewGenerator(&memorySink{}, pdfSink)

	message, err := generator.GeneratePDF(sampleTrip())
	require.NoError(t, err)
	require.Equal(t, "PDF report generated successfully", message)
	require.Equal(t, 1, pdfSink.writes)
	require.True(t, strings.HasPrefix(string(pdfSink.content), "%PDF"))
}
