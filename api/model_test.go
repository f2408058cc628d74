package api

import (
	"errors"
	"fmt"
	"testing"

	appErrors "github.com/camilourd/trip_tracker/errors"
	"github.com/camilourd/trip_tracker/internal/trip"
)

func TestHttpStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{appErrors.ErrNoTripForDate, 404},
		{appErrors.ErrOverlappingDates, 409},
		{appErrors.ErrRateLookupTimeout, 504},
		{appErrors.ErrInvalidDestination, 400},
		{appErrors.ErrInvalidDateFormat, 400},
		{appErrors.ErrInvalidDateRange, 400},
		{appErrors.ErrInvalidPaymentMethod, 400},
		{appErrors.ErrInvalidCategory, 400},
		{appErrors.ErrNegativeAmount, 400},
		{appErrors.ErrInvalidInput, 400},
		{errors.New("something else"), 500},
	}

	for _, tt := range tests {
		wrapped := fmt.Errorf("failed to register trip: %w", tt.err)
		if got := httpStatusFromError(wrapped); got != tt.want {
			t.Errorf("httpStatusFromError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestTripToHttp(t *testing.T) {
	tr := trip.NewTrip(trip.DestinationUSA, trip.NewDate(2024, 6, 7), trip.NewDate(2024, 6, 8), 180000)
	tr.AddExpense(trip.Expense{Date: trip.NewDate(2024, 6, 7), Amount: 52000, PaymentMethod: trip.PaymentCash, Category: trip.CategoryFood})

	item := TripToHttp(tr)
	if item.Destination != "usa" || item.StartDate != "2024-06-07" || item.EndDate != "2024-06-08" {
		t.Errorf("Unexpected trip mapping: %+v", item)
	}
	if len(item.Expenses) != 1 || item.Expenses[0].Category != "food" || item.Expenses[0].Date != "2024-06-07" {
		t.Errorf("Unexpected expense mapping: %+v", item.Expenses)
	}
}
