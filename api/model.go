package api

import (
	"errors"

	appErrors "github.com/camilourd/trip_tracker/errors"
	"github.com/camilourd/trip_tracker/internal/trip"
)

// REQUESTS:

type RegisterTripRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	DailyBudget string `json:"daily_budget"` // keep as string to mirror the interactive prompt
}

type RegisterExpenseRequest struct {
	Date          string `json:"date"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	Category      string `json:"category"`
}

// RESPONSES:

type MessageResponse struct {
	Message string `json:"message"`
}

type ExpenseItem struct {
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Category      string  `json:"category"`
}

type TripItem struct {
	Destination string        `json:"destination"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	DailyBudget float64       `json:"daily_budget"`
	Expenses    []ExpenseItem `json:"expenses"`
}

func TripToHttp(t trip.Trip) TripItem {
	expenses := make([]ExpenseItem, 0, len(t.Expenses))
	for _, expense := range t.Expenses {
		expenses = append(expenses, ExpenseItem{
			Date:          expense.Date.String(),
			Amount:        expense.Amount,
			PaymentMethod: string(expense.PaymentMethod),
			Category:      string(expense.Category),
		})
	}
	return TripItem{
		Destination: string(t.Destination),
		StartDate:   t.StartDate.String(),
		EndDate:     t.EndDate.String(),
		DailyBudget: t.DailyBudget,
		Expenses:    expenses,
	}
}

func errorBody(err error) appErrors.ErrorResponse {
	return appErrors.ErrorResponse{
		Code:    appErrors.Code(err),
		Message: err.Error(),
	}
}

func httpStatusFromError(err error) int {
	switch {
	case errors.Is(err, appErrors.ErrNoTripForDate):
		return 404 // not found
	case errors.Is(err, appErrors.ErrOverlappingDates):
		return 409 // conflict
	case errors.Is(err, appErrors.ErrRateLookupTimeout):
		return 504 // upstream rate source timed out
	case errors.Is(err, appErrors.ErrInvalidDestination),
		errors.Is(err, appErrors.ErrInvalidDateFormat),
		errors.Is(err, appErrors.ErrInvalidDateRange),
		errors.Is(err, appErrors.ErrInvalidPaymentMethod),
		errors.Is(err, appErrors.ErrInvalidCategory),
		errors.Is(err, appErrors.ErrNegativeAmount),
		errors.Is(err, appErrors.ErrInvalidInput):
		return 400 // bad request
	default:
		return 500 // internal error
	}
}
