package trip

import (
	"fmt"
	"strings"

	appErrors "github.com/camilourd/trip_tracker/errors"
)

// Destination is the place a trip goes to. Colombia is the reference locale:
// every amount is stored in Colombian pesos after conversion.
type Destination string

const (
	DestinationColombia Destination = "colombia"
	DestinationUSA      Destination = "usa"
	DestinationEuropa   Destination = "europa"
)

var destinations = []Destination{DestinationColombia, DestinationUSA, DestinationEuropa}

func ParseDestination(value string) (Destination, error) {
	normalized := Destination(strings.ToLower(strings.TrimSpace(value)))
	for _, d := range destinations {
		if d == normalized {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not an accepted destination", appErrors.ErrInvalidDestination, value)
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

func ParsePaymentMethod(value string) (PaymentMethod, error) {
	normalized := PaymentMethod(strings.ToLower(strings.TrimSpace(value)))
	if normalized == PaymentCash || normalized == PaymentCard {
		return normalized, nil
	}
	return "", fmt.Errorf("%w: %q is not an accepted payment method", appErrors.ErrInvalidPaymentMethod, value)
}

type Category string

const (
	CategoryTransport     Category = "transport"
	CategoryLodging       Category = "lodging"
	CategoryFood          Category = "food"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
)

// Categories lists every accepted expense category. Reports iterate it in
// this order.
var Categories = []Category{
	CategoryTransport,
	CategoryLodging,
	CategoryFood,
	CategoryEntertainment,
	CategoryShopping,
}

func ParseCategory(value string) (Category, error) {
	normalized := Category(strings.ToLower(strings.TrimSpace(value)))
	for _, c := range Categories {
		if c == normalized {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not an accepted category", appErrors.ErrInvalidCategory, value)
}

// Expense is a dated, categorized amount belonging to one trip. Amounts are
// already converted to the reference currency when the expense is built.
// The JSON tags are the persisted record shape of the trip store.
type Expense struct {
	Date          Date          `json:"fecha"`
	Amount        float64       `json:"valor"`
	PaymentMethod PaymentMethod `json:"metodo_pago"`
	Category      Category      `json:"tipo_gasto"`
}

// Trip holds a destination, an inclusive date range, the converted daily
// budget and the ordered expenses registered against it.
type Trip struct {
	Destination Destination `json:"destino"`
	StartDate   Date        `json:"fecha_inicio"`
	EndDate     Date        `json:"fecha_fin"`
	DailyBudget float64     `json:"presupuesto_diario"`
	Expenses    []Expense   `json:"gastos"`
}

func NewTrip(destination Destination, start, end Date, dailyBudget float64) Trip {
	return Trip{
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		DailyBudget: dailyBudget,
		Expenses:    []Expense{},
	}
}

// Contains reports whether date falls inside the trip's range, both ends
// inclusive.
func (t Trip) Contains(date Date) bool {
	return !date.Before(t.StartDate) && !date.After(t.EndDate)
}

// Overlaps reports whether [start,end] intersects the trip's range. Bounds
// are inclusive, so a shared boundary day counts as overlap.
func (t Trip) Overlaps(start, end Date) bool {
	return !start.After(t.EndDate) && !t.StartDate.After(end)
}

func (t *Trip) AddExpense(expense Expense) {
	t.Expenses = append(t.Expenses, expense)
}

func (t Trip) ExpensesOn(date Date) []Expense {
	var result []Expense
	for _, expense := range t.Expenses {
		if expense.Date.Equal(date) {
			result = append(result, expense)
		}
	}
	return result
}

// DayTotal sums the expenses registered on the given date.
func (t Trip) DayTotal(date Date) float64 {
	var total float64
	for _, expense := range t.ExpensesOn(date) {
		total += expense.Amount
	}
	return total
}

// DayBalance is the daily budget minus the same-day expense total.
func (t Trip) DayBalance(date Date) float64 {
	return t.DailyBudget - t.DayTotal(date)
}

func (t Trip) TotalSpent() float64 {
	var total float64
	for _, expense := range t.Expenses {
		total += expense.Amount
	}
	return total
}
