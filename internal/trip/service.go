package trip

import (
	"context"
	"fmt"
	"strconv"

	appErrors "github.com/camilourd/trip_tracker/errors"
	"github.com/camilourd/trip_tracker/logging"
)

// Storage persists the whole trip collection. Every mutation is a
// load-mutate-save cycle over the full collection: last write wins, no
// locking. The tracker assumes a single process and a single user; see the
// backend implementations before pointing two writers at the same store.
type Storage interface {
	LoadAllTrips() ([]Trip, error)
	SaveAllTrips(trips []Trip) error
	GetStorageType() string
}

// Converter turns an amount in the destination's local currency into the
// reference currency.
type Converter interface {
	Convert(ctx context.Context, place string, amount float64) (float64, error)
}

type TripRequest struct {
	Destination string
	StartDate   string
	EndDate     string
	DailyBudget float64
}

type ExpenseRequest struct {
	Date          string
	Amount        float64
	PaymentMethod string
	Category      string
}

// TripTracker enforces the registration rules and orchestrates conversion
// and persistence.
type TripTracker struct {
	storage     Storage
	converter   Converter
	StorageType string
}

func NewTripTracker(s Storage, c Converter) TripTracker {
	return TripTracker{
		storage:     s,
		converter:   c,
		StorageType: s.GetStorageType(),
	}
}

// RegisterTrip validates and persists a new trip. Nothing is written when
// any validation or the currency conversion fails.
func (tt *TripTracker) RegisterTrip(ctx context.Context, req TripRequest) (string, error) {
	destination, err := ParseDestination(req.Destination)
	if err != nil {
		return tt.fail(err)
	}

	start, err := ParseDate(req.StartDate)
	if err != nil {
		return tt.fail(err)
	}
	end, err := ParseDate(req.EndDate)
	if err != nil {
		return tt.fail(err)
	}
	if !end.After(start) {
		return tt.fail(fmt.Errorf("%w: end date %s is not after start date %s", appErrors.ErrInvalidDateRange, end, start))
	}

	trips, err := tt.storage.LoadAllTrips()
	if err != nil {
		return tt.fail(fmt.Errorf("failed to load trips: %w", err))
	}
	for _, existing := range trips {
		if existing.Overlaps(start, end) {
			return tt.fail(fmt.Errorf("%w: [%s, %s] intersects the trip to %s [%s, %s]",
				appErrors.ErrOverlappingDates, start, end, existing.Destination, existing.StartDate, existing.EndDate))
		}
	}

	budget, err := tt.converter.Convert(ctx, string(destination), req.DailyBudget)
	if err != nil {
		return tt.fail(fmt.Errorf("failed to convert daily budget: %w", err))
	}

	trips = append(trips, NewTrip(destination, start, end, budget))
	if err := tt.storage.SaveAllTrips(trips); err != nil {
		return tt.fail(fmt.Errorf("failed to save trips: %w", err))
	}
	return "Trip registered successfully", nil
}

// RegisterExpense validates and appends an expense to the trip whose date
// range contains the expense date, then persists the whole collection. The
// returned message carries the daily budget, the total spent that day and
// the remaining day balance.
func (tt *TripTracker) RegisterExpense(ctx context.Context, req ExpenseRequest) (string, error) {
	date, err := ParseDate(req.Date)
	if err != nil {
		return tt.fail(err)
	}

	trips, found, err := tt.GetTrip(date)
	if err != nil {
		return tt.fail(err)
	}

	method, err := ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return tt.fail(err)
	}
	category, err := ParseCategory(req.Category)
	if err != nil {
		return tt.fail(err)
	}

	amount, err := tt.converter.Convert(ctx, string(found.Destination), req.Amount)
	if err != nil {
		return tt.fail(fmt.Errorf("failed to convert expense amount: %w", err))
	}

	found.AddExpense(Expense{
		Date:          date,
		Amount:        amount,
		PaymentMethod: method,
		Category:      category,
	})
	spent := found.DayTotal(date)
	balance := found.DayBalance(date)

	if err := tt.storage.SaveAllTrips(trips); err != nil {
		return tt.fail(fmt.Errorf("failed to save trips: %w", err))
	}

	message := "Expense registered successfully"
	message += fmt.Sprintf("\nBalance for %s:", date)
	message += fmt.Sprintf("\n  Daily budget: %s", FormatAmount(found.DailyBudget))
	message += fmt.Sprintf("\n  Spent: %s", FormatAmount(spent))
	message += fmt.Sprintf("\n  Day balance: %s", FormatAmount(balance))
	return message, nil
}

// GetTrip returns every persisted trip plus a pointer to the first one whose
// range contains the given date. The pointer aliases the returned slice so
// mutations through it are captured by a later SaveAllTrips.
func (tt *TripTracker) GetTrip(date Date) ([]Trip, *Trip, error) {
	trips, err := tt.storage.LoadAllTrips()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load trips: %w", err)
	}
	for i := range trips {
		if trips[i].Contains(date) {
			return trips, &trips[i], nil
		}
	}
	return nil, nil, fmt.Errorf("%w: no trip covers %s", appErrors.ErrNoTripForDate, date)
}

// fail logs the full error and surfaces it to the caller with an empty
// message; the interactive loop keeps running regardless.
func (tt *TripTracker) fail(err error) (string, error) {
	logging.Logger.Error(err)
	return "", err
}

// FormatAmount renders a reference-currency amount without trailing zeros,
// so whole-peso balances read exactly.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
