package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	appErrors "github.com/camilourd/trip_tracker/errors"
	"github.com/camilourd/trip_tracker/internal/report"
	"github.com/camilourd/trip_tracker/internal/trip"
	"github.com/camilourd/trip_tracker/logging"
)

// runMenu drives the interactive text menu. Failures are already logged by
// the registrar; the loop just returns to the menu.
func runMenu(tracker *trip.TripTracker, reports report.Generator) {
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Println()
		fmt.Println("--- Trip tracker ---")
		fmt.Println("1. Register trip")
		fmt.Println("2. Register expense")
		fmt.Println("3. Generate report")
		fmt.Println("4. Generate PDF report")
		fmt.Println("5. Exit")

		switch prompt(scanner, "Option: ") {
		case "1":
			registerTrip(ctx, scanner, tracker)
		case "2":
			registerExpense(ctx, scanner, tracker)
		case "3":
			generateReport(scanner, tracker, reports, false)
		case "4":
			generateReport(scanner, tracker, reports, true)
		case "5":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown option")
		}
	}
}

func registerTrip(ctx context.Context, scanner *bufio.Scanner, tracker *trip.TripTracker) {
	destination := prompt(scanner, "Destination (colombia/usa/europa): ")
	startDate := prompt(scanner, "Start date (YYYY-MM-DD): ")
	endDate := prompt(scanner, "End date (YYYY-MM-DD): ")
	budget, ok := promptAmount(scanner, "Daily budget (destination currency): ")
	if !ok {
		return
	}

	message, err := tracker.RegisterTrip(ctx, trip.TripRequest{
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		DailyBudget: budget,
	})
	if err == nil {
		fmt.Println(message)
	}
}

func registerExpense(ctx context.Context, scanner *bufio.Scanner, tracker *trip.TripTracker) {
	date := prompt(scanner, "Expense date (YYYY-MM-DD): ")
	amount, ok := promptAmount(scanner, "Amount (destination currency): ")
	if !ok {
		return
	}
	method := prompt(scanner, "Payment method (cash/card): ")
	category := prompt(scanner, "Category (transport/lodging/food/entertainment/shopping): ")

	message, err := tracker.RegisterExpense(ctx, trip.ExpenseRequest{
		Date:          date,
		Amount:        amount,
		PaymentMethod: method,
		Category:      category,
	})
	if err == nil {
		fmt.Println(message)
	}
}

func generateReport(scanner *bufio.Scanner, tracker *trip.TripTracker, reports report.Generator, pdf bool) {
	raw := prompt(scanner, "Any date within the trip (YYYY-MM-DD): ")
	date, err := trip.ParseDate(raw)
	if err != nil {
		logging.Logger.Error(err)
		return
	}

	_, found, err := tracker.GetTrip(date)
	if err != nil {
		logging.Logger.Error(err)
		return
	}

	var message string
	if pdf {
		message, err = reports.GeneratePDF(*found)
	} else {
		message, err = reports.Generate(*found)
	}
	if err != nil {
		logging.Logger.Error(err)
		return
	}
	fmt.Println(message)
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func promptAmount(scanner *bufio.Scanner, label string) (float64, bool) {
	raw := prompt(scanner, label)
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logging.Logger.Error(fmt.Errorf("%w: %q is not a number", appErrors.ErrInvalidInput, raw))
		return 0, false
	}
	return amount, true
}
