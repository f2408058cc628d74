package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/0xcafe-io/iz"
	"github.com/rs/cors"

	"github.com/camilourd/trip_tracker/api"
	"github.com/camilourd/trip_tracker/internal/currency"
	"github.com/camilourd/trip_tracker/internal/report"
	"github.com/camilourd/trip_tracker/internal/storage"
	"github.com/camilourd/trip_tracker/internal/trip"
	"github.com/camilourd/trip_tracker/logging"
)

var corsConf = cors.New(cors.Options{
	AllowedOrigins:   []string{"*"},
	AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
	AllowedHeaders:   []string{"Content-Type"},
	AllowCredentials: true,
})

func main() {
	if err := logging.Init("debug"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return
	}

	logging.Logger.Info("trip tracker starting...")

	store, err := buildStorage()
	if err != nil {
		logging.Logger.Errorf("failed to initialize storage: %v", err)
		return
	}

	converter := currency.NewConverter(currency.NewHTTPRateSource(os.Getenv("RATE_API_URL"), rateTimeout()))
	tracker := trip.NewTripTracker(store, converter)
	reports := report.NewGenerator(
		report.FileSink{Path: envOrDefault("REPORT_FILE", "archivos/reporte.txt")},
		report.FileSink{Path: envOrDefault("REPORT_PDF_FILE", "archivos/reporte.pdf")},
	)

	if strings.ToLower(os.Getenv("APP_MODE")) == "server" {
		runServer(&tracker, reports)
		return
	}
	runMenu(&tracker, reports)
}

func buildStorage() (trip.Storage, error) {
	switch strings.ToLower(os.Getenv("STORAGE_BACKEND")) {
	case "mysql":
		db, err := storage.Init()
		if err != nil {
			return nil, err
		}
		return storage.NewMySQLStorage(db), nil
	case "inmemory":
		return storage.NewInMemoryStorage(), nil
	default:
		return storage.NewJSONFileStorage(envOrDefault("TRIPS_FILE", "archivos/viajes.json")), nil
	}
}

func runServer(tracker *trip.TripTracker, reports report.Generator) {
	server := http.NewServeMux()
	a := api.NewApi(tracker, reports)

	server.HandleFunc("POST /api/trip", iz.Bind(a.RegisterTripHandler))       // Register Trip
	server.HandleFunc("POST /api/expense", iz.Bind(a.RegisterExpenseHandler)) // Register Expense
	server.HandleFunc("GET /api/trip", iz.Bind(a.GetTripHandler))             // Get Trip covering ?date=
	server.HandleFunc("POST /api/report", iz.Bind(a.GenerateReportHandler))   // Generate report for ?date=

	port := envOrDefault("APP_PORT", "8080")
	fmt.Println("Starting server on port:", port)
	if err := http.ListenAndServe(":"+port, corsConf.Handler(server)); err != nil {
		logging.Logger.Errorf("failed to start server: %v", err)
	}
}

func rateTimeout() time.Duration {
	raw := os.Getenv("RATE_TIMEOUT")
	if raw == "" {
		return currency.DefaultRateTimeout
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		logging.Logger.Warnf("invalid RATE_TIMEOUT %q, using default", raw)
		return currency.DefaultRateTimeout
	}
	return time.Duration(seconds) * time.Second
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
