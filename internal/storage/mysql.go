package storage

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/camilourd/trip_tracker/internal/trip"
	"github.com/camilourd/trip_tracker/logging"
)

// MySQLStorage keeps the trip collection in MySQL while preserving the
// tracker's whole-collection contract: SaveAllTrips replaces every row in
// one transaction, so the last writer still wins and concurrent writers are
// still unsupported.
type MySQLStorage struct {
	db *sql.DB
}

func NewMySQLStorage(db *sql.DB) *MySQLStorage {
	return &MySQLStorage{db: db}
}

// Init connects to MySQL from environment configuration, creating the
// database and tables when they do not exist yet.
func Init() (*sql.DB, error) {
	username := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	dbname := os.Getenv("DB_NAME")
	fullDsn := os.Getenv("FULL_DSN")

	if dbname == "" {
		dbname = "trip_tracker"
	}

	var adminDsn string
	if fullDsn != "" {
		parts := strings.Split(fullDsn, "/")
		adminDsn = strings.Join(parts[:len(parts)-1], "/") + "/"
	} else {
		if username == "" || password == "" || host == "" || port == "" {
			return nil, fmt.Errorf("missing required DB environment variables")
		}
		adminDsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/", username, password, host, port)
	}

	logging.Logger.Info("Connecting to MySQL server for initialization...")
	adminDb, err := sql.Open("mysql", adminDsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open admin mysql handle: %v", err)
	}
	connected := false
	for i := 0; i < 15; i++ {
		if err := adminDb.Ping(); err == nil {
			connected = true
			break
		}
		logging.Logger.Warnf("Database not ready, retrying... (%d/15)", i+1)
		time.Sleep(3 * time.Second)
	}
	if !connected {
		adminDb.Close()
		return nil, fmt.Errorf("database unreachable after multiple attempts")
	}

	createDbSql := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci;", dbname)
	if _, err := adminDb.Exec(createDbSql); err != nil {
		adminDb.Close()
		return nil, fmt.Errorf("failed to create database: %v", err)
	}
	adminDb.Close()

	var finalDsn string
	if fullDsn != "" {
		finalDsn = fullDsn
	} else {
		finalDsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", username, password, host, port, dbname)
	}

	db, err := sql.Open("mysql", finalDsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database handle: %v", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %v", err)
	}

	logging.Logger.Info("Connected to database successfully")
	return db, nil
}

func createTables(db *sql.DB) error {
	// Dates are stored as ISO-8601 strings, matching the JSON record shape.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS trips (
			id VARCHAR(36) PRIMARY KEY,
			position INT NOT NULL,
			destino VARCHAR(32) NOT NULL,
			fecha_inicio CHAR(10) NOT NULL,
			fecha_fin CHAR(10) NOT NULL,
			presupuesto_diario DOUBLE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id VARCHAR(36) PRIMARY KEY,
			trip_id VARCHAR(36) NOT NULL,
			position INT NOT NULL,
			fecha CHAR(10) NOT NULL,
			valor DOUBLE NOT NULL,
			metodo_pago VARCHAR(16) NOT NULL,
			tipo_gasto VARCHAR(32) NOT NULL,
			FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStorage) GetStorageType() string {
	return "mysql"
}

func (s *MySQLStorage) LoadAllTrips() ([]trip.Trip, error) {
	rows, err := s.db.Query(`SELECT id, destino, fecha_inicio, fecha_fin, presupuesto_diario FROM trips ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := []trip.Trip{}
	tripIds := []string{}
	for rows.Next() {
		var row dbTrip
		if err := rows.Scan(&row.ID, &row.Destino, &row.FechaInicio, &row.FechaFin, &row.PresupuestoDiario); err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		t, err := row.toTrip()
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
		tripIds = append(tripIds, row.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trip rows: %w", err)
	}

	for i, tripId := range tripIds {
		expenses, err := s.loadExpenses(tripId)
		if err != nil {
			return nil, err
		}
		trips[i].Expenses = expenses
	}
	return trips, nil
}

func (s *MySQLStorage) loadExpenses(tripId string) ([]trip.Expense, error) {
	rows, err := s.db.Query(`SELECT fecha, valor, metodo_pago, tipo_gasto FROM expenses WHERE trip_id = ? ORDER BY position`, tripId)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []trip.Expense{}
	for rows.Next() {
		var row dbExpense
		if err := rows.Scan(&row.Fecha, &row.Valor, &row.MetodoPago, &row.TipoGasto); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expense, err := row.toExpense()
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense rows: %w", err)
	}
	return expenses, nil
}

func (s *MySQLStorage) SaveAllTrips(trips []trip.Trip) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM expenses`); err != nil {
		return fmt.Errorf("failed to clear expenses: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM trips`); err != nil {
		return fmt.Errorf("failed to clear trips: %w", err)
	}

	for position, t := range trips {
		tripId := uuid.New().String()
		_, err := tx.Exec(`INSERT INTO trips (id, position, destino, fecha_inicio, fecha_fin, presupuesto_diario) VALUES (?, ?, ?, ?, ?, ?)`,
			tripId, position, string(t.Destination), t.StartDate.String(), t.EndDate.String(), t.DailyBudget)
		if err != nil {
			return fmt.Errorf("failed to insert trip: %w", err)
		}
		for expensePos, expense := range t.Expenses {
			_, err := tx.Exec(`INSERT INTO expenses (id, trip_id, position, fecha, valor, metodo_pago, tipo_gasto) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				uuid.New().String(), tripId, expensePos, expense.Date.String(), expense.Amount,
				string(expense.PaymentMethod), string(expense.Category))
			if err != nil {
				return fmt.Errorf("failed to insert expense: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save transaction: %w", err)
	}
	return nil
}
