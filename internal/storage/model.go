package storage

import (
	"fmt"

	"github.com/camilourd/trip_tracker/internal/trip"
)

type dbTrip struct {
	ID                string
	Destino           string
	FechaInicio       string
	FechaFin          string
	PresupuestoDiario float64
}

type dbExpense struct {
	ID         string
	TripID     string
	Fecha      string
	Valor      float64
	MetodoPago string
	TipoGasto  string
}

func (row dbTrip) toTrip() (trip.Trip, error) {
	start, err := trip.ParseDate(row.FechaInicio)
	if err != nil {
		return trip.Trip{}, fmt.Errorf("invalid fecha_inicio in trip row %s: %w", row.ID, err)
	}
	end, err := trip.ParseDate(row.FechaFin)
	if err != nil {
		return trip.Trip{}, fmt.Errorf("invalid fecha_fin in trip row %s: %w", row.ID, err)
	}
	return trip.NewTrip(trip.Destination(row.Destino), start, end, row.PresupuestoDiario), nil
}

func (row dbExpense) toExpense() (trip.Expense, error) {
	date, err := trip.ParseDate(row.Fecha)
	if err != nil {
		return trip.Expense{}, fmt.Errorf("invalid fecha in expense row: %w", err)
	}
	return trip.Expense{
		Date:          date,
		Amount:        row.Valor,
		PaymentMethod: trip.PaymentMethod(row.MetodoPago),
		Category:      trip.Category(row.TipoGasto),
	}, nil
}
