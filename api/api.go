package api

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/0xcafe-io/iz"

	"github.com/camilourd/trip_tracker/internal/report"
	"github.com/camilourd/trip_tracker/internal/trip"
	"github.com/camilourd/trip_tracker/logging"
)

type Api struct {
	Service *trip.TripTracker
	Reports report.Generator
}

func NewApi(service *trip.TripTracker, reports report.Generator) *Api {
	return &Api{
		Service: service,
		Reports: reports,
	}
}

func (api *Api) RegisterTripHandler(r *iz.Request) iz.Responder {
	var req RegisterTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		msg := fmt.Sprintf("invalid request body: %s", err.Error())
		return iz.Respond().Status(400).Text(msg)
	}

	budget, err := strconv.ParseFloat(req.DailyBudget, 64)
	if err != nil {
		msg := fmt.Sprintf("failed to convert daily budget: %v", err)
		return iz.Respond().Status(400).Text(msg)
	}

	message, err := api.Service.RegisterTrip(r.Context(), trip.TripRequest{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		DailyBudget: budget,
	})
	if err != nil {
		return iz.Respond().Status(httpStatusFromError(err)).JSON(errorBody(err))
	}
	return iz.Respond().Status(201).JSON(MessageResponse{Message: message})
}

func (api *Api) RegisterExpenseHandler(r *iz.Request) iz.Responder {
	var req RegisterExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logging.Logger.Errorf("Failed to parse register expense request: %v", err)
		msg := fmt.Sprintf("invalid request body: %s", err.Error())
		return iz.Respond().Status(400).Text(msg)
	}

	amount, err := strconv.ParseFloat(req.Amount, 64)
	if err != nil {
		msg := fmt.Sprintf("failed to convert amount: %v", err)
		return iz.Respond().Status(400).Text(msg)
	}

	message, err := api.Service.RegisterExpense(r.Context(), trip.ExpenseRequest{
		Date:          req.Date,
		Amount:        amount,
		PaymentMethod: req.PaymentMethod,
		Category:      req.Category,
	})
	if err != nil {
		return iz.Respond().Status(httpStatusFromError(err)).JSON(errorBody(err))
	}
	return iz.Respond().Status(201).JSON(MessageResponse{Message: message})
}

func (api *Api) GetTripHandler(r *iz.Request) iz.Responder {
	date, responder := api.dateParam(r)
	if responder != nil {
		return responder
	}

	_, found, err := api.Service.GetTrip(date)
	if err != nil {
		return iz.Respond().Status(httpStatusFromError(err)).JSON(errorBody(err))
	}
	return iz.Respond().Status(200).JSON(TripToHttp(*found))
}

func (api *Api) GenerateReportHandler(r *iz.Request) iz.Responder {
	date, responder := api.dateParam(r)
	if responder != nil {
		return responder
	}

	_, found, err := api.Service.GetTrip(date)
	if err != nil {
		return iz.Respond().Status(httpStatusFromError(err)).JSON(errorBody(err))
	}

	message, err := api.Reports.Generate(*found)
	if err != nil {
		msg := fmt.Sprintf("failed to generate report: %v", err)
		return iz.Respond().Status(500).Text(msg)
	}
	if _, err := api.Reports.GeneratePDF(*found); err != nil {
		msg := fmt.Sprintf("failed to generate PDF report: %v", err)
		return iz.Respond().Status(500).Text(msg)
	}
	return iz.Respond().Status(200).JSON(MessageResponse{Message: message})
}

func (api *Api) dateParam(r *iz.Request) (trip.Date, iz.Responder) {
	params := r.URL.Query()
	raw := params.Get("date")
	if raw == "" {
		return trip.Date{}, iz.Respond().Status(400).Text("date query parameter is required")
	}
	date, err := trip.ParseDate(raw)
	if err != nil {
		return trip.Date{}, iz.Respond().Status(httpStatusFromError(err)).JSON(errorBody(err))
	}
	return date, nil
}
