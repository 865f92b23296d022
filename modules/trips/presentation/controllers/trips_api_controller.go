package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vinbees/hive-sdk/modules/trips/presentation/controllers/dtos"
	"github.com/vinbees/hive-sdk/modules/trips/services"
	"github.com/vinbees/hive-sdk/pkg/application"
	"github.com/vinbees/hive-sdk/pkg/httpapi"
	"github.com/vinbees/hive-sdk/pkg/serrors"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

type TripsAPIController struct {
	app      application.Application
	trips    *services.TripService
	basePath string
}

func NewTripsAPIController(app application.Application) application.Controller {
	return &TripsAPIController{
		app:      app,
		trips:    app.Service(services.TripService{}).(*services.TripService),
		basePath: "/trips/api",
	}
}

func (c *TripsAPIController) Key() string {
	return c.basePath
}

func (c *TripsAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/trips", c.List).Methods(http.MethodGet)
	router.HandleFunc("/trips", c.Save).Methods(http.MethodPost)
	router.HandleFunc("/trips/{id}/totals", c.Totals).Methods(http.MethodGet)
	router.HandleFunc("/trips/submit", c.Submit).Methods(http.MethodPost)
}

func (c *TripsAPIController) List(w http.ResponseWriter, r *http.Request) {
	trips, err := c.trips.Trips(r.Context())
	if err != nil {
		httpapi.WriteUpstreamError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{"trips": trips})
}

func (c *TripsAPIController) Save(w http.ResponseWriter, r *http.Request) {
	var dto dtos.SaveTripDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dtos.Validate(&dto); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}

	trip := &vinbees.Trip{
		ID:          dto.ID,
		DateFrom:    dto.DateFrom,
		DateTo:      dto.DateTo,
		Destination: dto.Destination,
		Goal:        dto.Goal,
	}
	for _, e := range dto.Expenses {
		trip.Expenses = append(trip.Expenses, vinbees.TripExpense{
			ID:       e.ID,
			Type:     e.Type,
			Currency: e.Currency,
			Amount:   e.Amount,
			FileName: e.FileName,
		})
	}

	saved, err := c.trips.Save(r.Context(), trip)
	if err != nil {
		c.writeTripError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, saved)
}

func (c *TripsAPIController) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := c.trips.ExpenseTotals(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		c.writeTripError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{"totals": totals})
}

func (c *TripsAPIController) Submit(w http.ResponseWriter, r *http.Request) {
	var dto dtos.SubmitTripDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteValidationError(w, map[string]string{"body": "malformed json"})
		return
	}
	if fields, ok := dtos.Validate(&dto); !ok {
		httpapi.WriteValidationError(w, fields)
		return
	}
	if err := c.trips.Submit(r.Context(), dto.TripID); err != nil {
		c.writeTripError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *TripsAPIController) writeTripError(w http.ResponseWriter, err error) {
	var serr *serrors.Error
	if errors.As(err, &serr) {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, services.ErrTripNotFound) {
			status = http.StatusNotFound
		}
		httpapi.WriteError(w, status, serr.Code, serr.Message, nil)
		return
	}
	httpapi.WriteUpstreamError(w, err)
}
