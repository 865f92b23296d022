package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinbees/hive-sdk/modules/trips/services"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

type stubTripsAPI struct {
	trips     []vinbees.Trip
	saved     []*vinbees.Trip
	submitted []string
}

func (a *stubTripsAPI) GetTrips(_ context.Context) ([]vinbees.Trip, error) {
	return a.trips, nil
}

func (a *stubTripsAPI) SaveTrip(_ context.Context, trip *vinbees.Trip) (*vinbees.Trip, error) {
	a.saved = append(a.saved, trip)
	if trip.ID == "" {
		trip.ID = "trip-new"
	}
	return trip, nil
}

func (a *stubTripsAPI) SubmitTrip(_ context.Context, tripID string) error {
	a.submitted = append(a.submitted, tripID)
	return nil
}

func seedTrips() *stubTripsAPI {
	return &stubTripsAPI{trips: []vinbees.Trip{
		{
			ID: "t1", Status: services.StatusDraft, DateFrom: "2024-05-10", DateTo: "2024-05-12",
			Destination: "Lviv", Goal: "Conference",
			Expenses: []vinbees.TripExpense{
				{ID: 1, Type: "hotel", Currency: "UAH", Amount: 3200.50},
				{ID: 2, Type: "taxi", Currency: "UAH", Amount: 249.90},
				{ID: 3, Type: "meals", Currency: "EUR", Amount: 41.30},
			},
		},
		{ID: "t2", Status: services.StatusSubmitted, Destination: "Kyiv"},
	}}
}

func TestTripService_SumExpenses(t *testing.T) {
	totals := services.SumExpenses(seedTrips().trips[0].Expenses)
	require.Len(t, totals, 2)

	assert.Equal(t, "EUR", totals[0].Currency)
	assert.True(t, totals[0].Total.Equal(decimal.RequireFromString("41.3")))

	assert.Equal(t, "UAH", totals[1].Currency)
	// Float arithmetic would give 3450.3999…; decimal keeps it exact.
	assert.True(t, totals[1].Total.Equal(decimal.RequireFromString("3450.4")))
}

func TestTripService_Submit(t *testing.T) {
	api := seedTrips()
	svc := services.NewTripService(api)

	require.NoError(t, svc.Submit(context.Background(), "t1"))
	assert.Equal(t, []string{"t1"}, api.submitted)

	err := svc.Submit(context.Background(), "t2")
	require.ErrorIs(t, err, services.ErrTripNotDraft)

	err = svc.Submit(context.Background(), "missing")
	require.ErrorIs(t, err, services.ErrTripNotFound)
}

func TestTripService_Save(t *testing.T) {
	api := seedTrips()
	svc := services.NewTripService(api)

	t.Run("new draft", func(t *testing.T) {
		trip, err := svc.Save(context.Background(), &vinbees.Trip{Destination: "Odesa", DateFrom: "2024-06-01", DateTo: "2024-06-03"})
		require.NoError(t, err)
		assert.Equal(t, services.StatusDraft, trip.Status)
		assert.NotEmpty(t, trip.ID)
	})

	t.Run("inverted date range", func(t *testing.T) {
		_, err := svc.Save(context.Background(), &vinbees.Trip{DateFrom: "2024-06-03", DateTo: "2024-06-01"})
		require.ErrorIs(t, err, services.ErrBadDateRange)
	})

	t.Run("negative expense", func(t *testing.T) {
		_, err := svc.Save(context.Background(), &vinbees.Trip{
			Expenses: []vinbees.TripExpense{{Currency: "UAH", Amount: -5}},
		})
		require.ErrorIs(t, err, services.ErrNegativeSpend)
	})

	t.Run("submitted trip is read-only", func(t *testing.T) {
		_, err := svc.Save(context.Background(), &vinbees.Trip{ID: "t2", Destination: "Kyiv"})
		require.ErrorIs(t, err, services.ErrTripNotDraft)
	})
}
