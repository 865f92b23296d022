package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vinbees/hive-sdk/pkg/serrors"
	"github.com/vinbees/hive-sdk/pkg/vinbees"
)

const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
)

var (
	ErrTripNotFound  = serrors.NewError("TRIP_NOT_FOUND", "trip not found", "")
	ErrTripNotDraft  = serrors.NewError("TRIP_NOT_DRAFT", "only draft trips can be edited or submitted", "")
	ErrBadDateRange  = serrors.NewError("TRIP_BAD_DATE_RANGE", "dateFrom must not be after dateTo", "")
	ErrNegativeSpend = serrors.NewError("TRIP_NEGATIVE_EXPENSE", "expense amounts cannot be negative", "")
)

type TripsAPI interface {
	GetTrips(ctx context.Context) ([]vinbees.Trip, error)
	SaveTrip(ctx context.Context, trip *vinbees.Trip) (*vinbees.Trip, error)
	SubmitTrip(ctx context.Context, tripID string) error
}

// CurrencyTotal is the summed spend in one currency. Amounts stay decimal all
// the way to serialization so receipt cents never drift.
type CurrencyTotal struct {
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
}

// TripService manages the draft-then-submit business trip flow. Drafts are
// editable; once submitted a trip is read-only and owned by the backend.
type TripService struct {
	api TripsAPI
}

func NewTripService(api TripsAPI) *TripService {
	return &TripService{api: api}
}

func (s *TripService) Trips(ctx context.Context) ([]vinbees.Trip, error) {
	return s.api.GetTrips(ctx)
}

// Save validates and upserts a draft. Saving an existing trip requires it to
// still be a draft.
func (s *TripService) Save(ctx context.Context, trip *vinbees.Trip) (*vinbees.Trip, error) {
	if trip.DateFrom != "" && trip.DateTo != "" && trip.DateFrom > trip.DateTo {
		return nil, ErrBadDateRange
	}
	for _, e := range trip.Expenses {
		if e.Amount < 0 {
			return nil, ErrNegativeSpend
		}
	}

	if trip.ID != "" {
		existing, err := s.find(ctx, trip.ID)
		if err != nil {
			return nil, err
		}
		if existing.Status != StatusDraft {
			return nil, ErrTripNotDraft
		}
	}
	trip.Status = StatusDraft
	return s.api.SaveTrip(ctx, trip)
}

func (s *TripService) Submit(ctx context.Context, tripID string) error {
	trip, err := s.find(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.Status != StatusDraft {
		return ErrTripNotDraft
	}
	return s.api.SubmitTrip(ctx, tripID)
}

// ExpenseTotals sums a trip's expenses per currency, currencies sorted for a
// stable wire order.
func (s *TripService) ExpenseTotals(ctx context.Context, tripID string) ([]CurrencyTotal, error) {
	trip, err := s.find(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return SumExpenses(trip.Expenses), nil
}

func SumExpenses(expenses []vinbees.TripExpense) []CurrencyTotal {
	byCurrency := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		byCurrency[e.Currency] = byCurrency[e.Currency].Add(decimal.NewFromFloat(e.Amount))
	}
	currencies := make([]string, 0, len(byCurrency))
	for c := range byCurrency {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)

	totals := make([]CurrencyTotal, 0, len(currencies))
	for _, c := range currencies {
		totals = append(totals, CurrencyTotal{Currency: c, Total: byCurrency[c]})
	}
	return totals
}

func (s *TripService) find(ctx context.Context, tripID string) (*vinbees.Trip, error) {
	trips, err := s.api.GetTrips(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trips {
		if trips[i].ID == tripID {
			return &trips[i], nil
		}
	}
	return nil, ErrTripNotFound
}
