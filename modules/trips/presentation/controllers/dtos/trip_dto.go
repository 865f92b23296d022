package dtos

import (
	"github.com/go-playground/validator/v10"

	"github.com/vinbees/hive-sdk/pkg/constants"
)

type ExpenseDTO struct {
	ID       int64   `json:"id"`
	Type     string  `json:"type" validate:"required"`
	Currency string  `json:"currency" validate:"required,len=3"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	FileName string  `json:"fileName"`
}

type SaveTripDTO struct {
	ID          string       `json:"id"`
	DateFrom    string       `json:"dateFrom" validate:"required,datetime=2006-01-02"`
	DateTo      string       `json:"dateTo" validate:"required,datetime=2006-01-02"`
	Destination string       `json:"destination" validate:"required"`
	Goal        string       `json:"goal"`
	Expenses    []ExpenseDTO `json:"expenses" validate:"dive"`
}

type SubmitTripDTO struct {
	TripID string `json:"tripId" validate:"required"`
}

func Validate(v any) (map[string]string, bool) {
	errs := constants.Validate.Struct(v)
	if errs == nil {
		return map[string]string{}, true
	}
	fields := make(map[string]string)
	for _, err := range errs.(validator.ValidationErrors) {
		fields[err.Field()] = err.Tag()
	}
	return fields, false
}
