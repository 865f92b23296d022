package dtos

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vinbees/hive-sdk/pkg/constants"
)

type SaveReportDTO struct {
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Type          string  `json:"type" validate:"required"`
	RegularHours  float64 `json:"regularHours" validate:"gte=0,lte=24"`
	OvertimeHours float64 `json:"overtimeHours" validate:"gte=0,lte=24"`
}

func (d *SaveReportDTO) Normalize() {
	d.Date = strings.TrimSpace(d.Date)
	d.Type = strings.TrimSpace(d.Type)
}

func (d *SaveReportDTO) Ok() (map[string]string, bool) {
	d.Normalize()
	return validateStruct(d)
}

type ToggleSelectionDTO struct {
	EmployeeID int64  `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (d *ToggleSelectionDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

type BatchSelectionDTO struct {
	EmployeeID int64 `json:"employeeId" validate:"required"`
}

func (d *BatchSelectionDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

type RejectDTO struct {
	Reason string `json:"reason"`
}

func validateStruct(v any) (map[string]string, bool) {
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
