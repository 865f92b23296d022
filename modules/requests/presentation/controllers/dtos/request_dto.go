package dtos

import (
	"github.com/go-playground/validator/v10"

	"github.com/vinbees/hive-sdk/pkg/constants"
)

type SaveRequestDTO struct {
	ID        string `json:"id"`
	Category  string `json:"category" validate:"required"`
	ShortDesc string `json:"shortDesc" validate:"required"`
	FullDesc  string `json:"fullDesc"`
}

type SubmitRequestDTO struct {
	RequestID string `json:"requestId" validate:"required"`
}

type RespondRequestDTO struct {
	RequestID string `json:"requestId" validate:"required"`
	Action    string `json:"action" validate:"required,oneof=approve reject"`
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
