package dtos

import (
	"github.com/go-playground/validator/v10"

	"github.com/vinbees/hive-sdk/pkg/constants"
)

type AuditResultDTO struct {
	ItemID  int64 `json:"itemId" validate:"required"`
	Present *bool `json:"present" validate:"required"`
}

type TransferItemDTO struct {
	RecipientID int64 `json:"recipientId" validate:"required"`
	ItemID      int64 `json:"itemId" validate:"required"`
	Quantity    int   `json:"quantity" validate:"required,gt=0"`
}

type TransferResponseDTO struct {
	TransferID string `json:"transferId" validate:"required"`
	Action     string `json:"action" validate:"required,oneof=accept reject"`
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
