package dtos

import (
	"github.com/go-playground/validator/v10"

	"github.com/vinbees/hive-sdk/pkg/constants"
)

type BuyDTO struct {
	ListingID string `json:"listingId" validate:"required"`
}

type CreateListingDTO struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Rarity      string  `json:"rarity"`
	Type        string  `json:"type"`
}

type SendHoneyDTO struct {
	RecipientID int64 `json:"recipientId" validate:"required"`
	Amount      int64 `json:"amount" validate:"required,gt=0"`
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
