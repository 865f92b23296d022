package domain

import "github.com/Rhymond/go-money"

// HoneyCode is the hive's internal currency. Whole units only.
const HoneyCode = "HNY"

func init() {
	money.AddCurrency(HoneyCode, "🍯", "$1", "", "", 0)
}

// Honey builds a honey amount from whole units.
func Honey(amount int64) *money.Money {
	return money.New(amount, HoneyCode)
}
