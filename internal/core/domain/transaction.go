package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable purchase record owned by the payment system.
type Transaction struct {
	ID         string          `json:"id"`
	MerchantID string          `json:"merchant_id"`
	UserID     string          `json:"user_id"`
	Amount     decimal.Decimal `json:"amount"`
	Timestamp  time.Time       `json:"timestamp"`
}

// HasValidAmount reports whether the transaction amount is strictly positive.
func (t *Transaction) HasValidAmount() bool {
	return t.Amount.IsPositive()
}
