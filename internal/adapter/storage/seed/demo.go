// Package seed holds the demo dataset loaded into development stores.
package seed

import (
	"time"

	"cashback-rewards/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Dataset is a consistent set of records to preload into a store.
type Dataset struct {
	Merchants    []domain.Merchant
	Users        []domain.User
	Transactions []domain.Transaction
	Rewards      []domain.Reward
}

// Demo returns the fixed demo dataset. Every call returns fresh copies.
func Demo() Dataset {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("100.00")
	cashback := decimal.RequireFromString("5.00")

	return Dataset{
		Merchants: []domain.Merchant{
			{ID: "merchant1", Name: "Example Store", APIKey: "valid-api-key-123", IsActive: true, CreatedAt: created},
			{ID: "merchant2", Name: "Inactive Store", APIKey: "inactive-key-456", IsActive: false, CreatedAt: created},
		},
		Users: []domain.User{
			{ID: "user1", Name: "John Doe", CreatedAt: created},
		},
		Transactions: []domain.Transaction{
			{ID: "valid-transaction-123", MerchantID: "merchant1", UserID: "user1", Amount: amount, Timestamp: created},
			{ID: "valid-transaction-456", MerchantID: "merchant2", UserID: "user1", Amount: amount, Timestamp: created},
		},
		Rewards: []domain.Reward{
			{
				ID: "reward123", TransactionID: "valid-transaction-123", UserID: "user1", MerchantID: "merchant1",
				Amount: cashback, Percentage: 5, Status: domain.RewardStatusIssued, Attempts: 1,
				CreatedAt: created, UpdatedAt: created,
			},
			{
				ID: "reward456", TransactionID: "valid-transaction-456", UserID: "user1", MerchantID: "merchant2",
				Amount: cashback, Percentage: 5, Status: domain.RewardStatusIssued, Attempts: 1,
				CreatedAt: created, UpdatedAt: created,
			},
		},
	}
}
