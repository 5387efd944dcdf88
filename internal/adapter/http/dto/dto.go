package dto

import (
	"encoding/json"
	"strings"
	"time"

	"cashback-rewards/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ProcessRewardRequest is the request body for running the reward pipeline.
type ProcessRewardRequest struct {
	TransactionID string `json:"transactionId" binding:"required,max=100,safe_id"`
}

// RewardView is the public shape of a reward.
type RewardView struct {
	ID        string      `json:"id"`
	Amount    json.Number `json:"amount"` // two decimals, rendered as a JSON number
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// RewardResponse wraps a single reward. Reward is null when none was granted.
type RewardResponse struct {
	Message string      `json:"message"`
	Reward  *RewardView `json:"reward"`
}

// UserRewardsResponse lists a user's rewards at the calling merchant.
type UserRewardsResponse struct {
	UserID  string       `json:"userId"`
	Rewards []RewardView `json:"rewards"`
}

// NewRewardView maps a domain reward. Returns nil for a nil reward.
// Amounts carry at least two decimals and are never rounded.
func NewRewardView(r *domain.Reward) *RewardView {
	if r == nil {
		return nil
	}
	return &RewardView{
		ID:        r.ID,
		Amount:    json.Number(r.Amount.StringFixed(amountPlaces(r.Amount))),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.UTC(),
	}
}

// amountPlaces is the number of decimals d needs to render exactly, at least two.
func amountPlaces(d decimal.Decimal) int32 {
	s := d.String() // trailing zeros trimmed
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return max(2, int32(len(s)-i-1))
	}
	return 2
}

// NewRewardViews maps a slice of rewards, never returning nil.
func NewRewardViews(rewards []domain.Reward) []RewardView {
	views := make([]RewardView, 0, len(rewards))
	for i := range rewards {
		views = append(views, *NewRewardView(&rewards[i]))
	}
	return views
}
