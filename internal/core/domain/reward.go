package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// RewardStatus represents the lifecycle state of a reward.
type RewardStatus string

const (
	RewardStatusPending RewardStatus = "pending"
	RewardStatusIssued  RewardStatus = "issued"
	RewardStatusFailed  RewardStatus = "failed"
)

// Percentage bounds for a reward, inclusive.
const (
	MinRewardPercentage = 1
	MaxRewardPercentage = 10
)

// ErrRewardTerminal is returned when a transition is attempted on an issued or failed reward.
var ErrRewardTerminal = errors.New("reward is in a terminal state")

// Reward is the cash-back granted for a single transaction.
// TransactionID is the natural key: at most one reward exists per transaction.
type Reward struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	UserID        string          `json:"user_id"`
	MerchantID    string          `json:"merchant_id"`
	Amount        decimal.Decimal `json:"amount"`
	Percentage    int             `json:"percentage"`
	Status        RewardStatus    `json:"status"`
	Attempts      int             `json:"attempts"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// History holds the failed issuance attempts of the current run. Not persisted.
	History []IssuanceAttempt `json:"-"`
}

// IssuanceAttempt records one failed payout attempt.
type IssuanceAttempt struct {
	Number int
	Err    error
	At     time.Time
}

// IsTerminal returns true if the reward is in a final state.
func (r *Reward) IsTerminal() bool {
	return r.Status == RewardStatusIssued || r.Status == RewardStatusFailed
}

// RecordFailedAttempt appends a failed issuance attempt.
func (r *Reward) RecordFailedAttempt(number int, err error, at time.Time) {
	r.Attempts = number
	r.History = append(r.History, IssuanceAttempt{Number: number, Err: err, At: at})
}

// MarkIssued moves a pending reward to issued after the given number of attempts.
func (r *Reward) MarkIssued(attempts int, at time.Time) error {
	return r.transition(RewardStatusIssued, attempts, at)
}

// MarkFailed moves a pending reward to failed after the given number of attempts.
func (r *Reward) MarkFailed(attempts int, at time.Time) error {
	return r.transition(RewardStatusFailed, attempts, at)
}

func (r *Reward) transition(to RewardStatus, attempts int, at time.Time) error {
	if r.IsTerminal() {
		return ErrRewardTerminal
	}
	r.Status = to
	r.Attempts = attempts
	r.UpdatedAt = at
	return nil
}
