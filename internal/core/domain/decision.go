package domain

import "time"

// DecisionReason explains why a transaction did or did not earn a reward.
type DecisionReason string

const (
	ReasonRewarded         DecisionReason = "rewarded"
	ReasonMerchantNotFound DecisionReason = "merchant_not_found"
	ReasonMerchantInactive DecisionReason = "merchant_inactive"
	ReasonUserNotFound     DecisionReason = "user_not_found"
	ReasonChanceDeclined   DecisionReason = "chance_declined"
	// ReasonLookupFailed marks a merchant or user lookup error. No random draw
	// was made, so the decision is never persisted.
	ReasonLookupFailed DecisionReason = "lookup_failed"
)

// IsFinal reports whether a "no reward" decision with this reason may be recorded.
func (r DecisionReason) IsFinal() bool {
	return r != ReasonLookupFailed && r != ReasonRewarded
}

// RewardDecision records that a transaction was evaluated and earned nothing,
// so later calls for the same transaction never draw again.
type RewardDecision struct {
	TransactionID string         `json:"transaction_id"`
	Reason        DecisionReason `json:"reason"`
	DecidedAt     time.Time      `json:"decided_at"`
}
