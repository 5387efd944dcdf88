package service

import (
	"context"
	"math"
	"time"

	"cashback-rewards/internal/core/domain"
	"cashback-rewards/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// rewardProbability is the inclusive upper bound of the first draw for a reward.
const rewardProbability = 0.2

// EligibilityServiceImpl implements ports.EligibilityEngine.
type EligibilityServiceImpl struct {
	merchantRepo ports.MerchantRepository
	userRepo     ports.UserRepository
	random       ports.RandomSource
	log          zerolog.Logger

	now   func() time.Time
	newID func() string
}

// NewEligibilityService creates a new EligibilityServiceImpl.
func NewEligibilityService(
	merchantRepo ports.MerchantRepository,
	userRepo ports.UserRepository,
	random ports.RandomSource,
	log zerolog.Logger,
) *EligibilityServiceImpl {
	return &EligibilityServiceImpl{
		merchantRepo: merchantRepo,
		userRepo:     userRepo,
		random:       random,
		log:          log,
		now:          time.Now,
		newID:        func() string { return uuid.New().String() },
	}
}

// Prepare resolves the merchant and user of tx and decides its reward.
// Lookup failures are logged and reported as ReasonLookupFailed, never returned.
func (s *EligibilityServiceImpl) Prepare(ctx context.Context, tx *domain.Transaction) (*domain.Reward, domain.DecisionReason) {
	merchant, err := s.merchantRepo.GetByID(ctx, tx.MerchantID)
	if err != nil {
		s.log.Error().Err(err).
			Str("transaction_id", tx.ID).
			Str("merchant_id", tx.MerchantID).
			Msg("merchant lookup failed")
		return nil, domain.ReasonLookupFailed
	}
	// No need to resolve the user for a merchant that cannot earn rewards.
	if merchant == nil || !merchant.IsActive {
		return s.Decide(tx, merchant, nil)
	}

	user, err := s.userRepo.GetByID(ctx, tx.UserID)
	if err != nil {
		s.log.Error().Err(err).
			Str("transaction_id", tx.ID).
			Str("user_id", tx.UserID).
			Msg("user lookup failed")
		return nil, domain.ReasonLookupFailed
	}

	return s.Decide(tx, merchant, user)
}

// Decide applies the eligibility rules and, on success, sizes a pending reward.
// It draws at most two values from the random source and has no other side effects.
func (s *EligibilityServiceImpl) Decide(tx *domain.Transaction, merchant *domain.Merchant, user *domain.User) (*domain.Reward, domain.DecisionReason) {
	switch {
	case merchant == nil:
		return nil, domain.ReasonMerchantNotFound
	case !merchant.IsActive:
		return nil, domain.ReasonMerchantInactive
	case user == nil:
		return nil, domain.ReasonUserNotFound
	}

	if s.random.Float64() > rewardProbability {
		return nil, domain.ReasonChanceDeclined
	}

	percentage := RewardPercentage(s.random.Float64())
	now := s.now().UTC()

	return &domain.Reward{
		ID:            s.newID(),
		TransactionID: tx.ID,
		UserID:        user.ID,
		MerchantID:    merchant.ID,
		Amount:        RewardAmount(tx.Amount, percentage),
		Percentage:    percentage,
		Status:        domain.RewardStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, domain.ReasonRewarded
}

// RewardPercentage maps a draw in [0,1) to a whole percentage in [1,10].
func RewardPercentage(draw float64) int {
	p := int(math.Floor(draw*10)) + 1
	if p < domain.MinRewardPercentage {
		return domain.MinRewardPercentage
	}
	if p > domain.MaxRewardPercentage {
		return domain.MaxRewardPercentage
	}
	return p
}

// RewardAmount returns amount * percentage / 100 without rounding.
func RewardAmount(amount decimal.Decimal, percentage int) decimal.Decimal {
	// Shift moves the decimal point, so the division by 100 is exact.
	return amount.Mul(decimal.NewFromInt(int64(percentage))).Shift(-2)
}
