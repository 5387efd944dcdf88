package service

import (
	"context"
	"fmt"

	"cashback-rewards/internal/core/domain"
	"cashback-rewards/internal/core/ports"
	"cashback-rewards/pkg/apperror"

	"github.com/rs/zerolog"
)

// VerificationServiceImpl implements ports.VerificationService.
// The merchant passed to every method has already been authenticated by API key.
type VerificationServiceImpl struct {
	txRepo     ports.TransactionRepository
	rewardRepo ports.RewardRepository
	rewardSvc  ports.RewardService
	log        zerolog.Logger
}

// NewVerificationService creates a new VerificationServiceImpl.
func NewVerificationService(
	txRepo ports.TransactionRepository,
	rewardRepo ports.RewardRepository,
	rewardSvc ports.RewardService,
	log zerolog.Logger,
) *VerificationServiceImpl {
	return &VerificationServiceImpl{
		txRepo:     txRepo,
		rewardRepo: rewardRepo,
		rewardSvc:  rewardSvc,
		log:        log,
	}
}

// VerifyReward returns the recorded reward of a transaction owned by merchant.
func (s *VerificationServiceImpl) VerifyReward(ctx context.Context, merchant *domain.Merchant, transactionID string) (*domain.Reward, error) {
	if _, err := s.ownedTransaction(ctx, merchant, transactionID); err != nil {
		return nil, err
	}

	reward, err := s.rewardRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get reward: %w", err))
	}
	if reward == nil {
		return nil, apperror.ErrRewardNotFound()
	}
	return reward, nil
}

// ProcessForMerchant runs the reward pipeline for a transaction owned by merchant.
// A nil reward with a nil error means the transaction earned nothing.
func (s *VerificationServiceImpl) ProcessForMerchant(ctx context.Context, merchant *domain.Merchant, transactionID string) (*domain.Reward, error) {
	tx, err := s.ownedTransaction(ctx, merchant, transactionID)
	if err != nil {
		return nil, err
	}
	if !tx.HasValidAmount() {
		return nil, apperror.Validation("Transaction amount must be positive")
	}
	return s.rewardSvc.ProcessTransaction(ctx, tx)
}

// ListUserRewards returns the user's rewards earned at merchant.
func (s *VerificationServiceImpl) ListUserRewards(ctx context.Context, merchant *domain.Merchant, userID string) ([]domain.Reward, error) {
	if userID == "" {
		return nil, apperror.Validation("User ID is required")
	}

	all, err := s.rewardSvc.ListUserRewards(ctx, userID)
	if err != nil {
		return nil, err
	}

	rewards := make([]domain.Reward, 0, len(all))
	for _, r := range all {
		if r.MerchantID == merchant.ID {
			rewards = append(rewards, r)
		}
	}
	return rewards, nil
}

func (s *VerificationServiceImpl) ownedTransaction(ctx context.Context, merchant *domain.Merchant, transactionID string) (*domain.Transaction, error) {
	if transactionID == "" {
		return nil, apperror.ErrTransactionIDRequired()
	}

	tx, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get transaction: %w", err))
	}
	if tx == nil {
		return nil, apperror.ErrNotFound("Transaction")
	}
	if !merchant.Owns(tx) {
		s.log.Warn().
			Str("merchant_id", merchant.ID).
			Str("transaction_id", transactionID).
			Msg("merchant requested a transaction it does not own")
		return nil, apperror.ErrTransactionNotOwned()
	}
	return tx, nil
}
