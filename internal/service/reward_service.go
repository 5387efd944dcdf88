package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cashback-rewards/internal/core/domain"
	"cashback-rewards/internal/core/ports"
	"cashback-rewards/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	defaultClaimTTL       = 60 * time.Second
	defaultCacheTTL       = 24 * time.Hour
	defaultPendingTimeout = 10 * time.Minute
)

// ErrInvalidRetryPolicy is returned for a negative retry budget.
var ErrInvalidRetryPolicy = errors.New("reward retry policy: max retries must not be negative")

// RetryPolicy bounds issuance attempts. Total attempts are MaxRetries + 1.
type RetryPolicy struct {
	MaxRetries int
	Delay      time.Duration
}

// Attempts returns the total number of issuance attempts, always at least one.
func (p RetryPolicy) Attempts() int {
	return p.MaxRetries + 1
}

// RewardServiceDeps holds the collaborators of the reward orchestrator.
type RewardServiceDeps struct {
	Engine       ports.EligibilityEngine
	RewardRepo   ports.RewardRepository
	DecisionRepo ports.DecisionRepository
	UserRepo     ports.UserRepository
	Gateway      ports.IssuanceGateway
	Claims       ports.ClaimStore
	Cache        ports.RewardCache   // nil = no cache layer
	Metrics      ports.RewardMetrics // nil = metrics disabled
	Policy       RetryPolicy
	ClaimTTL     time.Duration
	CacheTTL     time.Duration
	// PendingTimeout is how long a reserved reward may stay pending before a
	// later caller resumes its issuance under the same reward id.
	PendingTimeout time.Duration
	Logger         zerolog.Logger
}

// RewardServiceImpl implements ports.RewardService.
type RewardServiceImpl struct {
	engine       ports.EligibilityEngine
	rewardRepo   ports.RewardRepository
	decisionRepo ports.DecisionRepository
	userRepo     ports.UserRepository
	gateway      ports.IssuanceGateway
	claims       ports.ClaimStore
	cache        ports.RewardCache
	metrics      ports.RewardMetrics
	policy       RetryPolicy
	claimTTL     time.Duration
	cacheTTL     time.Duration
	pendingAfter time.Duration
	log          zerolog.Logger

	now   func() time.Time
	sleep func(time.Duration)
}

// NewRewardService creates a new RewardServiceImpl after validating the retry policy.
func NewRewardService(deps RewardServiceDeps) (*RewardServiceImpl, error) {
	if deps.Policy.MaxRetries < 0 || deps.Policy.Delay < 0 {
		return nil, fmt.Errorf("%w: max_retries=%d delay=%s", ErrInvalidRetryPolicy, deps.Policy.MaxRetries, deps.Policy.Delay)
	}

	s := &RewardServiceImpl{
		engine:       deps.Engine,
		rewardRepo:   deps.RewardRepo,
		decisionRepo: deps.DecisionRepo,
		userRepo:     deps.UserRepo,
		gateway:      deps.Gateway,
		claims:       deps.Claims,
		cache:        deps.Cache,
		metrics:      deps.Metrics,
		policy:       deps.Policy,
		claimTTL:     deps.ClaimTTL,
		cacheTTL:     deps.CacheTTL,
		pendingAfter: deps.PendingTimeout,
		log:          deps.Logger,
		now:          time.Now,
		sleep:        time.Sleep,
	}
	if s.metrics == nil {
		s.metrics = nopMetrics{}
	}
	if s.claimTTL <= 0 {
		s.claimTTL = defaultClaimTTL
	}
	if s.cacheTTL <= 0 {
		s.cacheTTL = defaultCacheTTL
	}
	if s.pendingAfter <= 0 {
		s.pendingAfter = defaultPendingTimeout
	}
	return s, nil
}

// ProcessTransaction runs the idempotency gate, the eligibility decision and the
// bounded issuance of a reward for tx.
//
// It returns (nil, nil) when the transaction earned no reward and the ledger's
// reward in a terminal status otherwise. Issuance failures end in
// RewardStatusFailed and are never returned as errors. While another caller
// holds the transaction it fails with apperror.ErrRewardInProgress.
//
// The pending reward is reserved in the ledger before the first payout attempt,
// so at most one reward id per transaction ever reaches the gateway, even when
// the claim has expired or the claim store is down.
func (s *RewardServiceImpl) ProcessTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Reward, error) {
	if tx == nil || tx.ID == "" {
		return nil, apperror.ErrTransactionIDRequired()
	}
	log := s.log.With().Str("transaction_id", tx.ID).Logger()

	// Layer 1: Redis reward cache
	if cached := s.cachedReward(ctx, tx.ID, log); cached != nil {
		return cached, nil
	}

	// Layer 2: ledger
	existing, decided, err := s.lookupLedger(ctx, tx.ID)
	if err != nil {
		return nil, err
	}
	if decided {
		return nil, nil
	}
	if existing != nil && !s.stale(existing) {
		return settled(existing)
	}

	// Layer 3: claim
	token, ok, err := s.claims.Claim(ctx, tx.ID, s.claimTTL)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("claim store unavailable, relying on ledger reservation")
		if existing != nil {
			// Resuming without the claim could race another resumer.
			return nil, apperror.ErrRewardInProgress()
		}
	case !ok:
		log.Info().Msg("transaction is being processed by another caller")
		return nil, apperror.ErrRewardInProgress()
	default:
		defer s.release(ctx, tx.ID, token, log)

		// Another caller may have finished between the lookup and the claim.
		existing, decided, err = s.lookupLedger(ctx, tx.ID)
		if err != nil {
			return nil, err
		}
		if decided {
			return nil, nil
		}
		if existing != nil && !s.stale(existing) {
			return settled(existing)
		}
	}

	reward := existing
	if reward != nil {
		log = log.With().Str("reward_id", reward.ID).Logger()
		log.Warn().Time("pending_since", reward.UpdatedAt).Msg("resuming issuance of stale pending reward")
	} else {
		var reason domain.DecisionReason
		reward, reason = s.engine.Prepare(ctx, tx)
		s.metrics.ObserveDecision(reason)
		if reward == nil {
			return nil, s.recordNoReward(ctx, tx.ID, reason, log)
		}

		created, err := s.rewardRepo.CreatePending(ctx, reward)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("reserve reward: %w", err))
		}
		if !created {
			log.Info().Str("discarded_reward_id", reward.ID).Msg("transaction reserved by another caller")
			return s.storedReward(ctx, tx.ID)
		}

		log = log.With().Str("reward_id", reward.ID).Logger()
		log.Info().
			Int("percentage", reward.Percentage).
			Str("amount", reward.Amount.String()).
			Msg("reward decided, issuing")
	}

	s.issue(ctx, reward, log)

	if err := s.rewardRepo.Upsert(ctx, reward); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist reward: %w", err))
	}
	s.metrics.ObserveOutcome(reward.Status, reward.Attempts)

	stored, err := s.rewardRepo.GetByTransactionID(ctx, tx.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reload reward: %w", err))
	}
	if stored == nil {
		return nil, apperror.InternalError(fmt.Errorf("reward %s missing from ledger after issuance", reward.ID))
	}
	if stored.ID != reward.ID || stored.Status != reward.Status {
		log.Error().
			Str("stored_reward_id", stored.ID).
			Str("stored_status", string(stored.Status)).
			Msg("ledger holds a different outcome, returning stored reward")
		return settled(stored)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, reward, s.cacheTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache reward in redis")
		}
	}

	return reward, nil
}

// ListUserRewards returns the rewards of a user, newest first. Unknown users have none.
func (s *RewardServiceImpl) ListUserRewards(ctx context.Context, userID string) ([]domain.Reward, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return []domain.Reward{}, nil
	}

	rewards, err := s.rewardRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list rewards: %w", err))
	}
	if rewards == nil {
		rewards = []domain.Reward{}
	}
	return rewards, nil
}

// issue attempts payout up to the policy's attempt budget and leaves reward in a
// terminal status. Attempts run to completion even if the caller goes away.
func (s *RewardServiceImpl) issue(ctx context.Context, reward *domain.Reward, log zerolog.Logger) {
	issueCtx := context.WithoutCancel(ctx)
	maxAttempts := s.policy.Attempts()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 && s.policy.Delay > 0 {
			s.sleep(s.policy.Delay)
		}

		err := s.gateway.Issue(issueCtx, reward)
		s.metrics.ObserveAttempt(err == nil)
		if err == nil {
			if terr := reward.MarkIssued(attempt, s.now().UTC()); terr != nil {
				log.Error().Err(terr).Msg("reward left its pending state during issuance")
			}
			log.Info().Int("attempt", attempt).Msg("reward issued successfully")
			return
		}

		reward.RecordFailedAttempt(attempt, err, s.now().UTC())
		log.Warn().Err(err).
			Int("attempt", attempt).
			Int("max_attempts", maxAttempts).
			Msg("failed to issue reward")
	}

	if terr := reward.MarkFailed(maxAttempts, s.now().UTC()); terr != nil {
		log.Error().Err(terr).Msg("reward left its pending state during issuance")
	}
	log.Error().Int("attempts", maxAttempts).Msg("reward issuance exhausted all attempts, marked failed")
}

// cachedReward returns a cached reward, or nil on miss or cache failure.
func (s *RewardServiceImpl) cachedReward(ctx context.Context, transactionID string, log zerolog.Logger) *domain.Reward {
	if s.cache == nil {
		return nil
	}
	reward, err := s.cache.Get(ctx, transactionID)
	if err != nil {
		log.Warn().Err(err).Msg("redis reward lookup failed, falling through to ledger")
		return nil
	}
	return reward
}

// lookupLedger returns the stored reward, or decided=true if the transaction was
// already evaluated and earned nothing.
func (s *RewardServiceImpl) lookupLedger(ctx context.Context, transactionID string) (*domain.Reward, bool, error) {
	existing, err := s.rewardRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("ledger reward lookup: %w", err))
	}
	if existing != nil {
		return existing, false, nil
	}

	decision, err := s.decisionRepo.Get(ctx, transactionID)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("ledger decision lookup: %w", err))
	}
	return nil, decision != nil, nil
}

// storedReward answers with whatever the ledger holds for a transaction
// another caller reserved.
func (s *RewardServiceImpl) storedReward(ctx context.Context, transactionID string) (*domain.Reward, error) {
	stored, err := s.rewardRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reload reward: %w", err))
	}
	if stored == nil {
		return nil, apperror.InternalError(fmt.Errorf("reserved reward of %s missing from ledger", transactionID))
	}
	return settled(stored)
}

// stale reports whether a pending reward outlived every caller that could
// still be issuing it.
func (s *RewardServiceImpl) stale(r *domain.Reward) bool {
	return !r.IsTerminal() && s.now().Sub(r.UpdatedAt) > s.pendingAfter
}

// settled returns a terminal reward as is; a pending one is still in flight.
func settled(r *domain.Reward) (*domain.Reward, error) {
	if r.IsTerminal() {
		return r, nil
	}
	return nil, apperror.ErrRewardInProgress()
}

// recordNoReward logs why no reward was decided and persists final decisions.
func (s *RewardServiceImpl) recordNoReward(ctx context.Context, transactionID string, reason domain.DecisionReason, log zerolog.Logger) error {
	if !reason.IsFinal() {
		log.Warn().Str("reason", string(reason)).Msg("no reward, decision not recorded")
		return nil
	}
	log.Info().Str("reason", string(reason)).Msg("no reward for transaction")

	err := s.decisionRepo.Create(ctx, &domain.RewardDecision{
		TransactionID: transactionID,
		Reason:        reason,
		DecidedAt:     s.now().UTC(),
	})
	if err != nil {
		return apperror.InternalError(fmt.Errorf("record decision: %w", err))
	}
	return nil
}

// release frees the claim on a context that outlives the request.
func (s *RewardServiceImpl) release(ctx context.Context, transactionID, token string, log zerolog.Logger) {
	if err := s.claims.Release(context.WithoutCancel(ctx), transactionID, token); err != nil {
		log.Warn().Err(err).Msg("failed to release transaction claim")
	}
}

type nopMetrics struct{}

func (nopMetrics) ObserveDecision(domain.DecisionReason)   {}
func (nopMetrics) ObserveAttempt(bool)                     {}
func (nopMetrics) ObserveOutcome(domain.RewardStatus, int) {}
