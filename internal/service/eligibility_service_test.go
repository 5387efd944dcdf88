package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cashback-rewards/internal/core/domain"
	"cashback-rewards/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// seqRandom replays a fixed sequence of draws.
type seqRandom struct {
	mu    sync.Mutex
	draws []float64
	calls int
}

func newSeqRandom(draws ...float64) *seqRandom {
	return &seqRandom{draws: draws}
}

func (r *seqRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls >= len(r.draws) {
		panic("seqRandom: sequence exhausted")
	}
	d := r.draws[r.calls]
	r.calls++
	return d
}

func (r *seqRandom) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestEngine(t *testing.T, random *seqRandom) (*EligibilityServiceImpl, *mocks.MockMerchantRepository, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	merchantRepo := mocks.NewMockMerchantRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	engine := NewEligibilityService(merchantRepo, userRepo, random, zerolog.Nop())
	engine.now = func() time.Time { return fixedNow }
	engine.newID = func() string { return "reward-fixed" }
	return engine, merchantRepo, userRepo
}

func testTransaction(amount string) *domain.Transaction {
	return &domain.Transaction{
		ID:         "tx-1",
		MerchantID: "merchant1",
		UserID:     "user1",
		Amount:     decimal.RequireFromString(amount),
		Timestamp:  fixedNow,
	}
}

func activeMerchant() *domain.Merchant {
	return &domain.Merchant{ID: "merchant1", Name: "Example Store", APIKey: "valid-api-key-123", IsActive: true}
}

func testUser() *domain.User {
	return &domain.User{ID: "user1", Name: "John Doe"}
}

// ==================== Decide Tests ====================

func TestEligibility_Decide_Rewarded(t *testing.T) {
	random := newSeqRandom(0.1, 0.43)
	engine, _, _ := newTestEngine(t, random)

	reward, reason := engine.Decide(testTransaction("100.00"), activeMerchant(), testUser())
	require.NotNil(t, reward)
	assert.Equal(t, domain.ReasonRewarded, reason)

	assert.Equal(t, "reward-fixed", reward.ID)
	assert.Equal(t, "tx-1", reward.TransactionID)
	assert.Equal(t, "user1", reward.UserID)
	assert.Equal(t, "merchant1", reward.MerchantID)
	assert.Equal(t, 5, reward.Percentage)
	assert.True(t, decimal.RequireFromString("5").Equal(reward.Amount), "got %s", reward.Amount)
	assert.Equal(t, domain.RewardStatusPending, reward.Status)
	assert.Equal(t, fixedNow, reward.CreatedAt)
	assert.Equal(t, 2, random.Calls())
}

func TestEligibility_Decide_ProbabilityBoundary(t *testing.T) {
	tests := []struct {
		name   string
		first  float64
		reward bool
	}{
		{"zero draw", 0, true},
		{"exactly at threshold is eligible", 0.2, true},
		{"just above threshold", 0.2000001, false},
		{"high draw", 0.95, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			random := newSeqRandom(tt.first, 0.5)
			engine, _, _ := newTestEngine(t, random)

			reward, reason := engine.Decide(testTransaction("10.00"), activeMerchant(), testUser())
			if tt.reward {
				require.NotNil(t, reward)
				assert.Equal(t, domain.ReasonRewarded, reason)
				assert.Equal(t, 2, random.Calls())
				return
			}
			assert.Nil(t, reward)
			assert.Equal(t, domain.ReasonChanceDeclined, reason)
			assert.Equal(t, 1, random.Calls(), "a declined chance must not draw a percentage")
		})
	}
}

func TestEligibility_Decide_Ineligible(t *testing.T) {
	inactive := activeMerchant()
	inactive.IsActive = false

	tests := []struct {
		name     string
		merchant *domain.Merchant
		user     *domain.User
		reason   domain.DecisionReason
	}{
		{"unknown merchant", nil, testUser(), domain.ReasonMerchantNotFound},
		{"inactive merchant", inactive, testUser(), domain.ReasonMerchantInactive},
		{"unknown user", activeMerchant(), nil, domain.ReasonUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			random := newSeqRandom()
			engine, _, _ := newTestEngine(t, random)

			reward, reason := engine.Decide(testTransaction("100.00"), tt.merchant, tt.user)
			assert.Nil(t, reward)
			assert.Equal(t, tt.reason, reason)
			assert.Zero(t, random.Calls())
		})
	}
}

func TestRewardPercentage(t *testing.T) {
	tests := []struct {
		draw float64
		want int
	}{
		{0, 1},
		{0.0999, 1},
		{0.1, 2},
		{0.45, 5},
		{0.9, 10},
		{0.9999999, 10},
		{1, 10},
		{-0.5, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RewardPercentage(tt.draw), "draw %v", tt.draw)
	}
}

func TestRewardPercentage_AlwaysWithinBounds(t *testing.T) {
	random := NewPCGRandomSource(7)
	for i := 0; i < 10000; i++ {
		p := RewardPercentage(random.Float64())
		require.GreaterOrEqual(t, p, domain.MinRewardPercentage)
		require.LessOrEqual(t, p, domain.MaxRewardPercentage)
	}
}

func TestRewardAmount_IsExact(t *testing.T) {
	tests := []struct {
		amount string
		pct    int
		want   string
	}{
		{"100.00", 5, "5"},
		{"19.99", 3, "0.5997"},
		{"0.01", 1, "0.0001"},
		{"1234567.89", 10, "123456.789"},
		{"0", 7, "0"},
	}
	for _, tt := range tests {
		got := RewardAmount(decimal.RequireFromString(tt.amount), tt.pct)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "%s * %d%% = %s, want %s", tt.amount, tt.pct, got, tt.want)
	}
}

// ==================== Prepare Tests ====================

func TestEligibility_Prepare_LooksUpCollaborators(t *testing.T) {
	random := newSeqRandom(0.05, 0.0)
	engine, merchantRepo, userRepo := newTestEngine(t, random)
	ctx := context.Background()

	merchantRepo.EXPECT().GetByID(ctx, "merchant1").Return(activeMerchant(), nil)
	userRepo.EXPECT().GetByID(ctx, "user1").Return(testUser(), nil)

	reward, reason := engine.Prepare(ctx, testTransaction("100.00"))
	require.NotNil(t, reward)
	assert.Equal(t, domain.ReasonRewarded, reason)
	assert.Equal(t, 1, reward.Percentage)
	assert.Equal(t, "1.00", reward.Amount.StringFixed(2))
}

func TestEligibility_Prepare_SkipsUserForInactiveMerchant(t *testing.T) {
	engine, merchantRepo, _ := newTestEngine(t, newSeqRandom())
	ctx := context.Background()

	inactive := activeMerchant()
	inactive.IsActive = false
	merchantRepo.EXPECT().GetByID(ctx, "merchant1").Return(inactive, nil)

	reward, reason := engine.Prepare(ctx, testTransaction("100.00"))
	assert.Nil(t, reward)
	assert.Equal(t, domain.ReasonMerchantInactive, reason)
}

func TestEligibility_Prepare_MerchantLookupFails(t *testing.T) {
	random := newSeqRandom()
	engine, merchantRepo, _ := newTestEngine(t, random)
	ctx := context.Background()

	merchantRepo.EXPECT().GetByID(ctx, "merchant1").Return(nil, errors.New("connection reset"))

	reward, reason := engine.Prepare(ctx, testTransaction("100.00"))
	assert.Nil(t, reward)
	assert.Equal(t, domain.ReasonLookupFailed, reason)
	assert.Zero(t, random.Calls())
}

func TestEligibility_Prepare_UserLookupFails(t *testing.T) {
	random := newSeqRandom()
	engine, merchantRepo, userRepo := newTestEngine(t, random)
	ctx := context.Background()

	merchantRepo.EXPECT().GetByID(ctx, "merchant1").Return(activeMerchant(), nil)
	userRepo.EXPECT().GetByID(ctx, "user1").Return(nil, errors.New("timeout"))

	reward, reason := engine.Prepare(ctx, testTransaction("100.00"))
	assert.Nil(t, reward)
	assert.Equal(t, domain.ReasonLookupFailed, reason)
	assert.Zero(t, random.Calls())
}

func TestEligibility_Prepare_UnknownUser(t *testing.T) {
	engine, merchantRepo, userRepo := newTestEngine(t, newSeqRandom())
	ctx := context.Background()

	merchantRepo.EXPECT().GetByID(ctx, "merchant1").Return(activeMerchant(), nil)
	userRepo.EXPECT().GetByID(ctx, "user1").Return(nil, nil)

	reward, reason := engine.Prepare(ctx, testTransaction("100.00"))
	assert.Nil(t, reward)
	assert.Equal(t, domain.ReasonUserNotFound, reason)
}

// ==================== Random Source Tests ====================

func TestPCGRandomSource_SeededIsDeterministic(t *testing.T) {
	a := NewPCGRandomSource(42)
	b := NewPCGRandomSource(42)
	for i := 0; i < 100; i++ {
		x, y := a.Float64(), b.Float64()
		require.Equal(t, x, y)
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 1.0)
	}
}

func TestPCGRandomSource_ConcurrentUse(t *testing.T) {
	src := NewPCGRandomSource(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				v := src.Float64()
				if v < 0 || v >= 1 {
					t.Errorf("draw out of range: %v", v)
				}
			}
		}()
	}
	wg.Wait()
}
