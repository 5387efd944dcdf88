package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cashback-rewards/internal/adapter/gateway"
	httpHandler "cashback-rewards/internal/adapter/http/handler"
	"cashback-rewards/internal/adapter/http/middleware"
	"cashback-rewards/internal/adapter/metrics"
	"cashback-rewards/internal/adapter/storage/memory"
	redisStorage "cashback-rewards/internal/adapter/storage/redis"
	"cashback-rewards/internal/adapter/storage/seed"
	"cashback-rewards/internal/core/domain"
	"cashback-rewards/internal/core/ports"
	"cashback-rewards/internal/service"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validKey    = "valid-api-key-123"
	inactiveKey = "inactive-key-456"
)

// constRandom returns the same draw every time and counts the calls.
type constRandom struct {
	draw  float64
	calls atomic.Int64
}

func (r *constRandom) Float64() float64 {
	r.calls.Add(1)
	return r.draw
}

type appOptions struct {
	draw        float64 // eligibility draws
	failureRate float64 // simulated gateway
	maxRetries  int
	rateLimit   middleware.RateLimitRule
}

// testApp wires the real HTTP layer, services and adapters over the in-memory
// store seeded with the demo dataset, with Redis served by miniredis.
type testApp struct {
	server  *httptest.Server
	redis   *miniredis.Miniredis
	store   *memory.Store
	random  *constRandom
	metrics *metrics.Prometheus
}

func newTestApp(t *testing.T, opts appOptions) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := zerolog.Nop()
	store := memory.NewStore(seed.Demo())
	random := &constRandom{draw: opts.draw}
	prom := metrics.NewPrometheus(false)

	engine := service.NewEligibilityService(store.Merchants, store.Users, random, log)
	gw := gateway.NewSimulatedGateway(0, opts.failureRate, &constRandom{draw: 0.5}, log)

	rewardSvc, err := service.NewRewardService(service.RewardServiceDeps{
		Engine:       engine,
		RewardRepo:   store.Rewards,
		DecisionRepo: store.Decisions,
		UserRepo:     store.Users,
		Gateway:      gw,
		Claims:       redisStorage.NewClaimStore(rdb),
		Cache:        redisStorage.NewRewardCache(rdb),
		Metrics:      prom,
		Policy:       service.RetryPolicy{MaxRetries: opts.maxRetries},
		Logger:       log,
	})
	require.NoError(t, err)

	verificationSvc := service.NewVerificationService(store.Transactions, store.Rewards, rewardSvc, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		VerificationSvc: verificationSvc,
		MerchantRepo:    store.Merchants,
		RateLimiter:     redisStorage.NewRateLimitStore(rdb),
		RateLimitRule:   opts.rateLimit,
		Metrics:         prom,
		HealthCheckers:  []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:          log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{server: server, redis: mr, store: store, random: random, metrics: prom}
}

// addTransaction registers a fresh transaction of merchant1 / user1.
func (a *testApp) addTransaction(id, amount string) {
	a.store.Transactions.Put(domain.Transaction{
		ID:         id,
		MerchantID: "merchant1",
		UserID:     "user1",
		Amount:     decimal.RequireFromString(amount),
		Timestamp:  time.Now().UTC(),
	})
}

type apiResponse struct {
	status int
	body   map[string]interface{}
	raw    string
}

func (a *testApp) do(t *testing.T, method, path, apiKey string, body []byte) apiResponse {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := apiResponse{status: resp.StatusCode, raw: string(raw)}
	_ = json.Unmarshal(raw, &out.body)
	return out
}

func (a *testApp) verify(t *testing.T, apiKey, txID string) apiResponse {
	return a.do(t, http.MethodGet, "/api/v1/rewards/verify?transactionId="+txID, apiKey, nil)
}

func (a *testApp) process(t *testing.T, apiKey, txID string) apiResponse {
	return a.do(t, http.MethodPost, "/api/v1/rewards/process", apiKey, []byte(fmt.Sprintf(`{"transactionId":%q}`, txID)))
}

func rewardOf(t *testing.T, r apiResponse) map[string]interface{} {
	t.Helper()
	reward, ok := r.body["reward"].(map[string]interface{})
	require.True(t, ok, "response has no reward: %s", r.raw)
	return reward
}

// --- Demo data scenarios ---

func TestApp_VerifyDemoReward(t *testing.T) {
	app := newTestApp(t, appOptions{draw: 0.1})

	r := app.verify(t, validKey, "valid-transaction-123")
	require.Equal(t, http.StatusOK, r.status, r.raw)
	assert.Equal(t, "Reward verification successful", r.body["message"])
	assert.Contains(t, r.raw, `"amount":5.00`)

	reward := rewardOf(t, r)
	assert.Equal(t, "reward123", reward["id"])
	assert.Equal(t, "issued", reward["status"])
	assert.Equal(t, "2024-01-01T00:00:00Z", reward["createdAt"])
}

func TestApp_VerifyErrors(t *testing.T) {
	app := newTestApp(t, appOptions{draw: 0.1})

	tests := []struct {
		name    string
		apiKey  string
		txID    string
		status  int
		message string
	}{
		{"missing api key", "", "valid-transaction-123", http.StatusUnauthorized, "API key is required"},
		{"unknown api key", "no-such-key", "valid-transaction-123", http.StatusForbidden, "Invalid API key"},
		{"inactive merchant", inactiveKey, "valid-transaction-456", http.StatusForbidden, "Merchant account is inactive"},
		{"missing transaction id", validKey, "", http.StatusBadRequest, "Transaction ID is required"},
		{"foreign transaction", validKey, "valid-transaction-456", http.StatusForbidden, "Transaction does not belong to this merchant"},
		{"unknown transaction", validKey, "nonexistent-transaction", http.StatusNotFound, "Transaction not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := app.verify(t, tt.apiKey, tt.txID)
			assert.Equal(t, tt.status, r.status, r.raw)
			assert.Equal(t, tt.message, r.body["message"])
			assert.NotEmpty(t, r.body["request_id"])
		})
	}
}

func TestApp_VerifyBeforeProcessing(t *testing.T) {
	app := newTestApp(t, appOptions{draw: 0.1})
	app.addTransaction("tx-fresh", "250.00")

	r := app.verify(t, validKey, "tx-fresh")
	assert.Equal(t, http.StatusNotFound, r.status)
	assert.Equal(t, "No reward found for this transaction", r.body["message"])
}

// --- Reward pipeline ---

func TestApp_ProcessIssuesOnce(t *testing.T) {
	// 0.1 is eligible and maps to a 2% reward.
	app := newTestApp(t, appOptions{draw: 0.1})
	app.addTransaction("tx-fresh", "250.00")

	first := app.process(t, validKey, "tx-fresh")
	require.Equal(t, http.StatusOK, first.status, first.raw)
	assert.Equal(t, "Reward processed", first.body["message"])
	assert.Contains(t, first.raw, `"amount":5.00`)
	reward := rewardOf(t, first)
	assert.Equal(t, "issued", reward["status"])
	assert.Equal(t, int64(2), app.random.calls.Load())

	second := app.process(t, validKey, "tx-fresh")
	require.Equal(t, http.StatusOK, second.status)
	assert.Equal(t, reward["id"], rewardOf(t, second)["id"])
	assert.Equal(t, int64(2), app.random.calls.Load(), "a decided transaction must not be redrawn")

	verified := app.verify(t, validKey, "tx-fresh")
	require.Equal(t, http.StatusOK, verified.status)
	assert.Equal(t, reward["id"], rewardOf(t, verified)["id"])
}

func TestApp_ProcessDemoRewardIsIdempotent(t *testing.T) {
	app := newTestApp(t, appOptions{draw: 0.1})

	r := app.process(t, validKey, "valid-transaction-123")
	require.Equal(t, http.StatusOK, r.status, r.raw)
	assert.Equal(t, "reward123", rewardOf(t, r)["id"])
	assert.Zero(t, app.random.calls.Load())
}

func TestApp_ProcessChanceDeclined(t *testing.T) {
	app := newTestApp(t, appOptions{draw: 0.9})
	app.addTransaction("tx-unlucky", "80.00")

	for i := 0; i < 3; i++ {
		r := app.process(t, validKey, "tx-unlucky")
		require.Equal(t, http.StatusOK, r.status, r.raw)
		assert.JSONEq(t, `{"message":"No reward for this transaction","reward":null}`, r.raw)
	}
	assert.Equal(t, int64(1), app.random.calls.Load(), "the declined draw is recorded once")

	v := app.verify(t, validKey, "tx-unlucky")
	assert.Equal(t, http.StatusNotFound, v.status)
}

func TestApp_ProcessIssuanceExhausted(t *testing.T) {
	app := newTestApp(t, appOptions{draw: 0.1, failureRate: 1, maxRetries: 2})
	app.addTransaction("tx-doomed", "100.00")

	r := app.process(t, validKey, "tx-doomed")
	require.Equal(t, http.StatusOK, r.status, r.raw)
	assert.Equal(t, "failed", rewardOf(t, r)["status"])

	stored, err := app.store.Rewards.GetByTransactionID(t.Context(), "tx-doomed")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 3, stored.Attempts)

	// A failed reward is final: processing again returns it untouched.
	again := app.process(t, validKey, "tx-doomed")
	assert.Equal(t, rewardOf(t, r)["id"], rewardOf(t, again)["id"])
}

func TestApp_ProcessForeignTransaction(t *testing.T) {
	app := newTestApp(t, appOptions{draw: 0.1})

	r := app.process(t, validKey, "valid-transaction-456")
	assert.Equal(t, http.StatusForbidden, r.status)
	assert.Equal(t, "AUTH_003", r.body["error_code"])
}

func TestApp_ProcessNonPositiveAmount(t *testing.T) {
	app := newTestApp(t, appOptions{draw: 0.1})
	app.addTransaction("tx-zero", "0.00")

	r := app.process(t, validKey, "tx-zero")
	assert.Equal(t, http.StatusBadRequest, r.status)
	assert.Zero(t, app.random.calls.Load())
}

// TestApp_ConcurrentProcessing fires many requests for the same transaction and
// checks that exactly one reward is ever created.
func TestApp_ConcurrentProcessing(t *testing.T) {
	app := newTestApp(t, appOptions{draw: 0.1})
	app.addTransaction("tx-race", "100.00")
	before := app.store.Rewards.Len()

	const concurrency = 20
	var wg sync.WaitGroup
	var okCount, busyCount atomic.Int64
	ids := make([]string, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := bytes.NewBufferString(`{"transactionId":"tx-race"}`)
			req, _ := http.NewRequest(http.MethodPost, app.server.URL+"/api/v1/rewards/process", body)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("x-api-key", validKey)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			defer resp.Body.Close()

			switch resp.StatusCode {
			case http.StatusOK:
				okCount.Add(1)
				var result struct {
					Reward struct {
						ID string `json:"id"`
					} `json:"reward"`
				}
				_ = json.NewDecoder(resp.Body).Decode(&result)
				ids[idx] = result.Reward.ID
			case http.StatusConflict:
				busyCount.Add(1)
			}
		}(i)
	}
	wg.Wait()

	t.Logf("concurrent processing: %d ok, %d in progress", okCount.Load(), busyCount.Load())
	assert.Equal(t, int64(concurrency), okCount.Load()+busyCount.Load())
	assert.GreaterOrEqual(t, okCount.Load(), int64(1))

	unique := make(map[string]struct{})
	for _, id := range ids {
		if id != "" {
			unique[id] = struct{}{}
		}
	}
	assert.Len(t, unique, 1, "every successful response must carry the same reward")
	assert.Equal(t, before+1, app.store.Rewards.Len())
	assert.Equal(t, int64(2), app.random.calls.Load(), "eligibility is drawn once")
}

// --- Listing ---

func TestApp_ListUserRewardsScopedToMerchant(t *testing.T) {
	app := newTestApp(t, appOptions{draw: 0.1})

	r := app.do(t, http.MethodGet, "/api/v1/users/user1/rewards", validKey, nil)
	require.Equal(t, http.StatusOK, r.status, r.raw)

	rewards, ok := r.body["rewards"].([]interface{})
	require.True(t, ok)
	require.Len(t, rewards, 1)
	assert.Equal(t, "reward123", rewards[0].(map[string]interface{})["id"])
}

// --- Operational endpoints ---

func TestApp_HealthCheck(t *testing.T) {
	app := newTestApp(t, appOptions{})

	r := app.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, r.status)
	assert.Equal(t, "healthy", r.body["status"])

	app.redis.SetError("LOADING redis is loading the dataset")
	r = app.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, r.status)
}

func TestApp_MetricsExposed(t *testing.T) {
	app := newTestApp(t, appOptions{draw: 0.1})
	app.addTransaction("tx-metrics", "10.00")
	app.process(t, validKey, "tx-metrics")

	r := app.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, r.status)
	assert.Contains(t, r.raw, `cashback_rewards_decisions_total{reason="rewarded"} 1`)
	assert.Contains(t, r.raw, `cashback_rewards_rewards_total{status="issued"} 1`)
	assert.Contains(t, r.raw, `route="/api/v1/rewards/process"`)
}

func TestApp_RateLimited(t *testing.T) {
	app := newTestApp(t, appOptions{draw: 0.1, rateLimit: middleware.RateLimitRule{Limit: 2, Window: time.Minute}})

	for i := 0; i < 2; i++ {
		r := app.verify(t, validKey, "valid-transaction-123")
		require.Equal(t, http.StatusOK, r.status)
	}
	r := app.verify(t, validKey, "valid-transaction-123")
	assert.Equal(t, http.StatusTooManyRequests, r.status)
	assert.Equal(t, "RATE_001", r.body["error_code"])
}
