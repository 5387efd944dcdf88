package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cashback-rewards/internal/core/domain"
	"cashback-rewards/internal/core/ports"

	"github.com/rs/zerolog"
)

// Headers sent with every payout request.
const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderTimestamp      = "X-Timestamp"
	HeaderSignature      = "X-Signature"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// PayoutRequest is the JSON body posted to the payout processor.
type PayoutRequest struct {
	RewardID      string `json:"reward_id"`
	TransactionID string `json:"transaction_id"`
	UserID        string `json:"user_id"`
	MerchantID    string `json:"merchant_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

// HTTPGatewayConfig configures an HTTPGateway.
type HTTPGatewayConfig struct {
	URL      string
	Currency string
	Timeout  time.Duration
}

// HTTPGateway issues rewards through a payout processor's HTTP API.
// The reward id is sent as the idempotency key, so a retried payout is never
// paid twice by a processor that honours it.
type HTTPGateway struct {
	cfg    HTTPGatewayConfig
	path   string
	client HTTPClient
	signer ports.PayoutSigner // nil sends unsigned requests
	log    zerolog.Logger
	now    func() time.Time
}

// NewHTTPGateway creates a new HTTPGateway.
func NewHTTPGateway(cfg HTTPGatewayConfig, client HTTPClient, signer ports.PayoutSigner, log zerolog.Logger) (*HTTPGateway, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid payout url %q", cfg.URL)
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return &HTTPGateway{
		cfg:    cfg,
		path:   path,
		client: client,
		signer: signer,
		log:    log,
		now:    time.Now,
	}, nil
}

// Issue posts a payout request. Any transport error or non-2xx status other
// than 409 is returned as a failure.
func (g *HTTPGateway) Issue(ctx context.Context, reward *domain.Reward) error {
	body, err := json.Marshal(PayoutRequest{
		RewardID:      reward.ID,
		TransactionID: reward.TransactionID,
		UserID:        reward.UserID,
		MerchantID:    reward.MerchantID,
		Amount:        reward.Amount.StringFixed(2),
		Currency:      g.cfg.Currency,
	})
	if err != nil {
		return fmt.Errorf("encode payout request: %w", err)
	}

	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create payout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderIdempotencyKey, reward.ID)

	if g.signer != nil {
		at := g.now()
		req.Header.Set(HeaderTimestamp, strconv.FormatInt(at.Unix(), 10))
		req.Header.Set(HeaderSignature, g.signer.SignPayout(http.MethodPost, g.path, at, body))
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("payout request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		g.log.Debug().Str("reward_id", reward.ID).Int("status", resp.StatusCode).Msg("payout accepted")
		return nil
	case resp.StatusCode == http.StatusConflict:
		// Processor already holds a payout under this idempotency key.
		g.log.Info().Str("reward_id", reward.ID).Msg("payout already accepted by processor")
		return nil
	default:
		return fmt.Errorf("payout processor returned status %d", resp.StatusCode)
	}
}
