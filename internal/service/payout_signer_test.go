package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var signedAt = time.Unix(1_760_000_000, 0)

func TestHMACPayoutSigner_RoundTrip(t *testing.T) {
	signer := NewHMACPayoutSigner("payout-secret")
	body := []byte(`{"reward_id":"r-1","amount":"5.00"}`)

	sig := signer.SignPayout("POST", "/v1/payouts", signedAt, body)

	assert.Regexp(t, `^v1=[0-9a-f]{64}$`, sig)
	assert.True(t, signer.VerifyPayout("POST", "/v1/payouts", signedAt, body, sig))
	assert.Equal(t, sig, signer.SignPayout("post", "/v1/payouts", signedAt, body), "method is case-insensitive")
}

func TestHMACPayoutSigner_MessageLayout(t *testing.T) {
	body := []byte(`{}`)
	digest := sha256.Sum256(body)
	mac := hmac.New(sha256.New, []byte("k"))
	mac.Write([]byte("POST\n/v1/payouts\n1760000000\n" + hex.EncodeToString(digest[:])))

	want := "v1=" + hex.EncodeToString(mac.Sum(nil))
	assert.Equal(t, want, NewHMACPayoutSigner("k").SignPayout("POST", "/v1/payouts", signedAt, body))
}

func TestHMACPayoutSigner_RejectsTampering(t *testing.T) {
	signer := NewHMACPayoutSigner("payout-secret")
	body := []byte(`{"amount":"5.00"}`)
	sig := signer.SignPayout("POST", "/v1/payouts", signedAt, body)

	tests := []struct {
		name   string
		signer *HMACPayoutSigner
		path   string
		at     time.Time
		body   []byte
		sig    string
	}{
		{"other secret", NewHMACPayoutSigner("other"), "/v1/payouts", signedAt, body, sig},
		{"other path", signer, "/v1/refunds", signedAt, body, sig},
		{"replayed later", signer, "/v1/payouts", signedAt.Add(time.Second), body, sig},
		{"edited body", signer, "/v1/payouts", signedAt, []byte(`{"amount":"50.00"}`), sig},
		{"unknown version", signer, "/v1/payouts", signedAt, body, "v2" + sig[2:]},
		{"garbage", signer, "/v1/payouts", signedAt, body, "not-a-signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.signer.VerifyPayout("POST", tt.path, tt.at, tt.body, tt.sig))
		})
	}
}
