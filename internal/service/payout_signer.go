package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const signatureVersion = "v1"

// HMACPayoutSigner signs payout requests with HMAC-SHA256 under one shared secret.
//
// The signed message is
//
//	METHOD \n PATH \n UNIX_SECONDS \n hex(sha256(body))
//
// and the header value is "v1=" followed by the lowercase hex MAC.
type HMACPayoutSigner struct {
	secret []byte
}

// NewHMACPayoutSigner returns a signer bound to secret.
func NewHMACPayoutSigner(secret string) *HMACPayoutSigner {
	return &HMACPayoutSigner{secret: []byte(secret)}
}

func (s *HMACPayoutSigner) SignPayout(method, path string, at time.Time, body []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(signingMessage(method, path, at, body)))
	return signatureVersion + "=" + hex.EncodeToString(mac.Sum(nil))
}

// VerifyPayout compares in constant time. Unknown versions never verify.
func (s *HMACPayoutSigner) VerifyPayout(method, path string, at time.Time, body []byte, signature string) bool {
	if !strings.HasPrefix(signature, signatureVersion+"=") {
		return false
	}
	expected := s.SignPayout(method, path, at, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func signingMessage(method, path string, at time.Time, body []byte) string {
	digest := sha256.Sum256(body)
	return strings.Join([]string{
		strings.ToUpper(method),
		path,
		strconv.FormatInt(at.Unix(), 10),
		hex.EncodeToString(digest[:]),
	}, "\n")
}
