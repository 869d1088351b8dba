package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/soulgarden/futures-bot/request"
)

// Sign returns the lowercase hex HMAC-SHA256 of payload keyed with secret.
func Sign(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))

	return hex.EncodeToString(mac.Sum(nil))
}

// SignParams signs the encoded query string of p, so p must already hold every
// field that will be sent, in sending order.
func SignParams(p *request.Params, secret string) string {
	return Sign(p.Encode(), secret)
}
