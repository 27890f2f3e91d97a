package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureVerifier authenticates webhook notifications with the shared
// secret configured for the storage provider's webhook.
type SignatureVerifier struct {
	secret []byte
}

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: []byte(secret)}
}

// Verify reports whether signature is the hex-encoded HMAC-SHA256 of payload
// under the shared secret. The payload must be the raw request body bytes as
// received; re-serializing a parsed structure can change key order or
// whitespace and break verification. Comparison is constant-time. An unset
// secret never verifies.
func (v *SignatureVerifier) Verify(payload []byte, signature string) bool {
	if len(v.secret) == 0 {
		return false
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
