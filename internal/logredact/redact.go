// Package logredact sanitizes partner submissions before they reach the
// logs. The pipeline itself never formats secrets; this covers the hosting
// layer, which logs full request bodies.
package logredact

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/veripay/partner-gateway/internal/models"
)

// Fingerprint replaces a secret with an opaque, stable digest so log lines
// can be correlated without exposing the value.
func Fingerprint(secret string) string {
	if secret == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(secret))
	return "sha256:" + hex.EncodeToString(sum[:])[:12]
}

// Request returns a copy of the submission safe to log: the credential is
// replaced by its fingerprint. Everything else is partner-visible data.
func Request(req models.SubmitTransactionRequest) models.SubmitTransactionRequest {
	req.PartnerPassword = Fingerprint(req.PartnerPassword)
	return req
}

// JSON renders v for a log attribute. Marshal failures degrade to a marker
// rather than an error path.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[unserializable]"
	}
	return string(b)
}
