package pipeline

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const sigTimestampLayout = "20060102150405"

// CanonicalString concatenates the signed fields in their fixed order with
// no separators: parsed timestamp (14 UTC digits), partner key, partner ref
// no, total amount as plain decimal, and the base64 credential exactly as
// submitted.
func CanonicalString(ts time.Time, key, refNo string, total int64, password string) string {
	var b strings.Builder
	b.WriteString(ts.UTC().Format(sigTimestampLayout))
	b.WriteString(key)
	b.WriteString(refNo)
	b.WriteString(strconv.FormatInt(total, 10))
	b.WriteString(password)
	return b.String()
}

// Sign computes the wire signature: SHA-256 over the canonical string,
// rendered as 64 lowercase hex characters, then base64 of that hex TEXT.
// The double encoding is the external interface contract; partners sign
// this way, so it must be reproduced exactly.
func Sign(ts time.Time, key, refNo string, total int64, password string) string {
	sum := sha256.Sum256([]byte(CanonicalString(ts, key, refNo, total, password)))
	hexed := hex.EncodeToString(sum[:])
	return base64.StdEncoding.EncodeToString([]byte(hexed))
}

// VerifySignature checks the submitted signature against the one computed
// from the request fields. An empty signature fails before anything is
// computed.
func VerifySignature(sig string, ts time.Time, key, refNo string, total int64, password string) *Rejection {
	if sig == "" {
		return &Rejection{ReasonSignatureMismatch, msgAccessDenied}
	}
	if Sign(ts, key, refNo, total, password) != sig {
		return &Rejection{ReasonSignatureMismatch, msgAccessDenied}
	}
	return nil
}
