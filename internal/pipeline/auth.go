package pipeline

import (
	"encoding/base64"

	"github.com/veripay/partner-gateway/internal/partner"
)

// Authenticate decodes the submitted credential and compares it against the
// stored partner secret. Unknown partner and wrong secret are reported
// identically so a caller cannot probe which check failed.
func Authenticate(store *partner.Store, key, password string) *Rejection {
	if key == "" || password == "" {
		return &Rejection{ReasonAccessDenied, msgAccessDenied}
	}
	raw, err := base64.StdEncoding.DecodeString(password)
	if err != nil {
		return &Rejection{ReasonMalformedCredential, msgMalformedCredential}
	}
	cred, ok := store.Lookup(key)
	if !ok || cred.Secret != string(raw) {
		return &Rejection{ReasonAccessDenied, msgAccessDenied}
	}
	return nil
}
