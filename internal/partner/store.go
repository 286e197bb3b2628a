// Package partner holds the static partner credential table.
package partner

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Credential is one partner's record: the internal partner number and the
// shared secret the submitted password must decode to.
type Credential struct {
	PartnerNo string `json:"partnerNo"`
	Secret    string `json:"secret"`
}

// Store is an immutable partnerKey -> Credential table, keyed
// case-insensitively. Built once at startup; no mutation API exists.
type Store struct {
	creds map[string]Credential
}

func NewStore(creds map[string]Credential) *Store {
	m := make(map[string]Credential, len(creds))
	for k, c := range creds {
		m[strings.ToUpper(k)] = c
	}
	return &Store{creds: m}
}

// Demo returns the built-in demo partner set used when no partners file is
// configured.
func Demo() *Store {
	return NewStore(map[string]Credential{
		"FAKEGOOGLE": {PartnerNo: "FG-00001", Secret: "FAKEPASSWORD1234"},
		"FAKEPEOPLE": {PartnerNo: "FG-00002", Secret: "FAKEPASSWORD4578"},
	})
}

// LoadFile reads a JSON partners file: {"PARTNERKEY": {"partnerNo": "...",
// "secret": "..."}, ...}.
func LoadFile(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read partners file: %w", err)
	}
	var creds map[string]Credential
	if err := json.Unmarshal(b, &creds); err != nil {
		return nil, fmt.Errorf("parse partners file: %w", err)
	}
	if len(creds) == 0 {
		return nil, fmt.Errorf("partners file %s is empty", path)
	}
	return NewStore(creds), nil
}

// Lookup is case-insensitive on the partner key.
func (s *Store) Lookup(key string) (Credential, bool) {
	c, ok := s.creds[strings.ToUpper(key)]
	return c, ok
}

// Keys returns the configured partner keys, sorted. Secrets are never
// exposed through this surface.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.creds))
	for k := range s.creds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
