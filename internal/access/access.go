// Package access sanitizes user access-grant keys and identifies the
// distinguished main-admin identity.
package access

import (
	"regexp"
	"strings"
)

const (
	ContractsAll          = "contracts:all"
	ContractsNonFinancial = "contracts:nonfinancial"
)

var (
	budgetKeyRe = regexp.MustCompile(`^budget:[a-z0-9_-]+$`)
	packKeyRe   = regexp.MustCompile(`^pack:[a-z0-9_-]+$`)
)

// Sanitize keeps only keys matching the fixed allowed patterns
// (budget:*, contracts:all, contracts:nonfinancial, pack:*), drops
// duplicates, and preserves the order of first occurrence.
func Sanitize(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if !allowed(key) || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}

func allowed(key string) bool {
	switch {
	case key == ContractsAll, key == ContractsNonFinancial:
		return true
	case budgetKeyRe.MatchString(key):
		return true
	case packKeyRe.MatchString(key):
		return true
	}
	return false
}

// FullGrants returns the grant set a main admin carries: every budget scope
// plus full contract visibility.
func FullGrants(scopes []string) []string {
	grants := make([]string, 0, len(scopes)+1)
	for _, s := range scopes {
		grants = append(grants, "budget:"+s)
	}
	return append(grants, ContractsAll)
}

// MainAdmin identifies the distinguished identity granted full access
// regardless of configured role.
type MainAdmin struct {
	Username string
	Email    string
}

// Matches reports whether a user identity is the configured main admin,
// matching by username or email (case-insensitive).
func (m MainAdmin) Matches(username, email string) bool {
	if m.Username != "" && strings.EqualFold(username, m.Username) {
		return true
	}
	if m.Email != "" && strings.EqualFold(email, m.Email) {
		return true
	}
	return false
}
