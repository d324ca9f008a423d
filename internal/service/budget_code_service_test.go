package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullCode(t *testing.T) {
	tests := []struct {
		scope  string
		suffix string
		want   string
	}{
		{"office", "01", "1101"},
		{"site", "2045", "122045"},
		{"finance", "07", "1307"},
		{"cash", "13", "1413"},
		{"capex", "880", "15880"},
		{"projects", "001122", "16001122"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FullCode(tc.scope, tc.suffix), "scope %s", tc.scope)
	}
}

func TestScopePrefixesDistinct(t *testing.T) {
	seen := map[string]string{}
	for scope, prefix := range scopePrefixes {
		if other, ok := seen[prefix]; ok {
			t.Fatalf("scopes %s and %s share prefix %s", scope, other, prefix)
		}
		seen[prefix] = scope
	}
	assert.Len(t, scopePrefixes, 6)
}
