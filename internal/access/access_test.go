package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "valid keys pass through",
			in:   []string{"budget:office", "contracts:all", "pack:site-2024"},
			want: []string{"budget:office", "contracts:all", "pack:site-2024"},
		},
		{
			name: "invalid keys dropped",
			in:   []string{"budget:Office", "contracts:some", "admin:*", "budget:", "pack:UPPER"},
			want: []string{},
		},
		{
			name: "duplicates collapse to first occurrence",
			in:   []string{"budget:cash", "contracts:nonfinancial", "budget:cash"},
			want: []string{"budget:cash", "contracts:nonfinancial"},
		},
		{
			name: "whitespace trimmed",
			in:   []string{"  budget:capex  ", " contracts:all"},
			want: []string{"budget:capex", "contracts:all"},
		},
		{
			name: "order preserved",
			in:   []string{"pack:z", "budget:a", "pack:b"},
			want: []string{"pack:z", "budget:a", "pack:b"},
		},
		{
			name: "empty input",
			in:   nil,
			want: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.in))
		})
	}
}

func TestFullGrants(t *testing.T) {
	grants := FullGrants([]string{"office", "site"})
	assert.Equal(t, []string{"budget:office", "budget:site", "contracts:all"}, grants)
}

func TestMainAdminMatches(t *testing.T) {
	admin := MainAdmin{Username: "admin", Email: "boss@example.com"}

	assert.True(t, admin.Matches("admin", ""))
	assert.True(t, admin.Matches("ADMIN", ""))
	assert.True(t, admin.Matches("", "Boss@Example.com"))
	assert.False(t, admin.Matches("other", "other@example.com"))

	// Empty config matches nobody
	empty := MainAdmin{}
	assert.False(t, empty.Matches("admin", "boss@example.com"))
	assert.False(t, empty.Matches("", ""))
}
