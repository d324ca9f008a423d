package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Concrete", "concrete"},
		{"  بتن ریزی  ", "بتن ریزی"},
		{"Steel   Rebar", "steel rebar"},
		{"\tMixed\n Whitespace ", "mixed whitespace"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeLabel(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeLabelCollisions(t *testing.T) {
	// Labels differing only in case or spacing normalize to the same key
	assert.Equal(t, NormalizeLabel("بتن ریزی"), NormalizeLabel("  بتن   ریزی"))
	assert.Equal(t, NormalizeLabel("Site Work"), NormalizeLabel("site work"))
	assert.NotEqual(t, NormalizeLabel("بتن"), NormalizeLabel("بتن ریزی"))
}
