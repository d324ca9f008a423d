package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterKey(t *testing.T) {
	assert.Equal(t, "pr:140406", CounterKey(KindPaymentRequest, 1404, 6))
	assert.Equal(t, "lt:140412", CounterKey(KindLetter, 1404, 12))
	assert.Equal(t, "pr:140001", CounterKey(KindPaymentRequest, 1400, 1))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		year  int
		month int
		seq   int64
		want  string
	}{
		{1404, 6, 17, "0406-0017"},
		{1404, 12, 1, "0412-0001"},
		{1400, 1, 9999, "0001-9999"}, // century truncates to two digits
		{1399, 12, 3, "9912-0003"},
		{1404, 6, 10000, "0406-10000"}, // width grows past four digits
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Format(tc.year, tc.month, tc.seq))
	}
}

func TestKeysDistinctAcrossKindsAndMonths(t *testing.T) {
	// Counters must never collide across document kinds or months
	seen := map[string]bool{}
	for _, kind := range []string{KindPaymentRequest, KindLetter} {
		for month := 1; month <= 12; month++ {
			key := CounterKey(kind, 1404, month)
			assert.False(t, seen[key], "duplicate key %s", key)
			seen[key] = true
		}
	}
}
