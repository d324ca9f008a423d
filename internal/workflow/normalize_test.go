package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAliases(t *testing.T) {
	raw := map[string]interface{}{
		"budget_scope": "OFFICE",
		"state":        "در انتظار",
		"currentRole":  "مدیر مالی",
		"مسئول":        "حسابدار",
		"واحد":         "دستور پرداخت",
		"actions": []interface{}{
			map[string]interface{}{
				"kind":      "Approved",
				"next_role": "حسابدار",
				"comment":   "ok",
			},
		},
	}

	rec, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, ScopeOffice, rec.Scope)
	assert.Equal(t, StatusPending, rec.Status)
	assert.Equal(t, "مدیر مالی", rec.CurrentRole)
	assert.Equal(t, "حسابدار", rec.AssignedRole)
	assert.Equal(t, "دستور پرداخت", rec.Unit)

	require.Len(t, rec.History, 1)
	assert.Equal(t, "approved", rec.History[0].Type)
	assert.Equal(t, "حسابدار", rec.History[0].To)
	assert.Equal(t, "ok", rec.History[0].Note)
}

func TestNormalizeUnknownScope(t *testing.T) {
	_, err := Normalize(map[string]interface{}{"scope": "marketing"})
	assert.Error(t, err)

	_, err = Normalize(map[string]interface{}{})
	assert.Error(t, err)
}

func TestNormalizePersianStatusValues(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"تایید شده", StatusApproved},
		{"تأیید شده", StatusApproved},
		{"رد شده", StatusRejected},
		{"در انتظار", StatusPending},
		{"garbage", StatusPending},
		{"", StatusPending},
	}

	for _, tc := range tests {
		rec, err := Normalize(map[string]interface{}{"scope": "site", "status": tc.raw})
		require.NoError(t, err)
		assert.Equal(t, tc.want, rec.Status, "status %q", tc.raw)
	}
}

func TestNormalizeThenResolve(t *testing.T) {
	raw := map[string]interface{}{
		"scope":  "projects",
		"status": "pending",
		"history": []interface{}{
			map[string]interface{}{"type": "status", "to": "ایجادکننده"},
			map[string]interface{}{"type": "approved", "to": "کنترل پروژه"},
		},
	}

	rec, err := Normalize(raw)
	require.NoError(t, err)

	res := Resolve(rec)
	assert.Equal(t, StepProjectControl, res.Step)
}

func TestNormalizeSkipsMalformedHistoryEntries(t *testing.T) {
	raw := map[string]interface{}{
		"scope": "cash",
		"history": []interface{}{
			"not an object",
			map[string]interface{}{"type": "approved", "to": "حسابدار"},
		},
	}

	rec, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, rec.History, 1)
	assert.Equal(t, "approved", rec.History[0].Type)
}
