package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStepAlwaysInScopeSequence(t *testing.T) {
	// Role texts deliberately pointing at steps that not every scope has
	roleTexts := []string{
		"کنترل پروژه",
		"مدیر پروژه",
		"حسابدار",
		"مدیر مالی",
		"دستور پرداخت",
		"ایجادکننده",
		"something unrecognizable",
		"",
	}

	for _, scope := range Scopes() {
		for _, role := range roleTexts {
			res := Resolve(Record{Scope: scope, Status: StatusPending, CurrentRole: role})
			assert.True(t, InSequence(scope, res.Step),
				"scope %s role %q resolved to %s which is outside the sequence", scope, role, res.Step)
		}
	}
}

func TestResolveCurrentRoleWinsOverHistory(t *testing.T) {
	rec := Record{
		Scope:       ScopeOffice,
		Status:      StatusPending,
		CurrentRole: "مدیر مالی",
		History: []Action{
			{Type: "status", To: "ایجادکننده"},
			{Type: "approved", To: "حسابدار"},
		},
	}

	res := Resolve(rec)
	assert.Equal(t, StepFinanceManager, res.Step)
	assert.Equal(t, "در انتظار تأیید مدیر مالی", res.Label)
}

func TestResolveFallsBackToNewestTransition(t *testing.T) {
	rec := Record{
		Scope:  ScopeSite,
		Status: StatusPending,
		History: []Action{
			{Type: "status", To: "ایجادکننده"},
			{Type: "approved", To: "کارشناس حسابداری"},
		},
	}

	res := Resolve(rec)
	assert.Equal(t, StepAccountingSpecialist, res.Step)
}

func TestResolveOnlyNewestTransitionConsidered(t *testing.T) {
	// The newest transition has unparseable role text; the resolver must not
	// keep scanning older transitions for a match.
	rec := Record{
		Scope:  ScopeSite,
		Status: StatusPending,
		History: []Action{
			{Type: "approved", To: "حسابدار"},
			{Type: "approved", To: "واحد نامشخص"},
		},
	}

	res := Resolve(rec)
	assert.Equal(t, StepCreator, res.Step)
}

func TestResolveAwaitingPaymentLabel(t *testing.T) {
	// Pending at finance manager, but a payment order was already approved:
	// the label flips to awaiting-payment.
	rec := Record{
		Scope:       ScopeFinance,
		Status:      StatusPending,
		CurrentRole: "مدیر مالی",
		History: []Action{
			{Type: "approved", To: "دستور پرداخت"},
		},
	}

	res := Resolve(rec)
	assert.Equal(t, StepFinanceManager, res.Step)
	assert.Equal(t, "در انتظار پرداخت", res.Label)
}

func TestResolveApprovedIsPaymentDone(t *testing.T) {
	rec := Record{Scope: ScopeOffice, Status: StatusApproved}

	res := Resolve(rec)
	assert.Equal(t, StepPaymentDone, res.Step)
	assert.Equal(t, "پرداخت انجام شد", res.Label)
	assert.Equal(t, PaymentDoneColor, res.Color)
}

func TestResolveAssignedRoleAndUnitFallbacks(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want StepKey
	}{
		{
			name: "assigned role",
			rec:  Record{Scope: ScopeCash, Status: StatusPending, AssignedRole: "accounting dept"},
			want: StepAccountingSpecialist,
		},
		{
			name: "unit",
			rec:  Record{Scope: ScopeCapex, Status: StatusPending, Unit: "مدیرعامل"},
			want: StepPaymentOrder,
		},
		{
			name: "status text last resort",
			rec:  Record{Scope: ScopeOffice, Status: StatusPending, StatusText: "در انتظار مدیر مالی"},
			want: StepFinanceManager,
		},
		{
			name: "nothing recognizable defaults to creator",
			rec:  Record{Scope: ScopeOffice, Status: StatusPending},
			want: StepCreator,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.rec).Step)
		})
	}
}

func TestResolveScopeClampsProjectSteps(t *testing.T) {
	// office has no project_control step, so that role text must not win
	rec := Record{
		Scope:       ScopeOffice,
		Status:      StatusPending,
		CurrentRole: "کنترل پروژه",
		History:     []Action{{Type: "approved", To: "حسابدار"}},
	}

	res := Resolve(rec)
	assert.Equal(t, StepAccountingSpecialist, res.Step)
}

func TestSequenceFor(t *testing.T) {
	projects := SequenceFor(ScopeProjects)
	assert.Len(t, projects, 7)
	assert.Equal(t, StepProjectControl, projects[1].Key)

	office := SequenceFor(ScopeOffice)
	assert.Len(t, office, 5)
	for _, s := range office {
		assert.NotEqual(t, StepProjectControl, s.Key)
		assert.NotEqual(t, StepProjectManager, s.Key)
	}

	assert.Equal(t, StepCreator, FirstStep(ScopeProjects).Key)
	assert.Equal(t, StepCreator, FirstStep(ScopeCash).Key)
}
