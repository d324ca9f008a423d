package workflow

// Status is the coarse request status as stored
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Action is one canonicalized row of a request's history, oldest first in
// Record.History.
type Action struct {
	Type string `json:"type"`
	From string `json:"from"`
	To   string `json:"to"`
	Note string `json:"note"`
}

// transitionTypes are the history action types that move a request between
// steps and therefore carry the "who owns it now" signal.
var transitionTypes = map[string]bool{
	"status":   true,
	"approve":  true,
	"approved": true,
	"reject":   true,
	"rejected": true,
	"return":   true,
	"returned": true,
}

// approvalTypes mark history rows that record an approval
var approvalTypes = map[string]bool{
	"approve":  true,
	"approved": true,
}

// Record is the canonical, alias-free input to Resolve. Build it with
// Normalize or directly from a stored request.
type Record struct {
	Scope        Scope    `json:"scope"`
	Status       Status   `json:"status"`
	CurrentRole  string   `json:"current_role"`
	AssignedRole string   `json:"assigned_role"`
	Unit         string   `json:"unit"`
	StatusText   string   `json:"status_text"` // free-text status/role-ish field, last-resort signal
	History      []Action `json:"history"`
}

// Resolution is the computed badge for a request row
type Resolution struct {
	Step  StepKey `json:"step"`
	Label string  `json:"label"`
	Color string  `json:"color"`
}

// Status labels. The finance-manager/awaiting-payment distinction depends on
// whether a payment order has already been approved.
const (
	labelAwaitingPrefix = "در انتظار تأیید "
	labelAwaitingPay    = "در انتظار پرداخت"
	labelPaymentDone    = "پرداخت انجام شد"
)

// Resolve determines which workflow step currently owns the request and the
// label/color to display. The resolved step is always a member of the scope's
// configured sequence.
func Resolve(rec Record) Resolution {
	step := resolveStep(rec)
	return decorate(rec, step)
}

// resolveStep applies the fixed priority order: explicit current role, then
// the newest transition in the history, then the approved/terminal rule, then
// any remaining role-ish field, then the scope's first step.
func resolveStep(rec Record) Step {
	if s, ok := classifyInScope(rec.Scope, rec.CurrentRole); ok {
		return s
	}

	for i := len(rec.History) - 1; i >= 0; i-- {
		act := rec.History[i]
		if !transitionTypes[act.Type] || act.To == "" {
			continue
		}
		if s, ok := classifyInScope(rec.Scope, act.To); ok {
			return s
		}
		break
	}

	if rec.Status == StatusApproved && InSequence(rec.Scope, StepPaymentDone) {
		s, _ := StepFor(StepPaymentDone)
		return s
	}

	for _, text := range []string{rec.AssignedRole, rec.Unit, rec.StatusText} {
		if s, ok := classifyInScope(rec.Scope, text); ok {
			return s
		}
	}

	return FirstStep(rec.Scope)
}

// classifyInScope classifies role text and rejects steps outside the scope's
// chain so the resolver invariant holds.
func classifyInScope(scope Scope, text string) (Step, bool) {
	key, ok := Classify(text)
	if !ok || !InSequence(scope, key) {
		return Step{}, false
	}
	s, _ := StepFor(key)
	return s, true
}

func decorate(rec Record, step Step) Resolution {
	if rec.Status == StatusApproved && step.Key == StepPaymentDone {
		return Resolution{Step: step.Key, Label: labelPaymentDone, Color: PaymentDoneColor}
	}

	if rec.Status == StatusPending {
		if step.Key == StepFinanceManager && hasApprovedPaymentOrder(rec.History) {
			return Resolution{Step: step.Key, Label: labelAwaitingPay, Color: step.Color}
		}
		return Resolution{Step: step.Key, Label: labelAwaitingPrefix + step.Label, Color: step.Color}
	}

	return Resolution{Step: step.Key, Label: step.Label, Color: step.Color}
}

// hasApprovedPaymentOrder reports whether a prior approved action already
// moved the request to the payment-order step.
func hasApprovedPaymentOrder(history []Action) bool {
	for _, act := range history {
		if !approvalTypes[act.Type] {
			continue
		}
		if key, ok := Classify(act.To); ok && key == StepPaymentOrder {
			return true
		}
	}
	return false
}
