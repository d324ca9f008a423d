package workflow

// Scope is a budget category selecting which step sequence applies
type Scope string

const (
	ScopeOffice   Scope = "office"
	ScopeSite     Scope = "site"
	ScopeFinance  Scope = "finance"
	ScopeCash     Scope = "cash"
	ScopeCapex    Scope = "capex"
	ScopeProjects Scope = "projects"
)

var validScopes = map[Scope]bool{
	ScopeOffice:   true,
	ScopeSite:     true,
	ScopeFinance:  true,
	ScopeCash:     true,
	ScopeCapex:    true,
	ScopeProjects: true,
}

// IsValid returns true if the scope is a configured budget category
func (s Scope) IsValid() bool {
	return validScopes[s]
}

// Scopes lists all configured budget categories
func Scopes() []Scope {
	return []Scope{ScopeOffice, ScopeSite, ScopeFinance, ScopeCash, ScopeCapex, ScopeProjects}
}

// StepKey identifies the organizational role that currently owns a request
type StepKey string

const (
	StepCreator              StepKey = "creator"
	StepProjectControl       StepKey = "project_control"
	StepProjectManager       StepKey = "project_manager"
	StepAccountingSpecialist StepKey = "accounting_specialist"
	StepFinanceManager       StepKey = "finance_manager"
	StepPaymentOrder         StepKey = "payment_order"
	StepPaymentDone          StepKey = "payment_done"
)

// Step carries the display label and color for a workflow step
type Step struct {
	Key   StepKey `json:"key"`
	Label string  `json:"label"`
	Color string  `json:"color"`
}

var stepCatalog = map[StepKey]Step{
	StepCreator:              {Key: StepCreator, Label: "ایجادکننده", Color: "#64748b"},
	StepProjectControl:       {Key: StepProjectControl, Label: "کنترل پروژه", Color: "#0ea5e9"},
	StepProjectManager:       {Key: StepProjectManager, Label: "مدیر پروژه", Color: "#6366f1"},
	StepAccountingSpecialist: {Key: StepAccountingSpecialist, Label: "کارشناس حسابداری", Color: "#f59e0b"},
	StepFinanceManager:       {Key: StepFinanceManager, Label: "مدیر مالی", Color: "#d946ef"},
	StepPaymentOrder:         {Key: StepPaymentOrder, Label: "دستور پرداخت", Color: "#f97316"},
	StepPaymentDone:          {Key: StepPaymentDone, Label: "پرداخت شده", Color: "#22c55e"},
}

// PaymentDoneColor overrides the step color once a request is fully paid
const PaymentDoneColor = "#16a34a"

// projects requests pass the full chain; the other scopes skip the
// project-side steps
var projectsSequence = []StepKey{
	StepCreator,
	StepProjectControl,
	StepProjectManager,
	StepAccountingSpecialist,
	StepFinanceManager,
	StepPaymentOrder,
	StepPaymentDone,
}

var defaultSequence = []StepKey{
	StepCreator,
	StepAccountingSpecialist,
	StepFinanceManager,
	StepPaymentOrder,
	StepPaymentDone,
}

// SequenceFor returns the ordered step sequence for a scope
func SequenceFor(scope Scope) []Step {
	keys := defaultSequence
	if scope == ScopeProjects {
		keys = projectsSequence
	}
	steps := make([]Step, 0, len(keys))
	for _, k := range keys {
		steps = append(steps, stepCatalog[k])
	}
	return steps
}

// StepFor looks up a step's label/color by key
func StepFor(key StepKey) (Step, bool) {
	s, ok := stepCatalog[key]
	return s, ok
}

// InSequence reports whether a step belongs to the scope's configured chain
func InSequence(scope Scope, key StepKey) bool {
	for _, s := range SequenceFor(scope) {
		if s.Key == key {
			return true
		}
	}
	return false
}

// FirstStep returns the opening step of a scope's chain (always creator)
func FirstStep(scope Scope) Step {
	return SequenceFor(scope)[0]
}
