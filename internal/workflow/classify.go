package workflow

import "strings"

// rule maps role text to a step. Rules are evaluated top to bottom and the
// first match wins; the order is significant and must not be reshuffled.
type rule struct {
	keywords []string // any of these matches
	exclude  []string // none of these may appear
	step     StepKey
}

var classifyRules = []rule{
	{
		keywords: []string{"project control", "planning", "کنترل پروژه", "برنامه ریزی", "برنامه‌ریزی"},
		step:     StepProjectControl,
	},
	{
		keywords: []string{"project manager", "مدیر پروژه"},
		step:     StepProjectManager,
	},
	{
		keywords: []string{"accounting", "حسابدار"},
		step:     StepAccountingSpecialist,
	},
	{
		keywords: []string{"finance manager", "مدیر مالی"},
		step:     StepFinanceManager,
	},
	{
		keywords: []string{"executive", "payment", "manager", "مدیرعامل", "پرداخت", "مدیر"},
		exclude:  []string{"finance", "مالی"},
		step:     StepPaymentOrder,
	},
	{
		keywords: []string{"creator", "requester", "ایجادکننده", "درخواست کننده", "درخواست‌کننده"},
		step:     StepCreator,
	},
}

// Classify maps free-text role wording (Persian or English) to a canonical
// step key via the ordered keyword table.
func Classify(roleText string) (StepKey, bool) {
	text := strings.ToLower(strings.TrimSpace(roleText))
	if text == "" {
		return "", false
	}
	for _, r := range classifyRules {
		if matches(text, r) {
			return r.step, true
		}
	}
	return "", false
}

func matches(text string, r rule) bool {
	for _, ex := range r.exclude {
		if strings.Contains(text, ex) {
			return false
		}
	}
	for _, kw := range r.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
