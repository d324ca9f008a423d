package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want StepKey
		ok   bool
	}{
		{"کنترل پروژه", StepProjectControl, true},
		{"واحد برنامه ریزی", StepProjectControl, true},
		{"Project Manager", StepProjectManager, true},
		{"مدیر پروژه عمرانی", StepProjectManager, true},
		{"کارشناس حسابداری", StepAccountingSpecialist, true},
		{"accounting specialist", StepAccountingSpecialist, true},
		{"مدیر مالی", StepFinanceManager, true},
		{"Finance Manager", StepFinanceManager, true},
		{"مدیرعامل", StepPaymentOrder, true},
		{"payment order", StepPaymentOrder, true},
		{"executive", StepPaymentOrder, true},
		{"ایجادکننده", StepCreator, true},
		{"درخواست کننده", StepCreator, true},
		{"", "", false},
		{"   ", "", false},
		{"واحد فنی", "", false},
	}

	for _, tc := range tests {
		got, ok := Classify(tc.text)
		assert.Equal(t, tc.ok, ok, "text %q", tc.text)
		assert.Equal(t, tc.want, got, "text %q", tc.text)
	}
}

func TestClassifyFinanceManagerBeatsGenericManager(t *testing.T) {
	// "مدیر مالی" contains the generic "مدیر" keyword of the payment-order
	// rule; the finance rule must win via ordering plus the exclude list.
	got, ok := Classify("مدیر مالی شرکت")
	assert.True(t, ok)
	assert.Equal(t, StepFinanceManager, got)

	// Finance-flavored wording never falls through to the payment-order rule,
	// even when the finance rule itself does not match.
	_, ok = Classify("finance payment supervisor")
	assert.False(t, ok)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	got, ok := Classify("PROJECT CONTROL")
	assert.True(t, ok)
	assert.Equal(t, StepProjectControl, got)
}
