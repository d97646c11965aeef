package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIncomeToLakhsINR(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"12 LPA", 12.00, true},
		{"12L", 12.00, true},
		{"10-12 LPA", 11.00, true},
		{"10 to 12 lakhs", 11.00, true},
		{"Rs. 5,00,000", 5.00, true},
		{"₹ 8,50,000 per annum", 8.50, true},
		{"1.5 crore", 150.00, true},
		{"50 lakh to 1 crore", 75.00, true},
		{"$100k", 83.50, true},
		{"USD 120000", 100.20, true},
		{"£60,000", 63.00, true},
		{"AUD 90000", 49.50, true},
		{"50000 per month", 6.00, true},
		{"Monthly salary 50000", 6.00, true},
		{"CTC 12 LPA, in-hand 80k pm", 12.00, true},
		{"40-50k per month", 5.40, true},
		{"8", 8.00, true},
		{"Undisclosed", 0, false},
		{"NA", 0, false},
		{"Not working", 0, false},
		{"Homemaker", 0, false},
		{"good", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeIncomeToLakhsINR(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestFindIncomeRange(t *testing.T) {
	tests := []struct {
		lakhs float64
		ok    bool
		want  string
	}{
		{12.00, true, "₹10 to ₹15 Lakh"},
		{0, true, "₹0 to ₹2 Lakh"},
		{1.99, true, "₹0 to ₹2 Lakh"},
		{2.00, true, "₹2 to ₹4 Lakh"},
		{49.99, true, "₹25 to ₹50 Lakh"},
		{75, true, "₹50 Lakh to ₹1 Crore"},
		{100, true, "₹1 Crore and above"},
		{5000, true, "₹1 Crore and above"},
		{12, false, IncomeUndisclosed},
		{math.NaN(), true, IncomeUndisclosed},
		{-1, true, IncomeUndisclosed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FindIncomeRange(tt.lakhs, tt.ok), "lakhs=%v ok=%v", tt.lakhs, tt.ok)
	}
}

func TestNormalizeIncome(t *testing.T) {
	assert.Equal(t, "₹10 to ₹15 Lakh", NormalizeIncome("12 LPA"))
	assert.Equal(t, IncomeUndisclosed, NormalizeIncome(""))
	assert.Equal(t, IncomeUndisclosed, NormalizeIncome("will disclose later"))
}

func TestNormalizeIncomeIdempotent(t *testing.T) {
	labels := []string{IncomeUndisclosed}
	for _, b := range IncomeBrackets {
		labels = append(labels, b.Label)
	}
	for _, label := range labels {
		assert.Equal(t, label, NormalizeIncome(label))
	}

	for _, raw := range []string{"12 LPA", "$100k", "7-9 lakh", "2 crore"} {
		once := NormalizeIncome(raw)
		assert.Equal(t, once, NormalizeIncome(once), "raw %q", raw)
	}
}
