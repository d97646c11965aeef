package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractReferencePhoneNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"9876543210", []string{"+919876543210"}},
		{"+19876543210", []string{"+19876543210"}},
		{"080 2345 6789", []string{"+918023456789"}},
		{"2345678", []string{"+912345678"}},
		{"0091 98765 43210", []string{"+919876543210"}},
		{"NA", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractReferencePhoneNumbers(tt.input))
		})
	}
}

func TestExtractPhoneNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"bare mobile", "9876543210", []string{"+919876543210"}},
		{"separated list", "98765 43210 / 080-23456789", []string{"+919876543210", "+918023456789"}},
		{"duplicates collapse", "+91 98765-43210, 9876543210", []string{"+919876543210"}},
		{"country code without plus", "919876543210", []string{"+919876543210"}},
		{"foreign number keeps its code", "+44 20 7946 0958", []string{"+442079460958"}},
		{"short landline stays bare", "2345678", []string{"2345678"}},
		{"digit blob is chunked", "98765432109123456789", []string{"+919876543210", "+919123456789"}},
		{"words between numbers", "9876543210 or 9123456789", []string{"+919876543210", "+919123456789"}},
		{"too short", "12345", nil},
		{"placeholder", "Undisclosed", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhoneNumbers(tt.input))
		})
	}
}

func TestPrimaryAndSecondary(t *testing.T) {
	p, s := PrimaryAndSecondary([]string{"+919876543210", "+919123456789", "+918023456789"})
	assert.Equal(t, "+919876543210", p)
	assert.Equal(t, "+919123456789", s)

	p, s = PrimaryAndSecondary([]string{"+919876543210"})
	assert.Equal(t, "+919876543210", p)
	assert.Empty(t, s)

	p, s = PrimaryAndSecondary(nil)
	assert.Empty(t, p)
	assert.Empty(t, s)
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		input string
		want  Reference
	}{
		{"Ramesh Kumar (Father) - 9876543210", Reference{Name: "Ramesh Kumar", Phone: "+919876543210"}},
		{"suresh whatsapp only 9876543210", Reference{Name: "Suresh", Phone: "+919876543210"}},
		{"mother 9876543210", Reference{Phone: "+919876543210"}},
		{"Dr. Anand Rao, uncle", Reference{Name: "Dr. Anand Rao"}},
		{"+1 415 555 2671 Priya", Reference{Name: "Priya", Phone: "+14155552671"}},
		{"will be disclosed", Reference{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseReference(tt.input))
		})
	}
}
