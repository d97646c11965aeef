package normalize

import "testing"

func TestParseSiblingDetails(t *testing.T) {
	tests := []struct {
		input string
		want  Siblings
	}{
		{"No siblings", Siblings{"No Sisters", "No Brothers"}},
		{"Only child", Siblings{"No Sisters", "No Brothers"}},
		{"1 sister married, 1 brother unmarried", Siblings{"1 Sister - Married", "1 Brother - Unmarried"}},
		{"2 sisters, 1 married, 1 unmarried", Siblings{"1 Sister Married, 1 Sister Unmarried", "No Brothers"}},
		{"Two sisters both married", Siblings{"2 Sisters - Married", "No Brothers"}},
		{"2 brothers, one married", Siblings{"No Sisters", "2 Brothers - Married"}},
		{"1 sister", Siblings{"1 Sister - Unmarried", "No Brothers"}},
		{"3 brothers", Siblings{"No Sisters", "More than 2 Brothers"}},
		{"sis married, bro unmarried", Siblings{"1 Sister - Married", "1 Brother - Unmarried"}},
		{"no sister, 1 brother married", Siblings{"No Sisters", "1 Brother - Married"}},
		{"one elder sister married", Siblings{"1 Sister - Married", "No Brothers"}},
		{"An elder brother (married) and a younger sister studying", Siblings{"1 Sister - Unmarried", "1 Brother - Married"}},
		{"2 sisters married and 2 brothers", Siblings{"2 Sisters - Married", "2 Brothers - Unmarried"}},
		{"Brothers: 1, Sisters: 0", Siblings{"No Sisters", "1 Brother - Unmarried"}},
		{"Sisters: 0", Siblings{"No Sisters", "No Brothers"}},
		{"Brothers - 1", Siblings{"No Sisters", "1 Brother - Unmarried"}},
		{"Sisters = 2 (both married)", Siblings{"2 Sisters - Married", "No Brothers"}},
		{"sisters: 2 brothers: 1", Siblings{"2 Sisters - Unmarried", "1 Brother - Unmarried"}},
		{"sisters 1 brother", Siblings{"2 Sisters - Unmarried", "1 Brother - Unmarried"}},
		{"elder sister 26 years, married", Siblings{"1 Sister - Married", "No Brothers"}},
		{"1 brother unmarried, settled in USA", Siblings{"No Sisters", "1 Brother - Unmarried"}},
		{"1 sister, unmarried, working and settled in Pune", Siblings{"1 Sister - Unmarried", "No Brothers"}},
		{"Undisclosed", Siblings{}},
		{"Undisclosed.", Siblings{}},
		{"N/A.", Siblings{}},
		{"", Siblings{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseSiblingDetails(tt.input); got != tt.want {
				t.Errorf("ParseSiblingDetails(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSiblingDetailsLabelsAreClosed(t *testing.T) {
	allowed := make(map[string]bool)
	for _, kind := range []string{"Sister", "Brother"} {
		for _, l := range SiblingLabels(kind) {
			allowed[l] = true
		}
	}

	inputs := []string{
		"1 sister married, 1 brother unmarried",
		"4 sisters 1 brother",
		"elder sister is married and settled in USA",
		"brothers: 2 (both unmarried)",
		"one sister, she is married; one brother studying",
	}
	for _, input := range inputs {
		got := ParseSiblingDetails(input)
		if !allowed[got.Sisters] || !allowed[got.Brothers] {
			t.Errorf("ParseSiblingDetails(%q) = %v, outside the label set", input, got)
		}
	}
}
