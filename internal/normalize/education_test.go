package normalize

import "testing"

func TestStandardizeEducation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"B.Tech from IIT Hyderabad", "BTech (Bachelor of Technology)"},
		{"pursuing MBA", "MBA (Master of Business Administration)"},
		{"MBBS, MD (Paediatrics)", "MD (Doctor of Medicine)"},
		{"M.Sc. Physics", "MSc (Master of Science)"},
		{"MS in Computer Science, USA", "MS (Master of Science)"},
		{"M.S. (Ortho)", "MS (Master of Surgery)"},
		{"B.E. (Mechanical)", "BE (Bachelor of Engineering)"},
		{"BE/B.Tech final year", "BTech (Bachelor of Technology)"},
		{"B.Com and CA Inter", "CA (Chartered Accountant)"},
		{"PGDM from IIM Ahmedabad", "MBA (Master of Business Administration)"},
		{"+2", "12th (Higher Secondary)"},
		{"SSLC", "10th (Secondary School)"},
		{"Ph.D in Chemistry", "PhD (Doctor of Philosophy)"},
		{"Diploma in Civil", "Diploma (Polytechnic Diploma)"},
		{"Engineering", "BE (Bachelor of Engineering)"},
		{"Masters in Physics", "Post Graduate (Master's Degree)"},
		{"Graduate", "Graduate (Bachelor's Degree)"},
		{"Degree", "Graduate (Bachelor's Degree)"},
		{"NA", ""},
		{"undisclosed", ""},
		{"", ""},
		{"xyz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := StandardizeEducation(tt.input); got != tt.want {
				t.Errorf("StandardizeEducation(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStandardizeEducationIdempotent(t *testing.T) {
	for _, rule := range educationRules {
		label := rule.Result
		if got := StandardizeEducation(label); got != label {
			t.Errorf("StandardizeEducation(%q) = %q, want the label itself", label, got)
		}
	}
}

func TestEducationRuleOrder(t *testing.T) {
	// msc and mba must not be read as ms
	tests := map[string]string{
		"msc": "MSc (Master of Science)",
		"mba": "MBA (Master of Business Administration)",
		"ms":  "MS (Master of Science)",
	}
	for input, want := range tests {
		if got, _ := educationRules.Apply(input); got != want {
			t.Errorf("educationRules.Apply(%q) = %q, want %q", input, got, want)
		}
	}
}
