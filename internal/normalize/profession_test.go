package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProfessionDesignation(t *testing.T) {
	designations := NewVocabulary(DefaultDesignations)
	professions := NewVocabulary(DefaultProfessions)

	tests := []struct {
		input string
		want  ProfessionDesignation
	}{
		{"Senior Software Engineer at Google", ProfessionDesignation{"Software Professional", "Senior Software Engineer"}},
		{"Assistant Engineer, PWD", ProfessionDesignation{"Government Employee", "Assistant Engineer"}},
		{"Doctor", ProfessionDesignation{"Doctor", ""}},
		{"Project Manager - Infosys", ProfessionDesignation{"Manager", "Project Manager"}},
		{"Sr. Research Analyst", ProfessionDesignation{"Private Employee", "Senior Research Analyst"}},
		{"Own business", ProfessionDesignation{"Businessperson", ""}},
		{"xyz corp", ProfessionDesignation{"Businessperson", ""}},
		{"Undisclosed", ProfessionDesignation{}},
		{"", ProfessionDesignation{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeProfessionDesignation(tt.input, designations, professions))
		})
	}
}

func TestDesignationSuppressesProfessionOnSameSpan(t *testing.T) {
	designations := NewVocabulary([]string{"Assistant Engineer"})
	professions := NewVocabulary([]string{"Engineer", "Teacher"})

	got := NormalizeProfessionDesignation("Assistant Engineer", designations, professions)
	assert.Equal(t, "Assistant Engineer", got.Designation)
	assert.Equal(t, "Government Employee", got.Profession, "profession must come from the designation table, not the removed span")

	got = NormalizeProfessionDesignation("Assistant Engineer, part time teacher", designations, professions)
	assert.Equal(t, "Teacher", got.Profession)
}

func TestNormalizeProfessionDesignationUnknownDesignation(t *testing.T) {
	designations := NewVocabulary([]string{"Loco Pilot"})
	got := NormalizeProfessionDesignation("Loco Pilot, Indian Railways", designations, Vocabulary{})
	assert.Equal(t, ProfessionDesignation{Profession: "Government Employee", Designation: "Loco Pilot"}, got)
}
