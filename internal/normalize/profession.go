package normalize

import (
	"regexp"
	"strings"
)

// ProfessionDesignation is the result of splitting a job description
type ProfessionDesignation struct {
	Profession  string `json:"profession"`
	Designation string `json:"designation"`
}

var reGenericRole = regexp.MustCompile(`(?i)\b(?:(senior|sr|junior|jr|lead|chief|principal|associate|assistant|asst|head|deputy|staff)\.?\s+)?((?:software|systems?|project|product|sales|marketing|research|data|technical|business)\s+)?(engineer|developer|manager|analyst|consultant|architect|designer|scientist|officer|executive|administrator|supervisor|technician|director)\b`)

var seniorityWords = map[string]string{
	"sr":   "Senior",
	"jr":   "Junior",
	"asst": "Assistant",
}

// genericRoleProfessions maps the occupational noun of a generic title to a profession
var genericRoleProfessions = map[string]string{
	"engineer":      "Engineer",
	"developer":     "Software Professional",
	"manager":       "Manager",
	"consultant":    "Consultant",
	"architect":     "Architect",
	"designer":      "Designer",
	"scientist":     "Scientist",
	"officer":       "Government Employee",
	"director":      "Businessperson",
	"analyst":       "Private Employee",
	"executive":     "Private Employee",
	"administrator": "Private Employee",
	"supervisor":    "Private Employee",
	"technician":    "Private Employee",
}

// NormalizeProfessionDesignation splits a combined job description into a
// profession and a designation. Designations are matched first and their
// text is removed before professions are searched, so "Software Engineer"
// does not also count as the profession "Engineer".
func NormalizeProfessionDesignation(raw string, designations, professions Vocabulary) ProfessionDesignation {
	var pd ProfessionDesignation
	if IsPlaceholder(raw) {
		return pd
	}
	text := collapseSpaces(fold(raw))
	rest := text

	if m, ok := designations.Match(rest); ok {
		pd.Designation = m.Canonical
		rest = m.cut(rest)
	}
	if m, ok := professions.Match(rest); ok {
		pd.Profession = m.Canonical
	}
	if pd.Designation != "" && pd.Profession == "" {
		pd.Profession = professionForDesignation(pd.Designation)
	}
	if pd.Designation == "" && pd.Profession == "" {
		pd = genericRole(text)
	}
	if pd.Profession == "" {
		pd.Profession, _ = occupationFallbackRules.Apply(text)
	}
	if pd.Profession == "" && len(strings.ReplaceAll(simpleWords(text), " ", "")) > minOccupationTextSize {
		pd.Profession = DefaultOccupation
	}
	return pd
}

// professionForDesignation looks a designation up in the static table and
// falls back to keyword rules for designations loaded from the database
func professionForDesignation(designation string) string {
	for d, p := range designationProfessions {
		if strings.EqualFold(d, designation) {
			return p
		}
	}
	p, _ := occupationFallbackRules.Apply(designation)
	return p
}

// genericRole recognises titles like "Sr. Software Engineer" that are not in the vocabulary
func genericRole(text string) ProfessionDesignation {
	m := reGenericRole.FindStringSubmatch(text)
	if m == nil {
		return ProfessionDesignation{}
	}
	seniority := strings.ToLower(m[1])
	if full, ok := seniorityWords[seniority]; ok {
		seniority = full
	}
	noun := strings.ToLower(m[3])
	title := collapseSpaces(strings.Join([]string{seniority, m[2], noun}, " "))

	profession := genericRoleProfessions[noun]
	if strings.EqualFold(strings.TrimSpace(m[2]), "software") {
		profession = "Software Professional"
	}
	return ProfessionDesignation{
		Profession:  profession,
		Designation: titleCaser.String(strings.ToLower(title)),
	}
}
