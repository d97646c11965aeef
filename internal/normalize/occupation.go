package normalize

import "strings"

// Occupation sentinels that are not professions
const (
	OccupationHomemaker   = "Homemaker"
	OccupationRetired     = "Retired"
	OccupationStudent     = "Student"
	DefaultOccupation     = "Businessperson"
	religiousOccupation   = "Teacher"
	minOccupationTextSize = 2
)

// occupationStatusRules run before any vocabulary lookup.
// Homemaker wins over everything else in the same answer.
var occupationStatusRules = Cascade{
	newRule(OccupationHomemaker, `\b(?:home\s*maker|house\s*wife|home\s*wife|house\s*maker|house\s*hold|home\s*manager)\b`),
	newRule(OccupationRetired, `\b(?:retired|retd|late|expired|deceased|passed\s+away|no\s+more|unemployed|not\s+working|pensioner)\b`),
	newRule(OccupationStudent, `\b(?:student|studying)\b`),
	newRule(religiousOccupation, `\b(?:purohit\w*|archak\w*|priest|pujari|poojari|pandit|vedic\w*)\b`),
}

// occupationFallbackRules map common keywords to a profession when no
// vocabulary term matched. Shared by the parent occupation and the
// profession normalizers. Every result maps to itself.
var occupationFallbackRules = Cascade{
	newRule("Software Professional", `\bsoftware\b|\bdeveloper\b|\bprogrammer\b|\bcoder\b|\bit\s+(?:professional|company|sector|industry|field)\b|\bi\.t\b`),
	newRule("Doctor", `\bdoctor\b|\bdr\b|physician|surgeon|\bmbbs\b|dentist|medical\s+practitioner`),
	newRule("Nurse", `\bnurs\w*`),
	newRule("Teacher", `teacher|lecturer|professor|\bteaching\b|\btutor\b|\beducat\w*`),
	newRule("Engineer", `\bengineer\w*|\bengg\b`),
	newRule("Pharmacist", `\bpharma\w*|\bchemist\b`),
	newRule("Lawyer", `lawyer|advocate|attorney|\blegal\b|\bjudge\b`),
	newRule("Chartered Accountant", `chartered\s+accountant|\bca\b`),
	newRule("Accountant", `accountant|\baccounts\b|auditor`),
	newRule("Banker", `\bbank\w*`),
	newRule("Clerk", `\bclerk\w*|\bclerical\b`),
	newRule("Defence Services", `\barmy\b|\bnavy\b|air\s*force|defen[cs]e|military|\bbsf\b|\bcrpf\b|soldier`),
	newRule("Government Employee", `government|\bgovt\b|\bgov\b|\bpsu\b|railway|public\s+sector|\bpolice\b`),
	newRule("Farmer", `\bfarm\w*|agricultur\w*|\bagri\b|cultivat\w*|landlord`),
	newRule("Businessperson", `business|self[\s-]*employed|entrepreneur|\bshop\w*|merchant|\btrader\b|\btrading\b|\bowner\b|proprietor`),
	newRule("Driver", `\bdriver\b`),
	newRule("Tailor", `\btailor\w*`),
	newRule("Chef", `\bchef\b|\bcook\b|catering`),
	newRule("Architect", `architect`),
	newRule("Journalist", `journalis\w*|reporter|\beditor\b|\bmedia\b`),
	newRule("Consultant", `consult\w*|advis[eo]r`),
	newRule("Real Estate", `real\s*estate|realtor|\bbuilder\b|construction`),
	newRule("Social Worker", `social\s*work\w*|\bngo\b|social\s+service`),
	newRule("Manager", `\bmanager\b|\bmanagement\b`),
	newRule("Private Employee", `private|\bpvt\b|employee|\bemployed\b|\bjob\b|\bservice\b|company|\bmnc\b|corporate|working`),
}

// NormalizeOccupation maps a parent's occupation to a canonical profession
// or one of the status sentinels. Any non-trivial answer that nothing
// recognises becomes DefaultOccupation.
func NormalizeOccupation(raw string, professions Vocabulary) string {
	if IsPlaceholder(raw) {
		return ""
	}
	text := collapseSpaces(fold(raw))

	if status, ok := occupationStatusRules.Apply(text); ok {
		return status
	}
	if m, ok := professions.Match(text); ok {
		return m.Canonical
	}
	if p, ok := occupationFallbackRules.Apply(text); ok {
		return p
	}
	if len(strings.ReplaceAll(simpleWords(text), " ", "")) > minOccupationTextSize {
		return DefaultOccupation
	}
	return ""
}
