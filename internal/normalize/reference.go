package normalize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Reference is a contact person given on a profile
type Reference struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

var (
	reReferenceNoise = regexp.MustCompile(`(?i)\b(?:whats\s*app\s+only|whats\s*app|mother|father|mom|dad|brother|sister|uncle|aunty|aunt|cousin|friend|relative|relation|grand\s*father|grand\s*mother|mama|mami|chacha|chachi|mausi|mobile|mob|contact|phone|ph|number|no|call|cell|tel|only)\b\.?`)
	reReferencePunct = regexp.MustCompile(`[^\p{L}\s.']`)
)

// ParseReference splits a reference answer into a contact name and the
// first phone number. The name is whatever text remains once numbers and
// relation or contact words are removed; it is "" when shorter than two letters.
func ParseReference(raw string) Reference {
	var ref Reference
	if IsPlaceholder(raw) {
		return ref
	}
	text := fold(raw)
	if phones := ExtractReferencePhoneNumbers(text); len(phones) > 0 {
		ref.Phone = phones[0]
	}

	name := rePhoneCandidate.ReplaceAllString(text, " ")
	name = reReferenceNoise.ReplaceAllString(name, " ")
	name = reReferencePunct.ReplaceAllString(name, " ")
	name = strings.Trim(collapseSpaces(name), " .'")
	if utf8.RuneCountInString(name) >= 2 {
		ref.Name = displayCase(name)
	}
	return ref
}
