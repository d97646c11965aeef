// Package normalize turns free-text profile answers into canonical values.
//
// Every function in this package is pure and deterministic. An empty string
// result means the value could not be determined; no canonical value is ever
// the empty string, so callers can store "" as NULL. Functions never return
// errors for malformed input, they degrade to the empty result instead.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// placeholderValues are raw answers that mean "intentionally withheld"
var placeholderValues = map[string]bool{
	"":                    true,
	"undisclosed":         true,
	"na":                  true,
	"n/a":                 true,
	"n.a":                 true,
	"n.a.":                true,
	"n a":                 true,
	"nil":                 true,
	"none":                true,
	"null":                true,
	"-":                   true,
	"--":                  true,
	".":                   true,
	"not applicable":      true,
	"not disclosed":       true,
	"not available":       true,
	"will disclose later": true,
}

var placeholderPrefixes = []string{
	"will be disclosed",
	"will disclose",
	"to be disclosed",
	"disclosed to",
}

var (
	reSpaces     = regexp.MustCompile(`\s+`)
	reCommaRuns  = regexp.MustCompile(`\s*(,\s*)+`)
	reNonWordRun = regexp.MustCompile(`[^\p{L}\p{N}]+`)
)

var titleCaser = cases.Title(language.English)

// placeholderTrim is stripped from both ends before the lookup, so "-NA-" and "N/A." still match
const placeholderTrim = " .,;:-_/\\|*'\"()[]!?"

// IsPlaceholder reports whether a raw answer is a known "withheld" placeholder.
// Surrounding punctuation and the punctuation between words are ignored.
func IsPlaceholder(raw string) bool {
	s := strings.Trim(strings.ToLower(collapseSpaces(fold(raw))), placeholderTrim)
	words := simpleWords(s)
	if placeholderValues[s] || placeholderValues[words] {
		return true
	}
	for _, prefix := range placeholderPrefixes {
		if strings.HasPrefix(words, prefix) {
			return true
		}
	}
	return false
}

// fold applies NFKC so full-width digits and compatibility forms match ASCII patterns
func fold(s string) string {
	return norm.NFKC.String(s)
}

// collapseSpaces trims and squeezes internal whitespace
func collapseSpaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// cleanSeparators squeezes comma runs and trims stray separators at both ends
func cleanSeparators(s string) string {
	s = reCommaRuns.ReplaceAllString(s, ", ")
	s = collapseSpaces(s)
	return strings.Trim(s, " ,;:-/.|")
}

// simpleWords lower-cases and keeps only letters and digits separated by single spaces
func simpleWords(s string) string {
	return strings.TrimSpace(reNonWordRun.ReplaceAllString(strings.ToLower(fold(s)), " "))
}

// displayCase title-cases text that was typed entirely in one case.
// Mixed case is kept since it usually carries intent ("HSR Layout").
func displayCase(s string) string {
	if s == "" {
		return s
	}
	if s == strings.ToLower(s) || s == strings.ToUpper(s) {
		return titleCaser.String(strings.ToLower(s))
	}
	return s
}

// wordPattern builds a whole-word regexp for a literal phrase.
// Internal spaces match any run of whitespace. A boundary is only required
// next to a word character, so "Asst." and "Manager (Operations)" still match.
func wordPattern(phrase string, caseSensitive bool) *regexp.Regexp {
	parts := strings.Fields(phrase)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	body := strings.Join(parts, `\s+`)
	if isWordByte(phrase, 0) {
		body = `\b` + body
	}
	if isWordByte(phrase, len(phrase)-1) {
		body += `\b`
	}
	if !caseSensitive {
		body = `(?i)` + body
	}
	return regexp.MustCompile(body)
}

// isWordByte reports whether s[i] is an ASCII word character, the class \b looks at
func isWordByte(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	switch c := s[i]; {
	case c == '_', '0' <= c && c <= '9', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return true
	}
	return false
}
