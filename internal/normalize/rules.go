package normalize

import "regexp"

// Rule is one entry of a priority-ordered decision list
type Rule struct {
	Pattern *regexp.Regexp
	Result  string
}

// Cascade evaluates rules in order; the first matching rule wins.
// The order is the priority, so callers must never sort a Cascade.
type Cascade []Rule

// newRule compiles a case-insensitive rule
func newRule(result, pattern string) Rule {
	return Rule{Pattern: regexp.MustCompile(`(?i)` + pattern), Result: result}
}

// Apply returns the result of the first rule whose pattern matches text
func (c Cascade) Apply(text string) (string, bool) {
	if i := c.Index(text); i >= 0 {
		return c[i].Result, true
	}
	return "", false
}

// Index returns the position of the first matching rule, or -1
func (c Cascade) Index(text string) int {
	for i, r := range c {
		if r.Pattern.MatchString(text) {
			return i
		}
	}
	return -1
}
