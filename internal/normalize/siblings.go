package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Siblings holds one canonical label per sibling kind
type Siblings struct {
	Sisters  string `json:"sisters"`
	Brothers string `json:"brothers"`
}

const (
	kindSister  = "sister"
	kindBrother = "brother"
)

// SiblingLabels returns the seven labels for a kind ("Sister" or "Brother")
func SiblingLabels(kind string) []string {
	return []string{
		"No " + kind + "s",
		"1 " + kind + " - Married",
		"1 " + kind + " - Unmarried",
		"2 " + kind + "s - Married",
		"1 " + kind + " Married, 1 " + kind + " Unmarried",
		"2 " + kind + "s - Unmarried",
		"More than 2 " + kind + "s",
	}
}

var (
	reNoSiblings      = regexp.MustCompile(`\b(?:no\s+siblings?|only\s+(?:child|son|daughter)|single\s+child|nil\s+siblings?|zero\s+siblings?)\b`)
	reSiblingAbbrev   = regexp.MustCompile(`\b(sis|bro)(s)?\b`)
	reSiblingClauses  = regexp.MustCompile(`[,;.&]|\band\b`)
	reSiblingMention  = regexp.MustCompile(`(?:(\d+)\s*)?(?:[a-z]+\s+){0,2}?(sister|brother)(s)?\b`)
	reSiblingNumbered = regexp.MustCompile(`(\d+)\s+(?:is\s+|are\s+)?(un)?married\b`)
	reSiblingSingle   = regexp.MustCompile(`\b(?:unmarried|not\s+(?:yet\s+)?married|single|studying|student|yet\s+to\s+(?:be\s+)?marr(?:y|ied)|to\s+be\s+married|bachelor)\b`)
	reSiblingMarried  = regexp.MustCompile(`\b(?:married|wed)\b`)
	reSiblingTrailing = regexp.MustCompile(`^\s*([:=\-]\s*)?(\d+)\b`)
)

var siblingNumberWords = map[string]string{
	"no":    "0",
	"nil":   "0",
	"zero":  "0",
	"one":   "1",
	"a":     "1",
	"an":    "1",
	"two":   "2",
	"three": "3",
	"four":  "4",
	"five":  "5",
	"six":   "6",
}

var reSiblingNumberWord = regexp.MustCompile(`\b(?:no|nil|zero|one|an?|two|three|four|five|six)\b`)

// siblingOverrides pin irregular phrasings seen in real answers.
// Keys are compared after simpleWords.
var siblingOverrides = map[string]Siblings{
	"one elder sister married":      {"1 Sister - Married", "No Brothers"},
	"one younger sister unmarried":  {"1 Sister - Unmarried", "No Brothers"},
	"one elder brother married":     {"No Sisters", "1 Brother - Married"},
	"one younger brother unmarried": {"No Sisters", "1 Brother - Unmarried"},
	"elder sister married":          {"1 Sister - Married", "No Brothers"},
	"elder brother married":         {"No Sisters", "1 Brother - Married"},
	"younger sister studying":       {"1 Sister - Unmarried", "No Brothers"},
	"younger brother studying":      {"No Sisters", "1 Brother - Unmarried"},
	"one sister one brother":        {"1 Sister - Unmarried", "1 Brother - Unmarried"},
	"one brother one sister":        {"1 Sister - Unmarried", "1 Brother - Unmarried"},
	"twin sister":                   {"1 Sister - Unmarried", "No Brothers"},
	"twin brother":                  {"No Sisters", "1 Brother - Unmarried"},
	"2 sisters both married":        {"2 Sisters - Married", "No Brothers"},
	"2 brothers both married":       {"No Sisters", "2 Brothers - Married"},
	"no brothers no sisters":        {"No Sisters", "No Brothers"},
	"no sisters no brothers":        {"No Sisters", "No Brothers"},
}

type siblingTally struct {
	count            int
	married          int
	unmarried        int
	marriedKeyword   bool
	unmarriedKeyword bool
}

// ParseSiblingDetails maps a free-text sibling description onto one label
// for sisters and one for brothers. Counts with an unclear marital split
// lean to married when "married" appears and to unmarried otherwise.
func ParseSiblingDetails(raw string) Siblings {
	if IsPlaceholder(raw) {
		return Siblings{}
	}
	s := strings.ToLower(collapseSpaces(fold(raw)))

	if reNoSiblings.MatchString(s) {
		return Siblings{Sisters: "No Sisters", Brothers: "No Brothers"}
	}
	if o, ok := siblingOverrides[simpleWords(s)]; ok {
		return o
	}

	s = reSiblingAbbrev.ReplaceAllStringFunc(s, func(m string) string {
		if strings.HasPrefix(m, "sis") {
			return strings.Replace(m, "sis", "sister", 1)
		}
		return strings.Replace(m, "bro", "brother", 1)
	})
	s = reSiblingNumberWord.ReplaceAllStringFunc(s, func(w string) string {
		return siblingNumberWords[w]
	})

	tallies := map[string]*siblingTally{
		kindSister:  {},
		kindBrother: {},
	}
	lastKind, lastCount := "", 0
	for _, clause := range reSiblingClauses.Split(s, -1) {
		lastKind, lastCount = tallyClause(clause, tallies, lastKind, lastCount)
	}

	return Siblings{
		Sisters:  siblingLabel("Sister", tallies[kindSister]),
		Brothers: siblingLabel("Brother", tallies[kindBrother]),
	}
}

// tallyClause counts the mentions in one clause. A clause without a
// mention ("2 sisters, 1 married") qualifies the kind mentioned last.
func tallyClause(clause string, tallies map[string]*siblingTally, lastKind string, lastCount int) (string, int) {
	mentions := reSiblingMention.FindAllStringSubmatchIndex(clause, -1)
	if len(mentions) == 0 {
		if lastKind != "" {
			qualify(clause, tallies[lastKind], lastCount)
		}
		return lastKind, lastCount
	}

	claimed := -1
	for i, m := range mentions {
		kind := clause[m[4]:m[5]]
		n, end := mentionCount(clause, mentions, i, claimed)
		if end > 0 {
			claimed = end
		}
		tallies[kind].count += n

		qEnd := len(clause)
		if i+1 < len(mentions) {
			qEnd = mentions[i+1][0]
		}
		qualify(clause[m[0]:qEnd], tallies[kind], n)
		lastKind, lastCount = kind, n
	}
	return lastKind, lastCount
}

// maxTrailingCount keeps ages ("sister 24 yrs") from being read as counts
const maxTrailingCount = 9

// mentionCount reads the count of mentions[i]. A leading count ("2 sisters")
// wins unless the previous mention already took that number as its trailing
// count. Without one, a trailing count ("Sisters: 0", "brothers - 1") is used.
// A bare number after the noun belongs to the next mention when it starts
// there ("sisters 1 brother"). Otherwise a plural noun counts as 2.
// end is the offset of a claimed trailing number, or -1.
func mentionCount(clause string, mentions [][]int, i, claimed int) (n, end int) {
	m := mentions[i]
	if m[2] >= 0 && m[2] != claimed {
		n, _ = strconv.Atoi(clause[m[2]:m[3]])
		return n, -1
	}

	if t := reSiblingTrailing.FindStringSubmatchIndex(clause[m[1]:]); t != nil {
		start := m[1] + t[4]
		separated := t[2] >= 0
		startsNext := i+1 < len(mentions) && mentions[i+1][2] == start
		if separated || !startsNext {
			if n, _ = strconv.Atoi(clause[start : m[1]+t[5]]); n <= maxTrailingCount {
				return n, start
			}
		}
	}

	if m[6] >= 0 {
		return 2, -1
	}
	return 1, -1
}

// qualify records married and unmarried qualifiers for n siblings of one kind
func qualify(text string, t *siblingTally, n int) {
	if numbered := reSiblingNumbered.FindAllStringSubmatch(text, -1); len(numbered) > 0 {
		for _, q := range numbered {
			k, _ := strconv.Atoi(q[1])
			if q[2] != "" {
				t.unmarried += k
				t.unmarriedKeyword = true
			} else {
				t.married += k
				t.marriedKeyword = true
			}
		}
		return
	}

	single := reSiblingSingle.MatchString(text)
	married := reSiblingMarried.MatchString(reSiblingSingle.ReplaceAllString(text, " "))
	switch {
	case single && married:
		t.unmarriedKeyword = true
		t.marriedKeyword = true
	case married:
		t.married += n
		t.marriedKeyword = true
	case single:
		t.unmarried += n
		t.unmarriedKeyword = true
	}
}

func siblingLabel(kind string, t *siblingTally) string {
	labels := SiblingLabels(kind)
	switch {
	case t.count <= 0:
		return labels[0]
	case t.count > 2:
		return labels[6]
	}

	// exact split
	if t.married+t.unmarried == t.count {
		switch {
		case t.count == 1 && t.married == 1:
			return labels[1]
		case t.count == 1:
			return labels[2]
		case t.married == 2:
			return labels[3]
		case t.married == 1:
			return labels[4]
		default:
			return labels[5]
		}
	}

	// mixed keywords
	if t.count == 2 && t.marriedKeyword && t.unmarriedKeyword {
		return labels[4]
	}

	// married alone
	if t.marriedKeyword || t.married > 0 {
		if t.count == 1 {
			return labels[1]
		}
		return labels[3]
	}

	if t.count == 1 {
		return labels[2]
	}
	return labels[5]
}

// String renders the pair for logs
func (s Siblings) String() string {
	return fmt.Sprintf("sisters=%q brothers=%q", s.Sisters, s.Brothers)
}
