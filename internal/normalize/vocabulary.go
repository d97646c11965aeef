package normalize

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Term is a vocabulary entry. Alias is the text to look for, Canonical the
// value to report. CaseSensitive aliases (abbreviations like "KA" or "US")
// only match when typed exactly, so they do not fire on ordinary words.
type Term struct {
	Alias         string
	Canonical     string
	CaseSensitive bool
}

type vocabEntry struct {
	Term
	re *regexp.Regexp
}

// Vocabulary is an ordered list of known terms matched longest-first.
// The zero value is an empty vocabulary that never matches.
type Vocabulary struct {
	entries []vocabEntry
}

// VocabularyMatch describes where a term was found
type VocabularyMatch struct {
	Canonical string
	Alias     string
	Start     int
	End       int
}

// NewVocabulary builds a vocabulary where every name is its own canonical form
func NewVocabulary(names []string) Vocabulary {
	terms := make([]Term, 0, len(names))
	for _, n := range names {
		terms = append(terms, Term{Alias: n, Canonical: n})
	}
	return NewAliasVocabulary(terms)
}

// NewAliasVocabulary builds a vocabulary from alias terms.
// Blank aliases are dropped and duplicate aliases keep their first canonical value.
func NewAliasVocabulary(terms []Term) Vocabulary {
	seen := make(map[string]bool, len(terms))
	entries := make([]vocabEntry, 0, len(terms))
	for _, t := range terms {
		t.Alias = collapseSpaces(t.Alias)
		t.Canonical = collapseSpaces(t.Canonical)
		if t.Alias == "" || t.Canonical == "" {
			continue
		}
		key := strings.ToLower(t.Alias)
		if t.CaseSensitive {
			key = "cs:" + t.Alias
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, vocabEntry{Term: t, re: wordPattern(t.Alias, t.CaseSensitive)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(entries[i].Alias), utf8.RuneCountInString(entries[j].Alias)
		if li != lj {
			return li > lj
		}
		return strings.ToLower(entries[i].Alias) < strings.ToLower(entries[j].Alias)
	})

	return Vocabulary{entries: entries}
}

// Len returns the number of distinct aliases
func (v Vocabulary) Len() int {
	return len(v.entries)
}

// Aliases returns the aliases in matching order
func (v Vocabulary) Aliases() []string {
	out := make([]string, len(v.entries))
	for i, e := range v.entries {
		out[i] = e.Alias
	}
	return out
}

// Match finds the first (longest) vocabulary term that occurs in text as a whole word
func (v Vocabulary) Match(text string) (VocabularyMatch, bool) {
	for _, e := range v.entries {
		if loc := e.re.FindStringIndex(text); loc != nil {
			return VocabularyMatch{
				Canonical: e.Canonical,
				Alias:     e.Alias,
				Start:     loc[0],
				End:       loc[1],
			}, true
		}
	}
	return VocabularyMatch{}, false
}

// Contains reports whether name is a canonical value of the vocabulary
func (v Vocabulary) Contains(name string) bool {
	for _, e := range v.entries {
		if strings.EqualFold(e.Canonical, name) {
			return true
		}
	}
	return false
}

// cut removes the matched span from text, leaving a separator in its place
func (m VocabularyMatch) cut(text string) string {
	return text[:m.Start] + " , " + text[m.End:]
}
