package normalize

import (
	"regexp"
	"strings"

	"github.com/profile-normalizer/internal/debug"
)

// Address holds the parsed components of a residing address.
// Every field is empty when it could not be determined.
type Address struct {
	HouseNo   string `json:"house_no"`
	Street    string `json:"street"`
	Area      string `json:"area"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Pin       string `json:"pin"`
	Formatted string `json:"formatted"`
}

// IsEmpty reports whether no component was determined
func (a Address) IsEmpty() bool {
	return a.HouseNo == "" && a.Street == "" && a.Area == "" && a.City == "" &&
		a.State == "" && a.Country == "" && a.Pin == ""
}

func (a Address) format() string {
	parts := make([]string, 0, 7)
	for _, f := range []string{a.HouseNo, a.Street, a.Area, a.City, a.State, a.Country, a.Pin} {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, ", ")
}

var (
	reAddressWithheld = regexp.MustCompile(`(?i)\b(?:disclos\w*|confidential|on\s+request|call|message|e-?mail|whatsapp)\b`)
	reAddressPrivate  = regexp.MustCompile(`(?i)^\W*private\W*$|\b(?:kept|keep|is|it'?s)\s+private\b`)
	rePin6            = regexp.MustCompile(`\b\d{6}\b`)
	rePinSpaced       = regexp.MustCompile(`\b(\d{3})\s(\d{3})\b`)
	reZip             = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)
	reHouseMarker     = regexp.MustCompile(`(?i)(?:#\s*|\b(?:h\.?\s*no|house\s*no|door\s*no|d\.?\s*no|flat\s*no|plot\s*no|no)\.?\s*[:\-]?\s*)(\d+[a-z]?(?:\s*[/\-]\s*\d+[a-z]?)*)`)
	reLeadingNumber   = regexp.MustCompile(`^\s*(\d+[A-Za-z]?(?:[/\-]\d+[A-Za-z]?)*)[\s,]+\D`)
)

// addressScan carries the parsed fields and the part of the input no stage has claimed yet
type addressScan struct {
	rest  string
	addr  Address
	debug bool
}

// ParseAddress splits a free-text Indian address into its components.
// It is a best-effort heuristic: stages that find nothing leave their field empty.
func ParseAddress(raw string) Address {
	return ParseAddressDebug(false, raw)
}

// ParseAddressDebug parses an address with optional debug output for every stage
func ParseAddressDebug(localDebug bool, raw string) Address {
	debug.DebugHeader(localDebug)
	defer debug.DebugFooter(localDebug)

	s := collapseSpaces(fold(raw))
	debug.DebugOutput(localDebug, "Input: %s", s)

	if IsPlaceholder(s) || reAddressWithheld.MatchString(s) || reAddressPrivate.MatchString(s) {
		debug.DebugOutput(localDebug, "Withheld address, no parse")
		return Address{}
	}

	scan := &addressScan{rest: s, debug: localDebug}
	scan.takePin()
	scan.takeState()
	scan.takeCountry()
	scan.takeZip()
	scan.takeCity()
	scan.takeHouseNo()
	scan.takeRemainder()
	scan.fillFromPostal(s)

	a := scan.addr
	if a.Country == "" && !a.IsEmpty() {
		a.Country = "India"
	}
	a.Formatted = a.format()
	debug.DebugOutput(localDebug, "Formatted: %s", a.Formatted)
	return a
}

// claim removes text[start:end] from the remaining span
func (s *addressScan) claim(start, end int) {
	s.rest = s.rest[:start] + " , " + s.rest[end:]
}

func (s *addressScan) takePin() {
	if loc := rePin6.FindStringIndex(s.rest); loc != nil {
		s.addr.Pin = s.rest[loc[0]:loc[1]]
		s.claim(loc[0], loc[1])
	} else if m := rePinSpaced.FindStringSubmatchIndex(s.rest); m != nil {
		s.addr.Pin = s.rest[m[2]:m[3]] + s.rest[m[4]:m[5]]
		s.claim(m[0], m[1])
	}
	debug.DebugOutput(s.debug, "PIN: %q rest: %s", s.addr.Pin, s.rest)
}

func (s *addressScan) takeState() {
	m, ok := stateVocabulary.Match(s.rest)
	if !ok {
		return
	}
	s.addr.State = m.Canonical
	if !cityStateAliases[m.Alias] {
		s.rest = m.cut(s.rest)
	}
	debug.DebugOutput(s.debug, "State: %q (alias %q) rest: %s", s.addr.State, m.Alias, s.rest)
}

func (s *addressScan) takeCountry() {
	m, ok := countryVocabulary.Match(s.rest)
	if !ok {
		return
	}
	s.addr.Country = m.Canonical
	s.rest = m.cut(s.rest)
	debug.DebugOutput(s.debug, "Country: %q rest: %s", s.addr.Country, s.rest)
}

// takeZip runs after country detection so a US address can yield a 5-digit code
func (s *addressScan) takeZip() {
	if s.addr.Pin != "" || s.addr.Country != "USA" {
		return
	}
	if loc := reZip.FindStringIndex(s.rest); loc != nil {
		s.addr.Pin = s.rest[loc[0]:loc[1]]
		s.claim(loc[0], loc[1])
		debug.DebugOutput(s.debug, "ZIP: %q", s.addr.Pin)
	}
}

func (s *addressScan) takeCity() {
	m, ok := cityVocabulary.Match(s.rest)
	if !ok {
		return
	}
	s.addr.City = m.Canonical
	s.rest = m.cut(s.rest)
	if s.addr.State == "" && (s.addr.Country == "" || s.addr.Country == "India") {
		s.addr.State = cityHomeState[m.Canonical]
	}
	debug.DebugOutput(s.debug, "City: %q state: %q rest: %s", s.addr.City, s.addr.State, s.rest)
}

func (s *addressScan) takeHouseNo() {
	if m := reHouseMarker.FindStringSubmatchIndex(s.rest); m != nil {
		s.addr.HouseNo = strings.ReplaceAll(s.rest[m[2]:m[3]], " ", "")
		s.claim(m[0], m[1])
	} else if m := reLeadingNumber.FindStringSubmatchIndex(s.rest); m != nil {
		s.addr.HouseNo = s.rest[m[2]:m[3]]
		s.claim(m[2], m[3])
	}
	debug.DebugOutput(s.debug, "House no: %q rest: %s", s.addr.HouseNo, s.rest)
}

func (s *addressScan) takeRemainder() {
	rest := cleanSeparators(s.rest)
	s.rest = ""
	if rest == "" {
		return
	}
	rest = displayCase(rest)
	if hasLocalitySuffix(rest) {
		s.addr.Area = rest
	} else {
		s.addr.Street = rest
	}
	debug.DebugOutput(s.debug, "Street: %q area: %q", s.addr.Street, s.addr.Area)
}

// fillFromPostal lets libpostal fill fields the heuristic stages missed.
// It never overrides a value that was already determined.
func (s *addressScan) fillFromPostal(text string) {
	hint := postalHint(text)
	if s.addr.City == "" && hint.City != "" {
		s.addr.City = hint.City
	}
	if s.addr.State == "" && hint.State != "" {
		s.addr.State = hint.State
	}
	if s.addr.Pin == "" && hint.Pin != "" {
		s.addr.Pin = hint.Pin
	}
}

func hasLocalitySuffix(s string) bool {
	lower := strings.ToLower(s)
	for _, suffix := range localitySuffixes {
		if strings.Contains(lower, suffix) {
			return true
		}
	}
	return false
}

// postalFields are the components libpostal may contribute
type postalFields struct {
	City  string
	State string
	Pin   string
}
