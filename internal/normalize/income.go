package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// IncomeUndisclosed is the bracket reported when no amount could be read
const IncomeUndisclosed = "Undisclosed"

// Fixed conversion rates to INR
const (
	usdToINR = 83.5
	audToINR = 55.0
	eurToINR = 90.0
	gbpToINR = 105.0

	rupeesPerLakh = 100000.0
)

// IncomeBracket is a half-open range [Min, Max) in lakh INR
type IncomeBracket struct {
	Min   float64
	Max   float64
	Label string
}

// IncomeBrackets lists the brackets in ascending order. The last one is unbounded.
var IncomeBrackets = []IncomeBracket{
	{0, 2, "₹0 to ₹2 Lakh"},
	{2, 4, "₹2 to ₹4 Lakh"},
	{4, 7, "₹4 to ₹7 Lakh"},
	{7, 10, "₹7 to ₹10 Lakh"},
	{10, 15, "₹10 to ₹15 Lakh"},
	{15, 25, "₹15 to ₹25 Lakh"},
	{25, 50, "₹25 to ₹50 Lakh"},
	{50, 100, "₹50 Lakh to ₹1 Crore"},
	{100, math.Inf(1), "₹1 Crore and above"},
}

const incomeUnits = `lakhs?|lacs?|lpa|l|crores?|cr|k|thousand|million|mn`

var (
	reIncomeNone     = regexp.MustCompile(`(?i)\b(?:unemployed|not\s+working|student|studying|homemaker|house\s*wife|no\s+income)\b`)
	reIncomeRupee    = regexp.MustCompile(`₹|\brs\b\.?|\binr\b`)
	reDigitComma     = regexp.MustCompile(`(\d),(\d)`)
	reIncomeRange    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(` + incomeUnits + `)?\s*(?:-|–|\bto\b)\s*(\d+(?:\.\d+)?)\s*(` + incomeUnits + `)?\b`)
	reIncomeNumber   = regexp.MustCompile(`\d+(?:\.\d+)?`)
	reIncomeUnit     = regexp.MustCompile(`^\s*(` + incomeUnits + `)\b`)
	reIncomeMonthly  = regexp.MustCompile(`per\s+month|\bp\.?\s?m\b|monthly|/\s*month|\ba\s+month\b`)
	reCurrencyUSD    = regexp.MustCompile(`\$|\busd\b|\bdollars?\b`)
	reCurrencyAUD    = regexp.MustCompile(`\baud\b|\ba\$`)
	reCurrencyEUR    = regexp.MustCompile(`€|\beur\b|\beuros?\b`)
	reCurrencyGBP    = regexp.MustCompile(`£|\bgbp\b|\bpounds?\b`)
	incomeLabelIndex = buildIncomeLabelIndex()
)

func buildIncomeLabelIndex() map[string]string {
	m := make(map[string]string, len(IncomeBrackets))
	for _, b := range IncomeBrackets {
		m[strings.ToLower(b.Label)] = b.Label
	}
	return m
}

// NormalizeIncomeToLakhsINR reads an annual income in lakh INR from free text.
// ok is false for placeholders, "no income" answers and text without a number.
func NormalizeIncomeToLakhsINR(raw string) (float64, bool) {
	if IsPlaceholder(raw) {
		return 0, false
	}
	s := strings.ToLower(collapseSpaces(fold(raw)))
	if reIncomeNone.MatchString(s) {
		return 0, false
	}
	v, ok := incomeLakhs(s)
	if !ok {
		return 0, false
	}
	return math.Round(v*100) / 100, true
}

func incomeLakhs(s string) (float64, bool) {
	currency := detectCurrency(s)
	s = reIncomeRupee.ReplaceAllString(s, " ")
	for reDigitComma.MatchString(s) {
		s = reDigitComma.ReplaceAllString(s, "$1$2")
	}

	// "10-12 LPA" and "50 lakh to 1 crore" use the mean of both ends
	if m := reIncomeRange.FindStringSubmatchIndex(s); m != nil {
		prefix, tail := s[:m[0]], s[m[1]:]
		lowUnit, highUnit := submatch(s, m, 2), submatch(s, m, 4)
		if lowUnit == "" {
			lowUnit = highUnit
		}
		low, okLow := incomeLakhs(prefix + submatch(s, m, 1) + " " + lowUnit + tail)
		high, okHigh := incomeLakhs(prefix + submatch(s, m, 3) + " " + highUnit + tail)
		if okLow && okHigh {
			return (low + high) / 2, true
		}
	}

	loc := reIncomeNumber.FindStringIndex(s)
	if loc == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(s[loc[0]:loc[1]], 64)
	if err != nil {
		return 0, false
	}

	unit := ""
	if u := reIncomeUnit.FindStringSubmatch(s[loc[1]:]); u != nil {
		unit = u[1]
	}

	var lakhs float64
	if currency != "" {
		amount := n * unitMultiplier(unit)
		lakhs = amount * currencyRate(currency) / rupeesPerLakh
	} else {
		switch {
		case unit == "":
			// bare rupee figures are large, bare lakh figures are small
			if n >= 1000 {
				lakhs = n / rupeesPerLakh
			} else {
				lakhs = n
			}
		default:
			lakhs = n * unitMultiplier(unit) / rupeesPerLakh
		}
	}

	if reIncomeMonthly.MatchString(numberContext(s, loc)) {
		lakhs *= 12
	}
	return lakhs, true
}

// numberContext returns s up to the next number after loc, so a "per month"
// that belongs to a later figure does not scale the one that was read
func numberContext(s string, loc []int) string {
	if next := reIncomeNumber.FindStringIndex(s[loc[1]:]); next != nil {
		return s[:loc[1]+next[0]]
	}
	return s
}

// unitMultiplier converts a magnitude word into a plain multiplier
func unitMultiplier(unit string) float64 {
	switch {
	case unit == "":
		return 1
	case unit == "k" || unit == "thousand":
		return 1e3
	case unit == "million" || unit == "mn":
		return 1e6
	case unit == "cr" || strings.HasPrefix(unit, "crore"):
		return 1e7
	default:
		// lakh, lac, lpa, l
		return 1e5
	}
}

func detectCurrency(s string) string {
	switch {
	case reCurrencyAUD.MatchString(s):
		return "aud"
	case reCurrencyUSD.MatchString(s):
		return "usd"
	case reCurrencyEUR.MatchString(s):
		return "eur"
	case reCurrencyGBP.MatchString(s):
		return "gbp"
	}
	return ""
}

func currencyRate(currency string) float64 {
	switch currency {
	case "usd":
		return usdToINR
	case "aud":
		return audToINR
	case "eur":
		return eurToINR
	case "gbp":
		return gbpToINR
	}
	return 1
}

// FindIncomeRange maps a lakh value onto its bracket label.
// Boundaries belong to the upper bracket: exactly 2.00 is "₹2 to ₹4 Lakh".
func FindIncomeRange(lakhs float64, ok bool) string {
	if !ok || math.IsNaN(lakhs) || lakhs < 0 {
		return IncomeUndisclosed
	}
	for _, b := range IncomeBrackets {
		if lakhs >= b.Min && lakhs < b.Max {
			return b.Label
		}
	}
	return IncomeUndisclosed
}

// NormalizeIncome returns the bracket label for a free-text income.
// Bracket labels map to themselves.
func NormalizeIncome(raw string) string {
	if label, ok := incomeLabelIndex[strings.ToLower(collapseSpaces(fold(raw)))]; ok {
		return label
	}
	return FindIncomeRange(NormalizeIncomeToLakhsINR(raw))
}

func submatch(s string, m []int, group int) string {
	if m[2*group] < 0 {
		return ""
	}
	return s[m[2*group]:m[2*group+1]]
}
