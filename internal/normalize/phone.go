package normalize

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const (
	indiaPrefix      = "+91"
	phoneRegion      = "IN"
	minNationalDigit = 7
	maxPhoneDigits   = 15
)

var (
	rePhoneSplit     = regexp.MustCompile(`(?i)[,/;|\n]|\bor\b|\band\b`)
	rePhoneCandidate = regexp.MustCompile(`\+?\d[\d\-.()\s]{5,}\d`)
	reNonDigit       = regexp.MustCompile(`\D`)
)

// phoneMode selects how numbers without an explicit country code are read
type phoneMode int

const (
	// generalPhones assumes India only for recognisable Indian shapes
	generalPhones phoneMode = iota
	// referencePhones assumes India for every number without a country code
	referencePhones
)

// ExtractPhoneNumbers returns the distinct phone numbers found in free text,
// in order of appearance. 10-digit numbers are taken as Indian mobiles.
func ExtractPhoneNumbers(raw string) []string {
	return extractPhones(raw, generalPhones)
}

// ExtractReferencePhoneNumbers is like ExtractPhoneNumbers but prefixes +91
// onto every number that does not already carry a country code
func ExtractReferencePhoneNumbers(raw string) []string {
	return extractPhones(raw, referencePhones)
}

// PrimaryAndSecondary returns the first two numbers of a list, "" when missing
func PrimaryAndSecondary(numbers []string) (primary, secondary string) {
	if len(numbers) > 0 {
		primary = numbers[0]
	}
	if len(numbers) > 1 {
		secondary = numbers[1]
	}
	return primary, secondary
}

func extractPhones(raw string, mode phoneMode) []string {
	if IsPlaceholder(raw) {
		return nil
	}
	text := fold(raw)

	var out []string
	seen := make(map[string]bool)
	for _, segment := range rePhoneSplit.Split(text, -1) {
		for _, candidate := range rePhoneCandidate.FindAllString(segment, -1) {
			for _, number := range normalizeCandidate(candidate, mode) {
				if !seen[number] {
					seen[number] = true
					out = append(out, number)
				}
			}
		}
	}
	return out
}

// normalizeCandidate turns one matched digit run into zero or more numbers
func normalizeCandidate(candidate string, mode phoneMode) []string {
	candidate = strings.TrimSpace(candidate)
	digits := reNonDigit.ReplaceAllString(candidate, "")
	international := strings.HasPrefix(candidate, "+")
	if !international && strings.HasPrefix(digits, "00") {
		international = true
		digits = strings.TrimPrefix(digits, "00")
	}

	if international {
		if n, ok := formatInternational(digits); ok {
			return []string{n}
		}
		return nil
	}

	// several numbers typed without separators
	if len(digits) > 12 && len(digits)%10 == 0 {
		var out []string
		for i := 0; i < len(digits); i += 10 {
			if n, ok := formatNational(digits[i:i+10], mode); ok {
				out = append(out, n)
			}
		}
		return out
	}

	if n, ok := formatNational(digits, mode); ok {
		return []string{n}
	}
	return nil
}

func formatInternational(digits string) (string, bool) {
	if len(digits) > maxPhoneDigits {
		return "", false
	}
	num, err := phonenumbers.Parse("+"+digits, phoneRegion)
	if err != nil {
		if len(digits) < minNationalDigit+1 {
			return "", false
		}
		return "+" + digits, true
	}
	national := len(phonenumbers.GetNationalSignificantNumber(num))
	if national < minNationalDigit {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

func formatNational(digits string, mode phoneMode) (string, bool) {
	if mode == referencePhones {
		digits = strings.TrimLeft(digits, "0")
		if len(digits) < minNationalDigit || len(digits)+2 > maxPhoneDigits {
			return "", false
		}
		return indiaPrefix + digits, true
	}

	switch {
	case len(digits) == 10:
		return indiaPrefix + digits, true
	case len(digits) == 11 && digits[0] == '0':
		return indiaPrefix + digits[1:], true
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		return "+" + digits, true
	case len(digits) >= minNationalDigit && len(digits) <= maxPhoneDigits:
		return digits, true
	}
	return "", false
}
