package import_pkg

import (
	"regexp"
	"strings"
)

// RawColumns lists the staging columns a survey export can fill, in insert order
var RawColumns = []string{
	"residing_address_raw",
	"education_raw",
	"income_raw",
	"father_occupation_raw",
	"mother_occupation_raw",
	"profession_raw",
	"phone_raw",
	"reference_1_raw",
	"reference_2_raw",
	"siblings_raw",
}

// headerAliases maps the question titles seen in survey exports to staging columns
var headerAliases = map[string]string{
	"profile id":                 keyAlias,
	"profile no":                 keyAlias,
	"id":                         keyAlias,
	"residing address":           "residing_address_raw",
	"current address":            "residing_address_raw",
	"address":                    "residing_address_raw",
	"education":                  "education_raw",
	"highest education":          "education_raw",
	"qualification":              "education_raw",
	"educational qualification":  "education_raw",
	"income":                     "income_raw",
	"annual income":              "income_raw",
	"salary":                     "income_raw",
	"father occupation":          "father_occupation_raw",
	"father s occupation":        "father_occupation_raw",
	"fathers occupation":         "father_occupation_raw",
	"mother occupation":          "mother_occupation_raw",
	"mother s occupation":        "mother_occupation_raw",
	"mothers occupation":         "mother_occupation_raw",
	"profession":                 "profession_raw",
	"occupation":                 "profession_raw",
	"profession designation":     "profession_raw",
	"phone":                      "phone_raw",
	"phone number":               "phone_raw",
	"mobile":                     "phone_raw",
	"mobile number":              "phone_raw",
	"contact number":             "phone_raw",
	"reference 1":                "reference_1_raw",
	"reference one":              "reference_1_raw",
	"reference 2":                "reference_2_raw",
	"reference two":              "reference_2_raw",
	"siblings":                   "siblings_raw",
	"sibling details":            "siblings_raw",
	"brothers and sisters":       "siblings_raw",
	"number of brothers sisters": "siblings_raw",
}

// keyAlias marks the profile id column before the configured key name is known
const keyAlias = "\x00key"

var reHeaderNoise = regexp.MustCompile(`[^a-z0-9]+`)

func headerKey(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.TrimSpace(reHeaderNoise.ReplaceAllString(strings.ToLower(h), " "))
}

// resolveHeader maps CSV column positions to staging columns.
// Unknown headers are skipped; the first occurrence of a column wins.
func resolveHeader(header []string, keyColumn string) (keyIndex int, columns map[string]int) {
	keyIndex = -1
	columns = make(map[string]int)
	for i, h := range header {
		k := headerKey(h)
		target, ok := headerAliases[k]
		if !ok {
			// exact staging names such as "education_raw"
			for _, c := range RawColumns {
				if k == headerKey(c) {
					target, ok = c, true
					break
				}
			}
		}
		if !ok && k == headerKey(keyColumn) {
			target, ok = keyAlias, true
		}
		if !ok {
			continue
		}

		if target == keyAlias {
			if keyIndex < 0 {
				keyIndex = i
			}
			continue
		}
		if _, seen := columns[target]; !seen {
			columns[target] = i
		}
	}
	return keyIndex, columns
}
