//go:build libpostal

package normalize

import (
	postal "github.com/openvenues/gopostal/parser"
)

// postalHint asks libpostal for city, state and postcode labels.
// Needs the libpostal C library and its data files at build and run time.
func postalHint(text string) postalFields {
	var f postalFields
	for _, comp := range postal.ParseAddress(text) {
		switch comp.Label {
		case "city":
			f.City = displayCase(comp.Value)
		case "state":
			if m, ok := stateVocabulary.Match(comp.Value); ok {
				f.State = m.Canonical
			} else {
				f.State = displayCase(comp.Value)
			}
		case "postcode":
			if pin := rePin6.FindString(comp.Value); pin != "" {
				f.Pin = pin
			}
		}
	}
	return f
}
