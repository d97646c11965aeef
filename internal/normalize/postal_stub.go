//go:build !libpostal

package normalize

// postalHint is a no-op unless built with -tags libpostal
func postalHint(string) postalFields {
	return postalFields{}
}
