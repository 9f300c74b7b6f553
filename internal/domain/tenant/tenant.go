// Package tenant turns what a user types into an Okta tenant domain and the
// metadata URL for it, and computes the inline completion hint shown while the
// domain is still being typed.
package tenant

import "strings"

const (
	// DefaultScheme is prepended when the input carries no scheme.
	DefaultScheme = "https://"

	// WellKnownPath is the organization metadata endpoint on every tenant.
	WellKnownPath = "/.well-known/okta-organization"

	separator = "."
)

// knownSuffixes is ordered: the first entry is the default suggestion and the
// first prefix match wins, so reordering changes suggestions.
var knownSuffixes = []string{".okta.com", ".oktapreview.com", ".okta-emea.com"}

// KnownSuffixes returns a copy of the candidate domain suffixes in match order.
func KnownSuffixes() []string {
	out := make([]string, len(knownSuffixes))
	copy(out, knownSuffixes)
	return out
}

// NormalizeDomain builds the metadata URL for a tenant domain. Inputs without
// an http:// or https:// prefix get https:// prepended. The well-known path is
// appended as is.
func NormalizeDomain(input string) string {
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		input = DefaultScheme + input
	}
	return input + WellKnownPath
}

// AutoCompleteDomain returns the characters that would complete input to a
// known Okta domain, or "" when input is empty or nothing matches.
//
// Input without a dot is offered the default suffix. Otherwise the lower-cased
// text from the first dot onward is matched as a prefix against the known
// suffixes and the first match wins, even when a later one is longer.
func AutoCompleteDomain(input string) string {
	if input == "" {
		return ""
	}
	if !strings.Contains(input, separator) {
		return knownSuffixes[0]
	}

	lower := strings.ToLower(input)
	ending := lower[strings.Index(lower, separator):]

	for _, suffix := range knownSuffixes {
		if strings.HasPrefix(suffix, ending) {
			return suffix[len(ending):]
		}
	}
	return ""
}

// Complete returns input with its completion hint appended.
func Complete(input string) string {
	return input + AutoCompleteDomain(input)
}

// CleanInput strips spaces from typed or pasted text. Hostnames never contain
// them.
func CleanInput(raw string) string {
	return strings.ReplaceAll(raw, " ", "")
}
