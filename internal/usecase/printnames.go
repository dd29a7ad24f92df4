package usecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentinel runes used to mask separators inside protected spans so the
// slash/comma splitting below cannot break them apart.
const (
	maskedComma = '\x01'
	maskedSlash = '\x02'
)

// Package-level compiled regex patterns for performance
var (
	// Straight apostrophes are left alone: possessives ("Santa's") are far
	// more common in design text than single-quoted names.
	quotedSpanRegex = regexp.MustCompile(`"[^"]*"|“[^”]*”`)

	// An "X on Y" phrasing: the object of "on" may itself contain slashes
	// ("Santa on red/green plaid") that must not act as segment boundaries.
	onPhraseRegex = regexp.MustCompile(`(?i)\bon\s+[^,/]+(?:/[^,/]+)+`)

	reversibleRegex = regexp.MustCompile(`(?i)\breversible\b|\bboth\s+sides\b`)
)

// SegmentPrintNames splits a design listing into individual print names.
//
// Slashes are the primary separators: each slash-delimited segment is one
// candidate group. Commas inside a segment split it further, unless the
// surrounding description mentions "reversible" or "both sides", in which
// case the whole segment (commas included) is one design name covering two
// physical sides. Quoted substrings and "X on Y" phrasings are never split,
// even by commas or slashes inside them.
//
// Returns nil when the design text is empty; the caller decides whether that
// means "none stated" or "explicitly none".
func SegmentPrintNames(designText, description string) []string {
	masked := maskProtectedSpans(designText)
	if strings.TrimSpace(masked) == "" {
		return nil
	}

	reversible := reversibleRegex.MatchString(description)

	var names []string
	for _, segment := range strings.Split(masked, "/") {
		if reversible {
			appendName(&names, segment)
			continue
		}
		for _, part := range strings.Split(segment, ",") {
			appendName(&names, part)
		}
	}

	return names
}

// AssignPrintName returns the design name for the roll at the given 0-based
// index, cycling through names by position. Nil when no names exist.
func AssignPrintName(index int, names []string) *string {
	if index < 0 || len(names) == 0 {
		return nil
	}
	name := names[index%len(names)]
	return &name
}

// maskProtectedSpans replaces commas and slashes inside quoted substrings and
// "X on Y" phrasings with sentinel runes.
func maskProtectedSpans(s string) string {
	s = quotedSpanRegex.ReplaceAllStringFunc(s, maskSeparators)
	s = onPhraseRegex.ReplaceAllStringFunc(s, maskSeparators)
	return s
}

func maskSeparators(span string) string {
	span = strings.ReplaceAll(span, ",", string(maskedComma))
	return strings.ReplaceAll(span, "/", string(maskedSlash))
}

// appendName unmasks, trims and capitalizes one candidate name, dropping
// empty results.
func appendName(names *[]string, raw string) {
	name := strings.ReplaceAll(raw, string(maskedComma), ",")
	name = strings.ReplaceAll(name, string(maskedSlash), "/")
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	*names = append(*names, capitalizeFirst(name))
}

// capitalizeFirst upper-cases the first letter of a name so split fragments
// like "stripes" read as titles.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
