// Package title normalizes media titles and ranks search candidates
// against an operator query.
package title

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// articles stripped from the front of a title for comparison. English and
// Spanish, since TMDB results come back localized.
var articles = []string{"the ", "a ", "an ", "el ", "la ", "los ", "las ", "un ", "una "}

// romanNumeralPattern matches II-IX when preceded by a space. Standalone "I"
// and "X" are excluded; they collide with real titles ("I Robot",
// "American History X"), and so is a numeral at the start of the string.
var romanNumeralPattern = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"ii": "2", "iii": "3", "iv": "4", "v": "5",
	"vi": "6", "vii": "7", "viii": "8", "ix": "9",
}

// Clean normalizes a title for matching purposes: lowercase, Roman numerals
// converted, accents removed, punctuation dropped, leading articles
// stripped, whitespace collapsed.
func Clean(title string) string {
	s := strings.ToLower(title)
	s = normalizeRomanNumerals(s)
	s = removeAccents(s)
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	s = strings.Join(strings.Fields(b.String()), " ")

	for _, art := range articles {
		if strings.HasPrefix(s, art) {
			s = strings.TrimPrefix(s, art)
			break
		}
	}
	return s
}

// normalizeRomanNumerals converts sequel numerals to digits so "Part II"
// and "Part 2" compare equal. Input is already lowercased.
func normalizeRomanNumerals(s string) string {
	return romanNumeralPattern.ReplaceAllStringFunc(s, func(match string) string {
		if arabic, ok := romanToArabic[strings.TrimSpace(match)]; ok {
			return " " + arabic
		}
		return match
	})
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
