package klvutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nonWordAtWordBoundary = regexp.MustCompile(`(\W)([a-zA-Z][a-z])`)
var startingDigits = regexp.MustCompile(`^([\d]+)(.*)`)

// NormalizeName converts a tag or enumeration name from a MISB document into
// an identifier, e.g. "Platform Heading Angle" becomes "PlatformHeadingAngle"
// and "Sensor Latitude (deg)" becomes "SensorLatitudeDeg".
func NormalizeName(s string) string {
	// 1. Replace round brackets with spaces
	s = strings.Map(func(r rune) rune {
		switch r {
		case '(', ')':
			return ' '
		}
		return r
	}, s)

	// 2. If a non-word char is followed by a letter then a lower case letter,
	// replace the non-word char with space
	s = nonWordAtWordBoundary.ReplaceAllString(s, " $2")

	// 3. Replace remaining non-word chars (except whitespace) with underscore.
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		case r == ' ':
		default:
			return '_'
		}
		return r
	}, s)

	words := strings.Fields(s)

	// a Caser is stateful, so each call gets its own
	title := cases.Title(language.Und, cases.NoLower)
	for i, w := range words {
		if i == 0 {
			// 4. If the first word begins with a digit, move all digits at
			// start of first word to end of first word
			w = startingDigits.ReplaceAllString(w, `$2$1`)
		}

		// 5. Capitalize the first letter of each word
		words[i] = title.String(w)
	}

	// 6. Concatenate all words with spaces removed
	return strings.Join(words, "")
}
