package textfilter

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Player names are the only free-form text in the game and show up on
// every stats panel, so they get a family-friendly scrub on the way in.
var replacements = map[string]string{
	"fuck":    "fudge",
	"shit":    "shoot",
	"damn":    "dang",
	"hell":    "heck",
	"ass":     "butt",
	"asshole": "jerk",
	"bitch":   "jerk",
	"bastard": "jerk",
	"crap":    "crud",
	"dick":    "jerk",
	"prick":   "jerk",
}

var wordPatterns = compilePatterns()

func compilePatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(replacements))
	for word := range replacements {
		patterns[word] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	}
	return patterns
}

var spaceRun = regexp.MustCompile(`\s+`)

// SanitizeName normalizes a submitted player name: surrounding
// whitespace is dropped, inner whitespace runs collapse to single
// spaces, and profanity is swapped for family-friendly stand-ins with
// the original casing kept. Word boundaries protect names like
// Cassandra that merely contain a bad word.
func SanitizeName(name string) string {
	name = spaceRun.ReplaceAllString(strings.TrimSpace(name), " ")
	for word, re := range wordPatterns {
		replacement := replacements[word]
		name = re.ReplaceAllStringFunc(name, func(match string) string {
			return preserveCase(match, replacement)
		})
	}
	return name
}

// ContainsProfanity reports whether SanitizeName's replacement pass
// would alter the name.
func ContainsProfanity(name string) bool {
	for _, re := range wordPatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// preserveCase applies the case pattern of the original word to the
// replacement.
func preserveCase(original, replacement string) string {
	switch {
	case original == strings.ToUpper(original):
		return strings.ToUpper(replacement)
	case original == strings.ToLower(original):
		return replacement
	default:
		return cases.Title(language.English).String(replacement)
	}
}
