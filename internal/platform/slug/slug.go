package slug

import (
	"regexp"
	"strings"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

var umlauts = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss",
)

// Make builds a filesystem-safe slug. German umlauts are transliterated
// so seeded text files keep readable names.
func Make(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = umlauts.Replace(s)
	s = nonAlphaNum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}
