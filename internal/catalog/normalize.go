package catalog

import (
	"regexp"
	"strings"
)

// Leading filler phrases stripped from a product query before search.
// Longer variants come before their prefixes so "price of" wins over
// "price".
var fillers = []string{
	"tell me about",
	"tell me the",
	"tell me",
	"give me",
	"show me",
	"show",
	"details of",
	"details",
	"specs of",
	"specs",
	"specifications of",
	"specification of",
	"price of",
	"price",
	"battery of",
	"battery",
	"ram of",
	"ram",
	"storage of",
	"storage",
	"rating of",
	"rating",
	"what is",
	"what's",
	"what are",
	"what are the",
	"what are the specs of",
	"information about",
	"about",
	"of",
	"the",
	"please",
	"can you",
	"could you",
	"i want",
	"i need",
	"i'd like",
	"give details about",
	"give me details about",
	"show details of",
	"tell details of",
	"details for",
	"info about",
	"information on",
	"details on",
	"which is",
	"which are",
	"compare",
	"compare with",
	"compare to",
	"vs",
	"vs.",
	"and",
	"or",
}

var (
	fillerPattern = compileFillerPattern()
	punctPattern  = regexp.MustCompile(`[^\w\s-]`)
	spacesPattern = regexp.MustCompile(`\s+`)
)

func compileFillerPattern() *regexp.Regexp {
	quoted := make([]string, len(fillers))
	for i, f := range fillers {
		quoted[i] = regexp.QuoteMeta(f)
	}
	return regexp.MustCompile(`(?i)^(` + strings.Join(quoted, "|") + `)\s+`)
}

// CleanProductPhrase lowercases and trims a raw query, strips leading
// filler phrases until none match, then drops residual punctuation and
// collapses whitespace. Every strip either shrinks the string or the
// loop stops, so it always terminates.
func CleanProductPhrase(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	for {
		next := strings.TrimSpace(fillerPattern.ReplaceAllString(s, ""))
		if next == s {
			break
		}
		s = next
	}

	s = punctPattern.ReplaceAllString(s, " ")
	s = spacesPattern.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

// Meaningful reports whether a cleaned query is worth searching for:
// at least two non-whitespace characters.
func Meaningful(q string) bool {
	return len(strings.Join(strings.Fields(q), "")) >= 2
}
