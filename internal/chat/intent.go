package chat

import (
	"regexp"
	"strings"
)

var greetings = []string{
	"hi", "hello", "hey", "good morning", "good afternoon", "good evening",
}

// Product names containing "and"/"vs" resolve by the first non-greedy
// match; that ambiguity is inherited from the pattern itself and is not
// special-cased.
var compareRe = regexp.MustCompile(`(?i)compare\s+(.+?)\s+(and|vs|v)\s+(.+)`)

var queryRe = regexp.MustCompile(
	`(?i)(tell me about|about|details|specs|price|battery|ram|storage|rating|what is)\s+(.+)`)

// classifiers are evaluated in priority order; the first match wins.
// The ordering is part of the contract, not an implementation detail.
var classifiers = []func(string) (Intent, bool){
	matchGreeting,
	matchCompare,
	matchProductQuery,
}

// Classify maps a raw user message onto exactly one intent. Total and
// deterministic: Fallback catches everything no pattern claimed.
func Classify(message string) Intent {
	for _, match := range classifiers {
		if intent, ok := match(message); ok {
			return intent
		}
	}
	return Intent{Kind: IntentFallback}
}

func matchGreeting(message string) (Intent, bool) {
	lower := strings.ToLower(strings.TrimSpace(message))
	for _, g := range greetings {
		if lower == g || strings.HasPrefix(lower, g+" ") {
			return Intent{Kind: IntentGreeting}, true
		}
	}
	return Intent{}, false
}

func matchCompare(message string) (Intent, bool) {
	m := compareRe.FindStringSubmatch(message)
	if m == nil {
		return Intent{}, false
	}

	left := strings.TrimSpace(m[1])
	right := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[3]), "?!."))

	return Intent{Kind: IntentCompare, Left: left, Right: right}, true
}

func matchProductQuery(message string) (Intent, bool) {
	m := queryRe.FindStringSubmatch(message)
	if m == nil {
		return Intent{}, false
	}
	return Intent{Kind: IntentProductQuery, Query: strings.TrimSpace(m[2])}, true
}
