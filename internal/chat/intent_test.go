package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyGreeting(t *testing.T) {
	for _, msg := range []string{
		"hi",
		"Hello",
		"hey there",
		"Good morning everyone",
		"  hello  ",
	} {
		assert.Equal(t, IntentGreeting, Classify(msg).Kind, "message %q", msg)
	}
}

func TestClassifyGreetingNeedsWordBoundary(t *testing.T) {
	// "hello!" is not "hello" and not "hello " — no greeting.
	assert.NotEqual(t, IntentGreeting, Classify("hello!").Kind)
	assert.NotEqual(t, IntentGreeting, Classify("highlight this").Kind)
}

func TestClassifyCompare(t *testing.T) {
	intent := Classify("Compare Phone A and Phone B")
	assert.Equal(t, IntentCompare, intent.Kind)
	assert.Equal(t, "Phone A", intent.Left)
	assert.Equal(t, "Phone B", intent.Right)
}

func TestClassifyCompareSeparatorsAndPunctuation(t *testing.T) {
	intent := Classify("compare Aurora Laptop 14 vs Aurora Laptop 16 Pro?")
	assert.Equal(t, IntentCompare, intent.Kind)
	assert.Equal(t, "Aurora Laptop 14", intent.Left)
	assert.Equal(t, "Aurora Laptop 16 Pro", intent.Right)
}

func TestClassifyCompareFirstMatchWinsOnAmbiguousNames(t *testing.T) {
	// "and" inside a product name splits at the first separator; the
	// pattern is non-greedy on the left and that behavior is kept.
	intent := Classify("compare Salt and Pepper and Phone B")
	assert.Equal(t, IntentCompare, intent.Kind)
	assert.Equal(t, "Salt", intent.Left)
	assert.Equal(t, "Pepper and Phone B", intent.Right)
}

func TestClassifyProductQuery(t *testing.T) {
	tests := []struct {
		message string
		query   string
	}{
		{"tell me about Phone Z", "Phone Z"},
		{"price of Phone A", "of Phone A"},
		{"what is the battery of Phone B", "the battery of Phone B"},
		{"specs Aurora Laptop 14", "Aurora Laptop 14"},
	}
	for _, tt := range tests {
		intent := Classify(tt.message)
		assert.Equal(t, IntentProductQuery, intent.Kind, "message %q", tt.message)
		assert.Equal(t, tt.query, intent.Query, "message %q", tt.message)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// A greeting prefix outranks the compare and query patterns.
	assert.Equal(t, IntentGreeting, Classify("hi compare Phone A and Phone B").Kind)
	// Compare outranks the query triggers it shares words with.
	assert.Equal(t, IntentCompare, Classify("compare price of A and price of B").Kind)
}

func TestClassifyFallback(t *testing.T) {
	for _, msg := range []string{
		"how do returns work",
		"thanks",
		"??",
	} {
		assert.Equal(t, IntentFallback, Classify(msg).Kind, "message %q", msg)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	first := Classify("compare Phone A vs Phone B")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Classify("compare Phone A vs Phone B"))
	}
}
