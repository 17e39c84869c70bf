package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanProductPhrase(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Tell me about the Phone A!", "phone a"},
		{"price of Phone A", "phone a"},
		{"of Phone A", "phone a"},
		{"  SPECS OF  Aurora Laptop 14 ", "aurora laptop 14"},
		{"what is the rating of Phone B?", "phone b"},
		{"Phone C Lite", "phone c lite"},
		{"i want info about the pulse smart watch", "pulse smart watch"},
		// repeated fillers are stripped until none match
		{"about about phone", "phone"},
		// punctuation collapses to spaces, hyphens survive
		{"phone-a (new)", "phone-a new"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanProductPhrase(tt.raw), "raw %q", tt.raw)
	}
}

func TestCleanProductPhraseConverges(t *testing.T) {
	// a query made only of fillers must terminate, not loop
	assert.Equal(t, "about", CleanProductPhrase("tell me about"))
	assert.Equal(t, "", CleanProductPhrase("   "))
}

func TestMeaningful(t *testing.T) {
	assert.False(t, Meaningful(""))
	assert.False(t, Meaningful("   "))
	assert.False(t, Meaningful("a"))
	assert.False(t, Meaningful(" x "))
	assert.True(t, Meaningful("tv"))
	assert.True(t, Meaningful("a b"))
	assert.True(t, Meaningful("phone a"))
}
