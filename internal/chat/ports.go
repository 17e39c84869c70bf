package chat

import (
	"context"

	"github.com/vivekevdt/FlexiBuy/internal/ai"
	"github.com/vivekevdt/FlexiBuy/internal/catalog"
)

// IntentKind — the classified purpose of a user message.
type IntentKind int

const (
	IntentGreeting IntentKind = iota
	IntentCompare
	IntentProductQuery
	IntentFallback
)

// Intent carries the kind plus whatever the matching pattern captured.
type Intent struct {
	Kind IntentKind

	// Compare operands.
	Left  string
	Right string

	// Product query candidate, before filler stripping.
	Query string
}

// OutcomeKind — what a tool call produced, never the raw tool response.
type OutcomeKind int

const (
	OutcomeFound OutcomeKind = iota
	OutcomeFoundPair
	OutcomeCandidates
	OutcomeNotFound
	OutcomeToolError
)

// ToolOutcome is the tagged result of one tool invocation.
type ToolOutcome struct {
	Kind OutcomeKind

	Product    *catalog.Product
	Candidates []catalog.Product

	A, B           *catalog.Product
	Diffs          []string
	Recommendation string

	Err string
}

// Tools — the catalog collaborators as the chat pipeline sees them.
type Tools interface {
	Lookup(ctx context.Context, query string) ToolOutcome
	Compare(ctx context.Context, left, right string) ToolOutcome
}

// AssistantMessage mirrors the wire shape of one assistant turn.
type AssistantMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Envelope is the chat endpoint's response. ok is the authoritative
// success signal; the HTTP status is always 200.
type Envelope struct {
	OK               bool              `json:"ok"`
	Reply            string            `json:"reply,omitempty"`
	Error            string            `json:"error,omitempty"`
	AssistantMessage *AssistantMessage `json:"assistantMessage,omitempty"`
}

// Service — one user message in, one envelope out. History, if any, is
// supplied anew by the caller on every call; nothing is shared across
// requests.
type Service interface {
	Handle(ctx context.Context, message string, history []ai.Message) Envelope
}
