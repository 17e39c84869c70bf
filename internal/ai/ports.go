package ai

import "context"

// Message roles, the literal wire values of the completion service.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message — one turn of the conversation sent to the model.
type Message struct {
	Role    string // "system" | "user" | "assistant"
	Content string
}

// AI — the completion service, knows nothing about the catalog or HTTP
// handlers. An empty reply with a nil error means the model produced
// nothing usable; callers substitute their own fallback text.
type AI interface {
	Complete(ctx context.Context, messages []Message, temperature float32) (string, error)
}
