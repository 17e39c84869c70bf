package chat

import (
	"encoding/json"
	"strings"

	"github.com/vivekevdt/FlexiBuy/internal/ai"
)

// DefaultMaxHistory bounds the non-system portion of the context when
// the caller gives no limit.
const DefaultMaxHistory = 12

// BuildMessages assembles the bounded, ordered context for one
// completion call.
//
// The first system message found in history wins over the default
// prompt; any further system messages in history are dropped. The
// non-system history is truncated to its last maxHistory entries,
// oldest first. The tool message, when present, goes immediately before
// the new user message, which is always last. The result therefore has
// exactly one system message, at index 0, and is bounded no matter how
// long the supplied history is.
func BuildMessages(
	history []ai.Message,
	system ai.Message,
	extraSystem *ai.Message,
	user ai.Message,
	maxHistory int,
) []ai.Message {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}

	sys := system
	rest := make([]ai.Message, 0, len(history))
	sysFound := false
	for _, m := range history {
		if m.Role == ai.RoleSystem {
			if !sysFound {
				sys = m
				sysFound = true
			}
			continue
		}
		rest = append(rest, m)
	}

	if len(rest) > maxHistory {
		rest = rest[len(rest)-maxHistory:]
	}

	out := make([]ai.Message, 0, len(rest)+3)
	out = append(out, sys)
	out = append(out, rest...)
	if extraSystem != nil {
		out = append(out, *extraSystem)
	}
	out = append(out, user)

	return out
}

// coerceHistory turns the caller-supplied, untrusted messages field into
// the internal history. Entries with an unknown role or empty content
// are dropped one by one; a field that is not an array of {role,
// content} at all degrades to no history. Malformed input is never a
// hard failure.
func coerceHistory(raw json.RawMessage) []ai.Message {
	if len(raw) == 0 {
		return nil
	}

	var entries []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}

	out := make([]ai.Message, 0, len(entries))
	for _, e := range entries {
		switch e.Role {
		case ai.RoleSystem, ai.RoleUser, ai.RoleAssistant:
		default:
			continue
		}
		if strings.TrimSpace(e.Content) == "" {
			continue
		}
		out = append(out, ai.Message{Role: e.Role, Content: e.Content})
	}

	return out
}
