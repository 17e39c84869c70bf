package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/vivekevdt/FlexiBuy/internal/ai"
	"github.com/vivekevdt/FlexiBuy/internal/catalog"
	"github.com/vivekevdt/FlexiBuy/internal/config"
)

const (
	greetingReply = "Hi! I'm your product assistant — ask about any product or say 'Compare Phone A and Phone B'."
	notFoundReply = "No matching product found."
	fallbackReply = "I can help with product info."

	comparePrompt  = "You are a helpful shopping assistant. Use TOOL_RESULT as factual and produce a concise comparison."
	productPrompt  = "You are a helpful shopping assistant. Use TOOL output as factual. Keep answer concise."
	friendlyPrompt = "You are a friendly shopping assistant."

	// Conversational sampling for the fallback path; the factual paths
	// use the configured (near-zero) temperature.
	fallbackTemperature = 0.7
)

type service struct {
	tools       Tools
	ai          ai.AI
	temperature float32
	maxHistory  int
}

func NewService(tools Tools, aiClient ai.AI, cfg *config.Config) Service {
	return &service{
		tools:       tools,
		ai:          aiClient,
		temperature: cfg.LLMTemperature,
		maxHistory:  cfg.MaxHistory,
	}
}

// Handle runs one message through the pipeline: classify, invoke a tool
// when the intent calls for one, assemble the context, complete, format.
func (s *service) Handle(ctx context.Context, message string, history []ai.Message) Envelope {
	intent := Classify(message)

	switch intent.Kind {
	case IntentGreeting:
		// No tool, no LLM.
		return reply(greetingReply)
	case IntentCompare:
		return s.handleCompare(ctx, intent, history)
	case IntentProductQuery:
		return s.handleProductQuery(ctx, message, intent, history)
	default:
		return s.handleFallback(ctx, message, history)
	}
}

func (s *service) handleCompare(ctx context.Context, intent Intent, history []ai.Message) Envelope {
	out := s.tools.Compare(ctx, intent.Left, intent.Right)
	if out.Kind != OutcomeFoundPair {
		return Envelope{OK: false, Error: "compare tool error"}
	}

	aSpecs, _ := json.Marshal(out.A)
	bSpecs, _ := json.Marshal(out.B)
	diffs, _ := json.Marshal(out.Diffs)

	toolMsg := ai.Message{
		Role: ai.RoleSystem,
		Content: fmt.Sprintf(
			"TOOL_RESULT:\nA:%s\nB:%s\nA_specs:%s\nB_specs:%s\nDIFFS:%s\nRECOMMENDATION:%s",
			out.A.Name, out.B.Name, aSpecs, bSpecs, diffs, out.Recommendation,
		),
	}
	userMsg := ai.Message{
		Role:    ai.RoleUser,
		Content: fmt.Sprintf("User asked: Compare %s and %s.", intent.Left, intent.Right),
	}

	msgs := BuildMessages(history,
		ai.Message{Role: ai.RoleSystem, Content: comparePrompt},
		&toolMsg, userMsg, s.maxHistory)

	return s.complete(ctx, msgs, s.temperature, out.Recommendation)
}

func (s *service) handleProductQuery(ctx context.Context, message string, intent Intent, history []ai.Message) Envelope {
	query := catalog.CleanProductPhrase(intent.Query)
	if !catalog.Meaningful(query) {
		// Not worth a tool call; same outcome as an empty candidate
		// list.
		return reply(notFoundReply)
	}

	out := s.tools.Lookup(ctx, query)
	switch out.Kind {
	case OutcomeToolError:
		return Envelope{OK: false, Error: "getData tool error"}

	case OutcomeNotFound:
		return reply(notFoundReply)

	case OutcomeCandidates:
		if len(out.Candidates) == 0 {
			return reply(notFoundReply)
		}
		return reply(candidateList(out.Candidates))

	case OutcomeFound:
		p := out.Product

		wrapped, _ := json.Marshal(map[string]any{"product": p})
		toolMsg := ai.Message{Role: ai.RoleSystem, Content: string(wrapped)}
		userMsg := ai.Message{
			Role: ai.RoleUser,
			Content: fmt.Sprintf(
				"User asked: %q. Provide a brief product summary + quick recommendation.",
				message,
			),
		}

		msgs := BuildMessages(history,
			ai.Message{Role: ai.RoleSystem, Content: productPrompt},
			&toolMsg, userMsg, s.maxHistory)

		fallback := fmt.Sprintf("%s — $%s", p.Name, catalog.FormatValue(p.Price))
		return s.complete(ctx, msgs, s.temperature, fallback)

	default:
		return Envelope{OK: false, Error: "getData tool error"}
	}
}

func (s *service) handleFallback(ctx context.Context, message string, history []ai.Message) Envelope {
	userMsg := ai.Message{Role: ai.RoleUser, Content: message}
	msgs := BuildMessages(history,
		ai.Message{Role: ai.RoleSystem, Content: friendlyPrompt},
		nil, userMsg, s.maxHistory)

	return s.complete(ctx, msgs, fallbackTemperature, fallbackReply)
}

// complete calls the model and formats the envelope. An empty reply is
// replaced with the path's deterministic fallback text; only transport
// and configuration failures turn into error envelopes.
func (s *service) complete(ctx context.Context, msgs []ai.Message, temperature float32, fallback string) Envelope {
	text, err := s.ai.Complete(ctx, msgs, temperature)
	if err != nil {
		log.Println("[chat] completion failed:", err)
		return Envelope{OK: false, Error: "assistant unavailable"}
	}

	if strings.TrimSpace(text) == "" {
		text = fallback
	}
	return reply(text)
}

func candidateList(candidates []catalog.Product) string {
	var b strings.Builder
	b.WriteString("I found these products:")
	for i, p := range candidates {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "\n• %s — $%s", p.Name, catalog.FormatValue(p.Price))
	}
	return b.String()
}

func reply(text string) Envelope {
	return Envelope{
		OK:    true,
		Reply: text,
		AssistantMessage: &AssistantMessage{
			Role:    ai.RoleAssistant,
			Content: text,
		},
	}
}
