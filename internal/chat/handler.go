package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HandleChat — the chat endpoint. Always answers 200 with an envelope;
// the ok flag is the contract, and nothing raises past this boundary.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Println("[chat] panic:", rec)
			writeEnvelope(w, Envelope{OK: false, Error: "internal error"})
		}
	}()

	var payload struct {
		Message  string          `json:"message"`
		Messages json.RawMessage `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeEnvelope(w, Envelope{OK: false, Error: "invalid json"})
		return
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		writeEnvelope(w, Envelope{OK: false, Error: "message required"})
		return
	}

	env := h.svc.Handle(r.Context(), message, coerceHistory(payload.Messages))
	writeEnvelope(w, env)
}

func writeEnvelope(w http.ResponseWriter, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(env)
}
