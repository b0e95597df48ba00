// Package handler exposes the assistant over a websocket. One connection is
// one conversation; closing the socket cancels any reply still waiting on
// its typing delay.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"packport/internal/assistant"
	"packport/internal/platform/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Asker answers one question, honoring cancellation.
type Asker interface {
	Ask(ctx context.Context, question string) (assistant.Reply, error)
}

type Handler struct {
	service     Asker
	suggestions []string
	logger      *slog.Logger
}

func New(service Asker, suggestions []string, logger *slog.Logger) *Handler {
	return &Handler{service: service, suggestions: suggestions, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/assistant/ws", h.HandleChat)
}

type inboundMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type outboundMessage struct {
	Type        string   `json:"type"`
	Text        string   `json:"text"`
	Scripted    bool     `json:"scripted,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// HandleChat upgrades the request and runs the conversation loop. All
// writes happen on this goroutine; a separate goroutine feeds questions in
// and cancels the conversation when the peer goes away.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnContext(ctx, "websocket upgrade failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := conn.WriteJSON(outboundMessage{
		Type:        "greeting",
		Text:        assistant.Greeting,
		Suggestions: h.suggestions,
	}); err != nil {
		return
	}

	questions := make(chan string)
	go func() {
		defer cancel()
		for {
			var msg inboundMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if msg.Type != "question" || strings.TrimSpace(msg.Text) == "" {
				continue
			}
			select {
			case questions <- msg.Text:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case question := <-questions:
			reply, err := h.service.Ask(ctx, question)
			if err != nil {
				// Conversation cancelled while the reply was pending.
				return
			}
			if err := conn.WriteJSON(outboundMessage{
				Type:     "reply",
				Text:     reply.Text,
				Scripted: reply.Scripted,
			}); err != nil {
				return
			}
		}
	}
}
