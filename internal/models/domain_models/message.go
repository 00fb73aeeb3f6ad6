package domain_models

import (
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"

	"travelai/pkg/utils"
)

// Role values match the export wire format: the assistant side is "ai".
const (
	RoleUser = "user"
	RoleAI   = "ai"
)

type Message struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MessageLog is the ordered, append-only record of one session's turns.
// Not goroutine-safe on its own; the owning Session serializes access.
type MessageLog struct {
	messages []Message
}

func NewMessageLog() *MessageLog {
	return &MessageLog{messages: []Message{}}
}

func (l *MessageLog) Append(role, content string) Message {
	m := Message{
		ID:      ulid.Make().String(),
		Role:    role,
		Content: content,
	}
	l.messages = append(l.messages, m)
	return m
}

// All returns a copy of the sequence for rendering.
func (l *MessageLog) All() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

func (l *MessageLog) Len() int {
	return len(l.messages)
}

// DropLastIf removes the final message only when its role matches.
// Reports whether anything was removed.
func (l *MessageLog) DropLastIf(role string) bool {
	if len(l.messages) == 0 {
		return false
	}
	if l.messages[len(l.messages)-1].Role != role {
		return false
	}
	l.messages = l.messages[:len(l.messages)-1]
	return true
}

func (l *MessageLog) Clear() {
	l.messages = []Message{}
}

type exportedMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ExportDocument struct {
	ExportedAtUTC string            `json:"exported_at_utc"`
	Messages      []exportedMessage `json:"messages"`
}

// Export renders the full sequence plus an export timestamp as the JSON
// document offered for download.
func (l *MessageLog) Export(now time.Time) ([]byte, error) {
	doc := ExportDocument{
		ExportedAtUTC: utils.ExportTimestampUTC(now),
		Messages:      make([]exportedMessage, 0, len(l.messages)),
	}
	for _, m := range l.messages {
		doc.Messages = append(doc.Messages, exportedMessage{Role: m.Role, Content: m.Content})
	}
	return json.MarshalIndent(doc, "", "  ")
}
