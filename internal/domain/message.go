package domain

import (
	"encoding/json"
	"fmt"
)

// Role is the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DefaultSystemPrompt is injected when a chat request carries no system message.
const DefaultSystemPrompt = "You are a helpful assistant."

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// Message is one turn of a model conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// HasSystemMessage reports whether msgs contains at least one system message.
func HasSystemMessage(msgs []Message) bool {
	for _, m := range msgs {
		if m.Role == RoleSystem {
			return true
		}
	}
	return false
}

// EnsureSystemMessage returns msgs with the default system message prepended
// when none is present. The input slice is never modified.
func EnsureSystemMessage(msgs []Message) []Message {
	if HasSystemMessage(msgs) {
		return msgs
	}
	out := make([]Message, 0, len(msgs)+1)
	out = append(out, Message{Role: RoleSystem, Content: DefaultSystemPrompt})
	return append(out, msgs...)
}

// ValidateMessages checks that every message has a known role.
func ValidateMessages(msgs []Message) error {
	for i, m := range msgs {
		if !m.Role.IsValid() {
			return NewValidationError(fmt.Sprintf("messages[%d].role", i), fmt.Sprintf("unsupported role %q", m.Role))
		}
	}
	return nil
}

// CompletionRequest is the input of one remote chat-completion call.
// An empty Model selects the client's configured model. Nil sampling
// parameters are left to the model's defaults.
type CompletionRequest struct {
	Model            string
	Messages         []Message
	Stream           bool
	Temperature      *float64
	MaxTokens        *int64
	PresencePenalty  *float64
	FrequencyPenalty *float64
}

// Completion is the first choice of a non-streaming chat completion.
type Completion struct {
	// Content is the text of the model's message.
	Content string
	// Message is the model's full message object as returned on the wire.
	Message json.RawMessage
}
