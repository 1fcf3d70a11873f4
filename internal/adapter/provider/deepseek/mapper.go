package deepseek

import (
	"fmt"

	"github.com/openai/openai-go"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
)

// toMessageParams converts domain messages to SDK message params, keeping order.
func toMessageParams(msgs []domain.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for i, m := range msgs {
		switch m.Role {
		case domain.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case domain.RoleUser:
			out = append(out, openai.UserMessage(m.Content))
		case domain.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			return nil, fmt.Errorf("deepseek: message %d: unsupported role %q", i, m.Role)
		}
	}
	return out, nil
}
