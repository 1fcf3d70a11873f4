package chat

import (
	"context"
	"encoding/json"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
)

// Example sends the conversation exactly as given, without a default
// system message, and returns the model's message object.
func (s *Service) Example(ctx context.Context, input CompleteInput) (json.RawMessage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	completion, err := s.llm.CreateChatCompletion(ctx, domain.CompletionRequest{Messages: input.Messages})
	if err != nil {
		return nil, err
	}
	return completion.Message, nil
}
