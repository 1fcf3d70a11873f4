package chat

import (
	"context"
	"io"
	"log/slog"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
)

// Complete sends the conversation, with a default system message when it
// has none, and returns the first choice.
func (s *Service) Complete(ctx context.Context, input CompleteInput) (*domain.Completion, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	msgs := domain.EnsureSystemMessage(input.Messages)
	completion, err := s.llm.CreateChatCompletion(ctx, domain.CompletionRequest{Messages: msgs})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "chat completed",
		slog.Int("messages", len(msgs)),
		slog.Int("content_len", len(completion.Content)),
	)

	return completion, nil
}

// Stream is Complete in streaming mode. The returned body carries the raw
// upstream event stream and must be closed by the caller.
func (s *Service) Stream(ctx context.Context, input CompleteInput) (io.ReadCloser, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	msgs := domain.EnsureSystemMessage(input.Messages)
	body, err := s.llm.StreamChatCompletion(ctx, domain.CompletionRequest{Messages: msgs, Stream: true})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "chat stream opened", slog.Int("messages", len(msgs)))

	return body, nil
}
