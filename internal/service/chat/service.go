package chat

import (
	"context"
	"io"
	"log/slog"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
)

type chatModel interface {
	CreateChatCompletion(ctx context.Context, req domain.CompletionRequest) (*domain.Completion, error)
	StreamChatCompletion(ctx context.Context, req domain.CompletionRequest) (io.ReadCloser, error)
}

// Service forwards caller-supplied conversations to the model.
type Service struct {
	llm chatModel
	log *slog.Logger
}

// NewService creates a new Chat service.
func NewService(
	log *slog.Logger,
	llm chatModel,
) *Service {
	return &Service{
		llm: llm,
		log: log.With("service", "chat"),
	}
}
