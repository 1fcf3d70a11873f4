package memorable

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
)

// Generation parameters for comparison requests.
const (
	temperature      = 0.3
	maxTokens        = 1000
	presencePenalty  = 0.0
	frequencyPenalty = 0.0
)

type completer interface {
	CreateChatCompletion(ctx context.Context, req domain.CompletionRequest) (*domain.Completion, error)
}

// Service turns user text into memorable comparisons of its quantities.
type Service struct {
	llm      completer
	composer *Composer
	log      *slog.Logger
}

// NewService creates a new memorable-quantities service.
func NewService(
	log *slog.Logger,
	llm completer,
	composer *Composer,
) *Service {
	return &Service{
		llm:      llm,
		composer: composer,
		log:      log.With("service", "memorable"),
	}
}
