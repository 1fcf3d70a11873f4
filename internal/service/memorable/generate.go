package memorable

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
)

// Generate composes the comparison prompt and asks the model for a result.
// Validation errors are returned before the model is called.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*domain.ComparisonResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req := input.request()
	msgs, err := s.composer.Compose(req)
	if err != nil {
		return nil, err
	}

	t, mt, pp, fp := temperature, int64(maxTokens), presencePenalty, frequencyPenalty
	completion, err := s.llm.CreateChatCompletion(ctx, domain.CompletionRequest{
		Messages:         msgs,
		Temperature:      &t,
		MaxTokens:        &mt,
		PresencePenalty:  &pp,
		FrequencyPenalty: &fp,
	})
	if err != nil {
		return nil, err
	}

	category, _ := s.composer.table.Resolve(req.Category)
	s.log.InfoContext(ctx, "comparison generated",
		slog.String("category", category),
		slog.String("language", domain.NormalizeLanguage(req.Language)),
		slog.Int("result_len", len(completion.Content)),
	)

	return &domain.ComparisonResult{Result: completion.Content}, nil
}
