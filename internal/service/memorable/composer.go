package memorable

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
)

// Composer builds the single system message sent to the model for a
// comparison request. It holds no mutable state.
type Composer struct {
	table domain.ReferenceTable
}

// NewComposer creates a Composer over a reference table.
// The table must contain domain.DefaultCategory.
func NewComposer(table domain.ReferenceTable) *Composer {
	return &Composer{table: table}
}

// Compose cleans the request text, resolves the category and language,
// and returns a one-element message list carrying the prompt.
func (c *Composer) Compose(req domain.ComparisonRequest) ([]domain.Message, error) {
	text := domain.CleanText(req.Text)
	if text == "" {
		return nil, domain.NewValidationError("userText", "required")
	}

	category, refs := c.table.Resolve(req.Category)
	language := domain.NormalizeLanguage(req.Language)

	refsJSON, err := json.MarshalIndent(refs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal references: %w", err)
	}

	prompt := buildPrompt(text, strings.ToUpper(language), category, exampleFor(language), string(refsJSON))

	return []domain.Message{{Role: domain.RoleSystem, Content: prompt}}, nil
}

// exampleFor returns the worked example matching the language.
// Only Portuguese has a translated example; everything else gets English.
func exampleFor(language string) string {
	if strings.EqualFold(language, "pt") {
		return examplePT
	}
	return exampleEN
}
