package memorable

import "github.com/heartmarshall/memorable-quantities/internal/domain"

// GenerateInput holds the parameters of a comparison request.
type GenerateInput struct {
	UserText       string
	ComparisonType string
	Language       string
}

// Validate checks that the text is not blank once cleaned.
func (i GenerateInput) Validate() error {
	if domain.CleanText(i.UserText) == "" {
		return domain.NewValidationError("userText", "required")
	}
	return nil
}

func (i GenerateInput) request() domain.ComparisonRequest {
	return domain.ComparisonRequest{
		Text:     i.UserText,
		Category: i.ComparisonType,
		Language: i.Language,
	}
}
