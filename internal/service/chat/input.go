package chat

import "github.com/heartmarshall/memorable-quantities/internal/domain"

// CompleteInput holds a conversation to send to the model.
type CompleteInput struct {
	Messages []domain.Message
}

// Validate checks that a message list was supplied and every role is known.
// An empty, non-nil list is accepted.
func (i CompleteInput) Validate() error {
	if i.Messages == nil {
		return domain.NewValidationError("messages", "required")
	}
	return domain.ValidateMessages(i.Messages)
}
