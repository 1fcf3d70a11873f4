package domain

// ComparisonRequest asks for memorable comparisons of the quantities in Text.
type ComparisonRequest struct {
	Text     string
	Category string
	Language string
}

// ComparisonResult is the model's prose answer, passed through unparsed.
type ComparisonResult struct {
	Result string `json:"result"`
}
