// Package copygen turns a product pitch into headline, description and
// call-to-action suggestions using a lazily loaded text generator.
package copygen

// GenerateOptions are the sampling parameters sent with every request.
type GenerateOptions struct {
	MaxNewTokens      int     `json:"max_new_tokens"`
	Temperature       float64 `json:"temperature"`
	TopK              int     `json:"top_k"`
	Sample            bool    `json:"do_sample"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
}

// DefaultGenerateOptions favours short, varied output.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		MaxNewTokens:      44,
		Temperature:       0.9,
		TopK:              40,
		Sample:            true,
		RepetitionPenalty: 1.2,
	}
}
