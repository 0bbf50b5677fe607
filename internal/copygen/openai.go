package copygen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	openAIProviderName = "openai"
	defaultOpenAIBase  = "http://localhost:8000/v1"
	// Local OpenAI-compatible servers accept any bearer token.
	localAPIKey = "local"
)

// OpenAIOptions points the loader at an OpenAI-compatible endpoint, usually a
// local inference server (vLLM, llama.cpp, Ollama) serving a small model.
type OpenAIOptions struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// OpenAILoader checks that the configured model is served and returns a
// chat-completions backed Model.
type OpenAILoader struct {
	model string
	opts  []option.RequestOption
}

func NewOpenAILoader(cfg OpenAIOptions) (*OpenAILoader, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, errors.New("openai: model is required")
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultOpenAIBase
	}
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		key = localAPIKey
	}
	opts := []option.RequestOption{
		option.WithBaseURL(strings.TrimRight(base, "/") + "/"),
		option.WithAPIKey(key),
		option.WithMaxRetries(0),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	return &OpenAILoader{model: model, opts: opts}, nil
}

func (l *OpenAILoader) Name() string { return openAIProviderName }

func (l *OpenAILoader) Load(ctx context.Context) (Model, error) {
	client := openai.NewClient(l.opts...)
	if _, err := client.Models.Get(ctx, l.model); err != nil {
		return nil, fmt.Errorf("openai: model %s: %w", l.model, err)
	}
	return &openAIModel{client: client, model: l.model}, nil
}

type openAIModel struct {
	client openai.Client
	model  string
}

func (m *openAIModel) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	temperature := opts.Temperature
	if !opts.Sample {
		temperature = 0
	}
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(m.model),
		Messages:    []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		MaxTokens:   openai.Int(int64(opts.MaxNewTokens)),
		Temperature: openai.Float(temperature),
	}
	// Sampling knobs outside the OpenAI schema, understood by local servers.
	extra := []option.RequestOption{
		option.WithJSONSet("top_k", opts.TopK),
		option.WithJSONSet("repetition_penalty", opts.RepetitionPenalty),
	}
	resp, err := m.client.Chat.Completions.New(ctx, params, extra...)
	if err != nil {
		return "", fmt.Errorf("openai: generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
