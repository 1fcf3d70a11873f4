package deepseek

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/heartmarshall/memorable-quantities/internal/config"
	"github.com/heartmarshall/memorable-quantities/internal/domain"
)

// Operation labels reported to the recorder.
const (
	opComplete = "complete"
	opStream   = "stream"
	opPing     = "ping"
)

// recorder receives the outcome and latency of every upstream call.
type recorder interface {
	ObserveLLM(operation string, err error, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveLLM(string, error, time.Duration) {}

// Client talks to the DeepSeek chat-completions API through the
// OpenAI-compatible SDK. It is safe for concurrent use.
type Client struct {
	client  openai.Client
	model   string
	baseURL string
	rec    recorder
	log    *slog.Logger
}

// NewClient creates a Client for cfg. A nil rec disables metrics.
// Retries are disabled: every call is a single attempt.
func NewClient(cfg config.LLMConfig, rec recorder, logger *slog.Logger) *Client {
	if rec == nil {
		rec = nopRecorder{}
	}

	baseURL := cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Client{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(baseURL),
			option.WithMaxRetries(0),
		),
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		rec:     rec,
		log:     logger.With("adapter", "deepseek"),
	}
}

// Model returns the default model identifier.
func (c *Client) Model() string { return c.model }

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL }

// CreateChatCompletion performs a blocking completion and returns the first choice.
func (c *Client) CreateChatCompletion(ctx context.Context, req domain.CompletionRequest) (*domain.Completion, error) {
	params, err := c.buildParams(req)
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "chat completion request",
		slog.String("model", string(params.Model)),
		slog.Int("messages", len(params.Messages)),
	)

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err == nil && len(resp.Choices) == 0 {
		err = errors.New("deepseek: response has no choices")
	}
	c.rec.ObserveLLM(opComplete, err, time.Since(start))
	if err != nil {
		c.log.ErrorContext(ctx, "chat completion failed", slog.String("error", err.Error()))
		return nil, domain.NewServiceError(opComplete, err)
	}

	msg := resp.Choices[0].Message
	raw := json.RawMessage(msg.RawJSON())
	if len(raw) == 0 {
		if raw, err = json.Marshal(msg); err != nil {
			return nil, domain.NewServiceError(opComplete, fmt.Errorf("deepseek: encode message: %w", err))
		}
	}

	c.log.DebugContext(ctx, "chat completion response",
		slog.String("id", resp.ID),
		slog.String("finish_reason", resp.Choices[0].FinishReason),
		slog.Int64("total_tokens", resp.Usage.TotalTokens),
	)

	return &domain.Completion{Content: msg.Content, Message: raw}, nil
}

// StreamChatCompletion starts a streaming completion and returns the raw
// upstream body. The caller must close it. The bytes are the server-sent
// events exactly as produced by the API.
func (c *Client) StreamChatCompletion(ctx context.Context, req domain.CompletionRequest) (io.ReadCloser, error) {
	params, err := c.buildParams(req)
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "chat completion stream request",
		slog.String("model", string(params.Model)),
		slog.Int("messages", len(params.Messages)),
	)

	var resp *http.Response
	start := time.Now()
	err = c.client.Post(ctx, "chat/completions", params, &resp, option.WithJSONSet("stream", true))
	if err == nil && resp == nil {
		err = errors.New("deepseek: empty stream response")
	}
	c.rec.ObserveLLM(opStream, err, time.Since(start))
	if err != nil {
		c.log.ErrorContext(ctx, "chat completion stream failed", slog.String("error", err.Error()))
		return nil, domain.NewServiceError(opStream, err)
	}

	return resp.Body, nil
}

// Ping checks that the API is reachable and the key is accepted.
func (c *Client) Ping(ctx context.Context) error {
	start := time.Now()
	_, err := c.client.Models.List(ctx)
	c.rec.ObserveLLM(opPing, err, time.Since(start))
	if err != nil {
		return domain.NewServiceError(opPing, err)
	}
	return nil
}

func (c *Client) buildParams(req domain.CompletionRequest) (openai.ChatCompletionNewParams, error) {
	msgs, err := toMessageParams(req.Messages)
	if err != nil {
		return openai.ChatCompletionNewParams{}, err
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: msgs,
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxTokens != nil {
		params.MaxTokens = openai.Int(*req.MaxTokens)
	}
	if req.PresencePenalty != nil {
		params.PresencePenalty = openai.Float(*req.PresencePenalty)
	}
	if req.FrequencyPenalty != nil {
		params.FrequencyPenalty = openai.Float(*req.FrequencyPenalty)
	}
	return params, nil
}
