package deepseek

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// IDeepSeek is a chat client for DeepSeek.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New builds a DeepSeek client on top of the langchaingo OpenAI driver.
func New(cfg Config) (IDeepSeek, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("deepseek: APIKey is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	chat, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("deepseek: failed to create client: %w", err)
	}
	return NewWithModel(chat, cfg.Model), nil
}

// NewWithModel wraps an existing langchaingo model.
func NewWithModel(chat llms.Model, model string) IDeepSeek {
	return &implDeepSeek{chat: chat, model: model}
}

func (d *implDeepSeek) Model() string {
	return d.model
}

// GenerateContent sends the system prompt and user prompt as one exchange.
func (d *implDeepSeek) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]llms.MessageContent, 0, 2)
	if req.System != "" {
		msgs = append(msgs, llms.MessageContent{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(req.System)},
		})
	}
	msgs = append(msgs, llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(req.Prompt)},
	})

	var opts []llms.CallOption
	if req.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(req.Temperature))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	resp, err := d.chat.GenerateContent(ctx, msgs, opts...)
	if err != nil {
		return nil, fmt.Errorf("deepseek: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return &Response{}, nil
	}

	choice := resp.Choices[0]
	out := &Response{Text: choice.Content, StopReason: choice.StopReason}
	out.InputTokens = intInfo(choice.GenerationInfo, "PromptTokens")
	out.OutputTokens = intInfo(choice.GenerationInfo, "CompletionTokens")
	out.TotalTokens = intInfo(choice.GenerationInfo, "TotalTokens")
	return out, nil
}

func intInfo(info map[string]any, key string) int {
	if v, ok := info[key].(int); ok {
		return v
	}
	return 0
}
