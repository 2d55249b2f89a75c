package llmprovider

import (
	"context"
	"strings"

	"productivity-calendar/pkg/deepseek"
	"productivity-calendar/pkg/gemini"
	"productivity-calendar/pkg/qwen"
)

// GeminiAdapter adapts pkg/gemini to Provider.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	greq := &gemini.Request{
		Messages:    make([]gemini.Content, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONOutput:  req.JSONOutput,
	}
	if req.SystemInstruction != "" {
		greq.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: req.SystemInstruction}}}
	}
	for i, m := range req.Messages {
		role := m.Role
		if role == "assistant" {
			role = "model"
		}
		greq.Messages[i] = gemini.Content{Role: role, Parts: []gemini.Part{{Text: m.Text}}}
	}

	resp, err := a.client.GenerateContent(ctx, greq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	texts := make([]string, 0, len(resp.Content.Parts))
	for _, p := range resp.Content.Parts {
		texts = append(texts, p.Text)
	}
	return &Response{
		Text:         strings.Join(texts, ""),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        (*Usage)(resp.Usage),
	}, nil
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// QwenAdapter adapts pkg/qwen to Provider.
type QwenAdapter struct {
	client qwen.IQwen
}

func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qreq := &qwen.Request{
		System:      req.SystemInstruction,
		Messages:    make([]qwen.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for i, m := range req.Messages {
		qreq.Messages[i] = qwen.Message{Role: m.Role, Content: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, qreq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}
	return &Response{
		Text:         resp.Message.Content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        (*Usage)(resp.Usage),
	}, nil
}

func (a *QwenAdapter) Name() string  { return "qwen" }
func (a *QwenAdapter) Model() string { return a.client.Model() }

// DeepSeekAdapter adapts pkg/deepseek to Provider. Multi-turn history is
// flattened into a single prompt.
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	parts := make([]string, 0, len(req.Messages))
	for _, m := range req.Messages {
		parts = append(parts, m.Text)
	}

	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		System:      req.SystemInstruction,
		Prompt:      strings.Join(parts, "\n\n"),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
			TotalTokens:  resp.TotalTokens,
		},
	}, nil
}

func (a *DeepSeekAdapter) Name() string  { return "deepseek" }
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }
