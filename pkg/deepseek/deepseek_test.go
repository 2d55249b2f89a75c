package deepseek_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tmc/langchaingo/llms"

	"productivity-calendar/pkg/deepseek"
)

type fakeModel struct {
	msgs []llms.MessageContent
	resp *llms.ContentResponse
	err  error
}

func (f *fakeModel) GenerateContent(ctx context.Context, msgs []llms.MessageContent, opts ...llms.CallOption) (*llms.ContentResponse, error) {
	f.msgs = msgs
	return f.resp, f.err
}

func (f *fakeModel) Call(ctx context.Context, prompt string, opts ...llms.CallOption) (string, error) {
	return "", errors.New("not used")
}

func TestGenerateContent(t *testing.T) {
	fm := &fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{
		Content:        `[{"title":"x"}]`,
		StopReason:     "stop",
		GenerationInfo: map[string]any{"PromptTokens": 10, "CompletionTokens": 4, "TotalTokens": 14},
	}}}}
	client := deepseek.NewWithModel(fm, "deepseek-chat")

	resp, err := client.GenerateContent(context.Background(), &deepseek.Request{System: "sys", Prompt: "user"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != `[{"title":"x"}]` {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.TotalTokens != 14 || resp.InputTokens != 10 {
		t.Errorf("usage = %+v", resp)
	}
	if len(fm.msgs) != 2 || fm.msgs[0].Role != llms.ChatMessageTypeSystem {
		t.Errorf("messages = %+v", fm.msgs)
	}
	if client.Model() != "deepseek-chat" {
		t.Errorf("model = %q", client.Model())
	}
}

func TestGenerateContentError(t *testing.T) {
	client := deepseek.NewWithModel(&fakeModel{err: errors.New("boom")}, "m")
	if _, err := client.GenerateContent(context.Background(), &deepseek.Request{Prompt: "p"}); err == nil {
		t.Error("expected error")
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := deepseek.New(deepseek.Config{}); err == nil {
		t.Error("expected error without api key")
	}
}
