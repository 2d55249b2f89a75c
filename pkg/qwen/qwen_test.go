package qwen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"productivity-calendar/pkg/qwen"
)

func TestGenerateContent(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer k" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hi"},"finish_reason":"stop"}],"usage":{"prompt_tokens":4,"completion_tokens":1,"total_tokens":5}}`))
	}))
	defer ts.Close()

	client, err := qwen.New(qwen.Config{APIKey: "k", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &qwen.Request{
		System:   "be brief",
		Messages: []qwen.Message{{Role: "user", Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Message.Content != "hi" {
		t.Errorf("content = %q", resp.Message.Content)
	}
	if resp.Usage.TotalTokens != 5 {
		t.Errorf("total tokens = %d", resp.Usage.TotalTokens)
	}

	msgs := got["messages"].([]any)
	if len(msgs) != 2 || msgs[0].(map[string]any)["role"] != "system" {
		t.Errorf("system message not sent first: %v", msgs)
	}
	if got["model"] != qwen.DefaultModel {
		t.Errorf("model = %v", got["model"])
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client, _ := qwen.New(qwen.Config{APIKey: "k", BaseURL: ts.URL})
	if _, err := client.GenerateContent(context.Background(), &qwen.Request{}); err == nil {
		t.Error("expected error")
	}
}
