package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &Client{
		apiKey:     "test-key",
		baseURL:    srv.URL,
		model:      "gpt-4o",
		maxRetries: 1,
		httpClient: srv.Client(),
	}
}

func completionResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
}

func TestScoreVirality(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header")
		}
		json.NewEncoder(w).Encode(completionResponse(
			`{"score": 72, "reasoning": "Strong hook with a clear payoff.", "category": "hook"}`))
	})

	got, err := c.ScoreVirality(context.Background(), "tiktok", "fitness", "30-day plank challenge")
	if err != nil {
		t.Fatalf("ScoreVirality() error = %v", err)
	}
	if got.Score != 72 || got.Category != "hook" {
		t.Errorf("ScoreVirality() = %+v", got)
	}
}

func TestScoreVirality_RetriesOnBadOutput(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			json.NewEncoder(w).Encode(completionResponse(`{"score": 150, "reasoning": "x", "category": "hook"}`))
			return
		}
		json.NewEncoder(w).Encode(completionResponse(
			`{"score": 64, "reasoning": "Rides an active trend.", "category": "trend"}`))
	})

	got, err := c.ScoreVirality(context.Background(), "instagram", "beauty", "GRWM morning routine")
	if err != nil {
		t.Fatalf("ScoreVirality() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if got.Score != 64 {
		t.Errorf("score = %d, want 64", got.Score)
	}
}

func TestScoreVirality_GivesUpAfterRetries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionResponse(`not json at all`))
	})

	_, err := c.ScoreVirality(context.Background(), "twitter", "tech", "hot take thread")
	if !errors.Is(err, ErrBadModelOutput) {
		t.Errorf("error = %v, want ErrBadModelOutput", err)
	}
}

func TestImproveCaptions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionResponse("```json\n" +
			`[{"headline":"A","body":"one"},{"headline":"B","body":"two"},{"headline":"C","body":"three"}]` +
			"\n```"))
	})

	got, err := c.ImproveCaptions(context.Background(), "instagram", "lifestyle", "new apartment tour!")
	if err != nil {
		t.Fatalf("ImproveCaptions() error = %v", err)
	}
	if len(got) != 3 || got[1].Headline != "B" {
		t.Errorf("ImproveCaptions() = %+v", got)
	}
}

func TestImproveCaptions_RejectsWrongCount(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionResponse(`[{"headline":"A","body":"one"}]`))
	})

	_, err := c.ImproveCaptions(context.Background(), "youtube", "gaming", "speedrun attempt")
	if !errors.Is(err, ErrBadModelOutput) {
		t.Errorf("error = %v, want ErrBadModelOutput", err)
	}
}

func TestClient_Disabled(t *testing.T) {
	c := &Client{}
	if _, err := c.ScoreVirality(context.Background(), "instagram", "tech", "idea"); !errors.Is(err, ErrDisabled) {
		t.Errorf("error = %v, want ErrDisabled", err)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n[1,2]\n```", `[1,2]`},
	}
	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
