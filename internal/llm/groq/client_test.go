package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", "test-model", time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.baseURL = srv.URL
	return client, srv
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient("", "m", time.Second); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestCompleteSendsExpectedRequest(t *testing.T) {
	var got chatRequest
	var auth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"ok\":true}"}}]}`))
	})

	out, err := client.Complete(context.Background(), "analyze this")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != `{"ok":true}` {
		t.Fatalf("unexpected content %q", out)
	}
	if auth != "Bearer test-key" {
		t.Fatalf("unexpected auth header %q", auth)
	}
	if got.Model != "test-model" {
		t.Fatalf("unexpected model %q", got.Model)
	}
	if got.Temperature == nil || *got.Temperature != 0.5 {
		t.Fatalf("unexpected temperature %v", got.Temperature)
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_object" {
		t.Fatalf("unexpected response_format %v", got.ResponseFormat)
	}
	if len(got.Messages) != 1 || !strings.HasSuffix(got.Messages[0].Content, "RETURN JSON ONLY.") {
		t.Fatalf("prompt not suffixed with json directive: %v", got.Messages)
	}
}

func TestCompleteAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"tokens"}}`))
	})

	_, err := client.Complete(context.Background(), "p")
	if err == nil || !strings.Contains(err.Error(), "rate limit exceeded") {
		t.Fatalf("expected api error, got %v", err)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	if _, err := client.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestCompleteTimeout(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(`{"choices":[{"message":{"content":"late"}}]}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := client.Complete(ctx, "p"); err == nil {
		t.Fatal("expected context deadline error")
	}
}
