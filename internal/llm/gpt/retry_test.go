package gpt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/triage-agent/internal/llm"
)

const completionBody = `{"id":"chatcmpl-1","object":"chat.completion","created":0,"model":"gpt-4o-mini",` +
	`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"George Washington"}}]}`

// newTestServer fails with status for the first failures requests, then succeeds.
func newTestServer(t *testing.T, status int, failures int32) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := attempts.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if n <= failures {
			w.WriteHeader(status)
			fmt.Fprintf(w, `{"error":{"message":"status %d","type":"server_error"}}`, status)
			return
		}
		fmt.Fprint(w, completionBody)
	}))
	t.Cleanup(server.Close)

	return server, &attempts
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient("test-key", "gpt-4o-mini", baseURL+"/")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	client.InitialDelay = time.Millisecond
	client.MaxDelay = 5 * time.Millisecond
	return client
}

var historyRequest = llm.LLMRequest{Prompt: "who was the first president of the united states?"}

func TestInvokeModel_DoesNotRetry(t *testing.T) {
	server, attempts := newTestServer(t, http.StatusServiceUnavailable, 100)
	client := newTestClient(t, server.URL)

	if _, err := client.InvokeModel(context.Background(), historyRequest); err == nil {
		t.Fatal("Expected error from failing server")
	}

	if got := attempts.Load(); got != 1 {
		t.Errorf("Expected exactly 1 HTTP attempt, got %d", got)
	}
}

func TestInvokeModelWithRetry_RecoversFromServerError(t *testing.T) {
	server, attempts := newTestServer(t, http.StatusServiceUnavailable, 2)
	client := newTestClient(t, server.URL)

	resp, err := client.InvokeModelWithRetry(context.Background(), historyRequest)
	if err != nil {
		t.Fatalf("InvokeModelWithRetry failed: %v", err)
	}

	if resp.Content != "George Washington" {
		t.Errorf("Unexpected content %q", resp.Content)
	}
	if got := attempts.Load(); got != 3 {
		t.Errorf("Expected 3 HTTP attempts, got %d", got)
	}
}

func TestInvokeModelWithRetry_HonoursMaxRetries(t *testing.T) {
	server, attempts := newTestServer(t, http.StatusTooManyRequests, 100)
	client := newTestClient(t, server.URL)
	client.MaxRetries = 2

	if _, err := client.InvokeModelWithRetry(context.Background(), historyRequest); err == nil {
		t.Fatal("Expected error after exhausting retries")
	}

	if got := attempts.Load(); got != 2 {
		t.Errorf("Expected 2 HTTP attempts, got %d", got)
	}
}

func TestInvokeModelWithRetry_ClientErrorIsFinal(t *testing.T) {
	server, attempts := newTestServer(t, http.StatusBadRequest, 100)
	client := newTestClient(t, server.URL)

	if _, err := client.InvokeModelWithRetry(context.Background(), historyRequest); err == nil {
		t.Fatal("Expected error for bad request")
	}

	if got := attempts.Load(); got != 1 {
		t.Errorf("Expected 1 HTTP attempt for a 400, got %d", got)
	}
}

func TestIsRetryableError(t *testing.T) {
	if isRetryableError(errors.New("connection refused")) {
		t.Error("Plain errors are not retryable")
	}
}
