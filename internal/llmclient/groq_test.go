package llmclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGroq(t *testing.T, handler http.HandlerFunc) *GroqClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	g, err := NewGroqClient("test-key", "llama-3.1-8b-instant")
	require.NoError(t, err)
	g.baseURL = srv.URL
	return g
}

func TestGroqCompleteSendsSystemUserAtTemperatureZero(t *testing.T) {
	var got groqChatReq
	g := newTestGroq(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "import pandas as pd"}}},
		})
	})

	out, err := g.Complete(context.Background(), "rules", "task")
	require.NoError(t, err)
	require.Equal(t, "import pandas as pd", out)

	require.Equal(t, "llama-3.1-8b-instant", got.Model)
	require.Len(t, got.Messages, 2)
	require.Equal(t, groqMessage{Role: "system", Content: "rules"}, got.Messages[0])
	require.Equal(t, groqMessage{Role: "user", Content: "task"}, got.Messages[1])
	require.Zero(t, got.Temperature)
}

func TestGroqCompleteSurfacesHTTPError(t *testing.T) {
	g := newTestGroq(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})

	_, err := g.Complete(context.Background(), "s", "u")
	require.Error(t, err)
	require.Contains(t, err.Error(), "503")
}

func TestGroqCompleteEmptyChoices(t *testing.T) {
	g := newTestGroq(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := g.Complete(context.Background(), "s", "u")
	require.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGroqContextLengthExceededIsPermanent(t *testing.T) {
	g := newTestGroq(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"context_length_exceeded"}}`))
	})

	_, err := g.Complete(context.Background(), "s", "u")
	require.Error(t, err)
	var perm *PermanentError
	require.ErrorAs(t, err, &perm)
}
