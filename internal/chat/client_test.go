package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Complete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "gpt-4o-mini", req["model"])

			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "try spaced repetition"}},
				},
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", "gpt-4o-mini")

		reply, err := client.Complete(context.Background(), "how should I study?")

		require.NoError(t, err)
		assert.Equal(t, "try spaced repetition", reply)
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", "gpt-4o-mini")

		_, err := client.Complete(context.Background(), "hello")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", "gpt-4o-mini")

		_, err := client.Complete(context.Background(), "hello")

		assert.Error(t, err)
	})

	t.Run("missing api key", func(t *testing.T) {
		client := NewClient("http://example.invalid", "", "gpt-4o-mini")

		_, err := client.Complete(context.Background(), "hello")

		assert.Error(t, err)
	})
}
