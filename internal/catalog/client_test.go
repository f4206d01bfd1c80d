package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PlaylistVideos(t *testing.T) {
	t.Run("follows pagination to the end", func(t *testing.T) {
		var requests []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests = append(requests, r.URL.Query().Get("pageToken"))
			assert.Equal(t, "/playlistItems", r.URL.Path)
			assert.Equal(t, "snippet", r.URL.Query().Get("part"))
			assert.Equal(t, "PL123", r.URL.Query().Get("playlistId"))
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			page := map[string]any{
				"items": []map[string]any{
					{"snippet": map[string]any{
						"title":      "Video " + r.URL.Query().Get("pageToken"),
						"resourceId": map[string]any{"videoId": "vid-" + r.URL.Query().Get("pageToken")},
					}},
				},
			}
			if r.URL.Query().Get("pageToken") == "" {
				page["nextPageToken"] = "page2"
			}
			json.NewEncoder(w).Encode(page)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key")

		videos, err := client.PlaylistVideos(context.Background(), "PL123")

		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, "vid-", videos[0].VideoID)
		assert.Equal(t, "vid-page2", videos[1].VideoID)
		assert.Equal(t, []string{"", "page2"}, requests)
	})

	t.Run("empty playlist", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key")

		videos, err := client.PlaylistVideos(context.Background(), "PL123")

		require.NoError(t, err)
		assert.Empty(t, videos)
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key")

		videos, err := client.PlaylistVideos(context.Background(), "PL123")

		assert.Error(t, err)
		assert.Nil(t, videos)
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("missing api key", func(t *testing.T) {
		client := NewClient("http://example.invalid", "")

		videos, err := client.PlaylistVideos(context.Background(), "PL123")

		assert.Error(t, err)
		assert.Nil(t, videos)
	})
}
