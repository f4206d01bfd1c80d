// Package catalog implements the client for the external video catalog API
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/studytrack/backend/internal/models"
)

// pageSize is the maximum page size the catalog API allows
const pageSize = 50

// Client fetches playlist contents from the YouTube Data API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new catalog client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// playlistItemsResponse mirrors the fields used from the playlistItems
// endpoint
type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			Title      string `json:"title"`
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

// PlaylistVideos retrieves every (videoId, title) pair of a playlist,
// following pagination until the catalog reports no further page
func (c *Client) PlaylistVideos(ctx context.Context, playlistID string) ([]models.CatalogVideo, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("catalog API key is not configured")
	}

	var videos []models.CatalogVideo
	pageToken := ""

	for {
		page, err := c.fetchPage(ctx, playlistID, pageToken)
		if err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			videos = append(videos, models.CatalogVideo{
				VideoID: item.Snippet.ResourceID.VideoID,
				Title:   item.Snippet.Title,
			})
		}

		if page.NextPageToken == "" {
			return videos, nil
		}
		pageToken = page.NextPageToken
	}
}

// fetchPage retrieves one page of playlist items
func (c *Client) fetchPage(ctx context.Context, playlistID, pageToken string) (*playlistItemsResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", fmt.Sprintf("%d", pageSize))
	params.Set("playlistId", playlistID)
	params.Set("key", c.apiKey)
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/playlistItems?%s", c.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var page playlistItemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return &page, nil
}
