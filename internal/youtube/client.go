// Package youtube is a thin client for the YouTube Data API v3, covering the
// two calls this service needs: channel metadata by ID and channel search by
// handle.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Channel is the subset of upstream channel metadata this service consumes.
type Channel struct {
	ID                string
	Title             string
	Description       string
	PublishedAt       string
	ThumbnailURL      string
	Country           string
	Subscribers       int64
	SubscribersHidden bool
}

// API is the upstream contract consumed by the services. Implemented by
// Client; replaced by fakes in tests.
type API interface {
	// ChannelByID fetches channel metadata. Returns (nil, nil) when the
	// API responds successfully but lists no items.
	ChannelByID(ctx context.Context, channelID string) (*Channel, error)

	// SearchChannelByHandle resolves a handle/custom name to a canonical
	// channel ID. Returns ("", nil) when nothing matches.
	SearchChannelByHandle(ctx context.Context, handle string) (string, error)
}

// StatusError reports a non-2xx response from the YouTube API so callers can
// forward the upstream status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("youtube api returned status %d", e.Code)
}

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}
}

type channelListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishedAt string `json:"publishedAt"`
			Country     string `json:"country"`
			Thumbnails  map[string]struct {
				URL string `json:"url"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount       string `json:"subscriberCount"`
			HiddenSubscriberCount bool   `json:"hiddenSubscriberCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func (c *Client) ChannelByID(ctx context.Context, channelID string) (*Channel, error) {
	q := url.Values{}
	q.Set("part", "snippet,statistics")
	q.Set("id", channelID)
	q.Set("key", c.apiKey)

	var body channelListResponse
	if err := c.getJSON(ctx, "/channels", q, &body); err != nil {
		return nil, err
	}
	if len(body.Items) == 0 {
		return nil, nil
	}

	item := body.Items[0]
	subs, _ := strconv.ParseInt(item.Statistics.SubscriberCount, 10, 64)

	return &Channel{
		ID:                item.ID,
		Title:             item.Snippet.Title,
		Description:       item.Snippet.Description,
		PublishedAt:       item.Snippet.PublishedAt,
		ThumbnailURL:      pickThumbnail(item.Snippet.Thumbnails),
		Country:           item.Snippet.Country,
		Subscribers:       subs,
		SubscribersHidden: item.Statistics.HiddenSubscriberCount,
	}, nil
}

type searchListResponse struct {
	Items []struct {
		ID struct {
			ChannelID string `json:"channelId"`
		} `json:"id"`
	} `json:"items"`
}

func (c *Client) SearchChannelByHandle(ctx context.Context, handle string) (string, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "channel")
	q.Set("maxResults", "1")
	q.Set("q", handle)
	q.Set("key", c.apiKey)

	var body searchListResponse
	if err := c.getJSON(ctx, "/search", q, &body); err != nil {
		return "", err
	}
	if len(body.Items) == 0 {
		return "", nil
	}
	return body.Items[0].ID.ChannelID, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("youtube api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode youtube response: %w", err)
	}
	return nil
}

// pickThumbnail prefers the higher-resolution variants the API commonly
// returns for channels.
func pickThumbnail(thumbs map[string]struct {
	URL string `json:"url"`
}) string {
	for _, size := range []string{"high", "medium", "default"} {
		if t, ok := thumbs[size]; ok && t.URL != "" {
			return t.URL
		}
	}
	return ""
}
