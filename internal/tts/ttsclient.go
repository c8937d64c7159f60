package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	// DefaultURL is the translate TTS endpoint that renders a phrase as MP3.
	DefaultURL = "http://translate.google.com/translate_tts"

	// The endpoint rejects requests without a browser user agent.
	userAgent = "Mozilla/5.0"
)

// Client fetches rendered speech audio for a phrase over HTTP.
type Client struct {
	URL    string
	Lang   string
	Client *http.Client
}

// FetchSpeech returns the MP3 audio stream for the given phrase.
// The caller must close the returned reader.
func (c *Client) FetchSpeech(ctx context.Context, phrase string) (io.ReadCloser, error) {
	endpoint := c.URL
	if endpoint == "" {
		endpoint = DefaultURL
	}

	lang := c.Lang
	if lang == "" {
		lang = "en-US"
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse tts url: %w", err)
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("q", phrase)
	q.Set("tl", lang)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build tts request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	httpClient := c.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch speech: %w", err)
	}

	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch speech: server responded with %d", resp.StatusCode)
	}

	return resp.Body, nil
}
